// Package cli implements the commands of the growth-mindset client.
package cli

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/atinyakov/GrowthMindset/internal/client/api"
	"github.com/atinyakov/GrowthMindset/internal/client/storage"
)

// Context is shared by every command's Run method.
type Context struct {
	API   *api.Client
	Store *storage.LocalStorage
	In    *bufio.Reader
	Out   io.Writer
}

// NewContext wires a command context around the given input and output.
func NewContext(client *api.Client, store *storage.LocalStorage, in io.Reader, out io.Writer) *Context {
	return &Context{API: client, Store: store, In: bufio.NewReader(in), Out: out}
}

var (
	success = color.New(color.FgGreen)
	notice  = color.New(color.FgCyan)
	warning = color.New(color.FgYellow)
)
