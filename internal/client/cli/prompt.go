package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompt asks for a value on ctx.Out unless current is already set.
func (ctx *Context) prompt(label, current string) (string, error) {
	if current != "" {
		return current, nil
	}
	fmt.Fprintf(ctx.Out, "%s: ", label)
	line, err := ctx.In.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("%s must not be empty", strings.ToLower(label))
	}
	return value, nil
}

// credentials fills in a missing username or password interactively.
func (ctx *Context) credentials(username, password string) (string, string, error) {
	username, err := ctx.prompt("Username", username)
	if err != nil {
		return "", "", err
	}
	password, err = ctx.prompt("Password", password)
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}
