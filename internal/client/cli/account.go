package cli

import (
	"context"
	"fmt"
)

// RegisterCmd creates an account on the server.
type RegisterCmd struct {
	Username string `arg:"" optional:"" help:"Account name (prompted when omitted)."`
	Password string `help:"Password (prompted when omitted)." env:"GROWTH_PASSWORD"`
}

// Run executes the register command.
func (c *RegisterCmd) Run(ctx *Context) error {
	username, password, err := ctx.credentials(c.Username, c.Password)
	if err != nil {
		return err
	}
	if err := ctx.API.Register(context.Background(), username, password); err != nil {
		return err
	}
	success.Fprintln(ctx.Out, "You have successfully signed up! Please log in.")
	return nil
}

// LoginCmd verifies credentials and stores the session locally.
type LoginCmd struct {
	Username string `arg:"" optional:"" help:"Account name (prompted when omitted)."`
	Password string `help:"Password (prompted when omitted)." env:"GROWTH_PASSWORD"`
}

// Run executes the login command.
func (c *LoginCmd) Run(ctx *Context) error {
	username, password, err := ctx.credentials(c.Username, c.Password)
	if err != nil {
		return err
	}
	res, err := ctx.API.Login(context.Background(), username, password)
	if err != nil {
		return err
	}
	ctx.Store.SetSession(ctx.API.BaseURL, username, res.UserID, res.Token)
	if err := ctx.Store.Save(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	success.Fprintf(ctx.Out, "Welcome back, %s!\n", username)
	return nil
}

// LogoutCmd forgets the stored session.
type LogoutCmd struct{}

// Run executes the logout command.
func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Store.Clear(); err != nil {
		return err
	}
	notice.Fprintln(ctx.Out, "Logged out.")
	return nil
}
