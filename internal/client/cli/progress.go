package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/atinyakov/GrowthMindset/internal/client/api"
)

// ProgressCmd records today's progress for the logged-in account.
type ProgressCmd struct {
	Percent int `arg:"" help:"How far you got today, 0 to 100."`
}

// Run executes the progress command.
func (c *ProgressCmd) Run(ctx *Context) error {
	if c.Percent < 0 || c.Percent > 100 {
		return errors.New("progress must be between 0 and 100")
	}
	token, err := ctx.Store.BearerToken()
	if err != nil {
		return err
	}
	res, err := ctx.API.SaveProgress(context.Background(), token, c.Percent)
	if errors.Is(err, api.ErrUnauthorized) {
		return fmt.Errorf("session rejected, please log in again: %w", err)
	}
	if err != nil {
		return err
	}
	success.Fprintf(ctx.Out, "Saved %d%% for %s.\n", res.Entry.Progress, res.Entry.Date)
	notice.Fprintln(ctx.Out, res.Message)
	return nil
}

// SummaryCmd downloads the summary document.
type SummaryCmd struct {
	Goal     string `help:"Your learning goal (prompted when omitted)."`
	Date     string `help:"Date the goal was achieved, YYYY-MM-DD. Defaults to today."`
	Tip      string `help:"Tip to print on the summary."`
	Feedback string `help:"How the journey felt."`
	Output   string `short:"o" help:"Where to write the PDF." default:"growth_mindset_progress.pdf" type:"path"`
}

// Run executes the summary command.
func (c *SummaryCmd) Run(ctx *Context) error {
	goal, err := ctx.prompt("Learning goal", c.Goal)
	if err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	n, err := ctx.API.DownloadSummary(context.Background(), api.SummaryRequest{
		Goal:         goal,
		AchievedDate: date,
		Tip:          c.Tip,
		Feedback:     c.Feedback,
	}, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(c.Output)
		return err
	}
	success.Fprintf(ctx.Out, "Saved %s (%d bytes).\n", c.Output, n)
	return nil
}

// MotivationCmd prints the quote of the day and the available tips.
type MotivationCmd struct {
	Tips bool `help:"Also list the tips and feedback options."`
}

// Run executes the motivation command.
func (c *MotivationCmd) Run(ctx *Context) error {
	m, err := ctx.API.Motivation(context.Background())
	if err != nil {
		return err
	}
	notice.Fprintf(ctx.Out, "%q\n", m.Quote)
	if !c.Tips {
		return nil
	}
	warning.Fprintln(ctx.Out, "Tips:")
	for _, tip := range m.Tips {
		fmt.Fprintf(ctx.Out, "  - %s\n", tip)
	}
	warning.Fprintln(ctx.Out, "Feedback options:")
	for _, opt := range m.FeedbackOptions {
		fmt.Fprintf(ctx.Out, "  - %s\n", opt)
	}
	return nil
}
