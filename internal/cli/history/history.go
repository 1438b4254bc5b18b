package history

import (
	"fmt"

	"github.com/julianstephens/campusbuddy/internal/cli"
	"github.com/julianstephens/campusbuddy/internal/utils"
)

type HistoryCmd struct {
	List HistoryListCmd `cmd:"" help:"List recent outputs, newest first." default:"1"`
	Show HistoryShowCmd `cmd:"" help:"Print the full content of a recent output."`
}

type HistoryListCmd struct {
	Limit int `help:"Maximum entries to show (0 for all)." short:"n" default:"0"`
}

func (c *HistoryListCmd) Run(ctx *cli.Context) error {
	h := ctx.Dashboard().History
	entries := h.List()
	if c.Limit > 0 {
		entries = h.Recent(c.Limit)
	}
	if len(entries) == 0 {
		ctx.Println("No recent outputs.")
		return nil
	}

	for _, o := range entries {
		ctx.Printf("%s  %-9s  %s\n", utils.FormatTimestamp(o.Timestamp), o.Type, o.Title)
		ctx.Printf("    id: %s\n", o.ID)
		if o.Preview != "" {
			ctx.Printf("    %s\n", o.Preview)
		}
	}
	return nil
}

type HistoryShowCmd struct {
	ID  string `arg:"" help:"Output id as shown by 'history list'."`
	Out string `help:"Write the content to a file instead of stdout." short:"o" type:"path"`
}

func (c *HistoryShowCmd) Run(ctx *cli.Context) error {
	o, ok := ctx.Dashboard().History.Get(c.ID)
	if !ok {
		return fmt.Errorf("no recent output with id %s", c.ID)
	}
	if c.Out == "" {
		ctx.Printf("%s\n%s\n\n", o.Title, utils.FormatTimestamp(o.Timestamp))
	}
	return ctx.Emit(c.Out, utils.Slug(o.Title)+".txt", o.Content)
}
