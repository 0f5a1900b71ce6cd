package cli

import (
	"fmt"
)

type HistoryListCmd struct{}

func (c *HistoryListCmd) Run(ctx *Context) error {
	history := ctx.Completions.History()
	if len(history) == 0 {
		fmt.Println("No rests logged in the last 30 days.")
		return nil
	}

	fmt.Println(headingStyle.Render("Rest history (last 30 days)"))
	for _, e := range history {
		fmt.Printf("  %s %s  %s\n", e.Date, e.Time, dimStyle.Render(e.ID))
	}
	return nil
}

type HistoryDeleteCmd struct {
	ID string `arg:"" help:"History entry id to delete."`
}

func (c *HistoryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Completions.DeleteEntry(c.ID); err != nil {
		return err
	}
	fmt.Println("History entry deleted.")
	return nil
}
