package cli

import (
	"fmt"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	stats := ctx.Completions.Stats()

	fmt.Println(headingStyle.Render("Stats"))
	fmt.Printf("  Total rests:   %s\n", valueStyle.Render(fmt.Sprintf("%d", stats.TotalRests)))
	fmt.Printf("  Total wakeups: %s\n", valueStyle.Render(fmt.Sprintf("%d", stats.TotalWakeups)))
	fmt.Printf("  Streak:        %s\n", valueStyle.Render(fmt.Sprintf("%d days", stats.StreakDays)))
	fmt.Printf("  Energy:        %s\n", valueStyle.Render(fmt.Sprintf("%d", stats.Energy)))
	return nil
}
