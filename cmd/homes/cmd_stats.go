package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"homefinder/cmd/homes/ui"
	"homefinder/internal/format"
	"homefinder/internal/insights"
)

// statsCmd prints price statistics per category
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show price and availability statistics per category",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	repo, err := loadRepository()
	if err != nil {
		return err
	}

	report := insights.Generate(repo.All())
	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))
	out := cmd.OutOrStdout()

	if report.TotalListings == 0 {
		fmt.Fprintln(out, "No listings found")
		return nil
	}

	price := func(v float64) string {
		if v == 0 || report.Currency == "" {
			return "-"
		}
		return format.Price(v, report.Currency)
	}

	table := ui.NewSimpleTable(
		fmt.Sprintf("Listings by category (%d total)", report.TotalListings),
		"Category", "Listings", "Avg/mo", "Min/mo", "Max/mo", "Verified", "Unread",
	)
	for i := 1; i <= 6; i++ {
		table.RightAlign[i] = true
	}
	for _, s := range report.Categories {
		table.AddRow(
			s.Category.Label(),
			fmt.Sprintf("%d", s.Count),
			price(s.AveragePrice),
			price(s.MinPrice),
			price(s.MaxPrice),
			fmt.Sprintf("%d", s.VerifiedCount),
			fmt.Sprintf("%d", s.UnreadMessages),
		)
	}
	fmt.Fprint(out, table.View(styles))

	if l := report.MostExpensive; l != nil {
		fmt.Fprintf(out, "\nMost expensive: %s (%s)\n", l.Title, format.CardPrice(*l))
	}

	if len(report.ByCity) > 0 {
		fmt.Fprintln(out, "\nBy city:")
		for _, c := range report.ByCity {
			fmt.Fprintf(out, "  %-20s %s (%d)\n", c.City, strings.Repeat("█", c.Count), c.Count)
		}
	}
	return nil
}
