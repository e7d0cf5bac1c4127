package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"homefinder/cmd/homes/ui"
	"homefinder/internal/format"
	"homefinder/internal/listing"
	"homefinder/internal/logging"
)

var (
	listCategory string
	listQuery    string
	listJSON     bool
	showJSON     bool
)

// listCmd prints the listings for one tab
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the listings in a category, optionally filtered by a search query",
	Long: `Runs one search and prints the matching listings as cards.

The query is matched case-insensitively against title, street and city.

Examples:
  homes list
  homes list --category near_you --query student
  homes list --category new --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// showCmd prints one listing
var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the details of a single listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// categoriesCmd prints the tabs with their sizes
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories and how many listings each holds",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Category: verified, near_you, new (default from config)")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Search text")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print JSON instead of cards")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	category, err := resolveCategory(listCategory)
	if err != nil {
		return err
	}

	c, err := openContainer(category, listQuery)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Settle(cmdContext(cmd)); err != nil {
		return fmt.Errorf("search interrupted: %w", err)
	}
	snap := c.Snapshot()
	if snap.HasError() {
		return errors.New(snap.Error)
	}

	logging.For(logger, logging.CategoryCLI).Debug("list",
		zap.String("category", string(snap.ActiveCategory)),
		zap.String("query", snap.SearchQuery),
		zap.Int("count", len(snap.Listings)))

	out := cmd.OutOrStdout()
	if listJSON {
		return writeJSON(out, snap.Listings)
	}

	if len(snap.Listings) == 0 {
		title, hint := format.EmptyState(snap.SearchQuery)
		fmt.Fprintln(out, title)
		fmt.Fprintln(out, hint)
		return nil
	}

	fmt.Fprintf(out, "%s: %d of %d listings\n\n", snap.ActiveCategory.Label(), len(snap.Listings), snap.AllCount)
	for _, l := range snap.Listings {
		printCard(out, l)
	}
	return nil
}

func printCard(out io.Writer, l listing.Listing) {
	title := l.Title
	if l.Category == listing.CategoryVerified {
		title += " [Verified]"
	}
	fmt.Fprintln(out, title)
	fmt.Fprintf(out, "  %s\n", format.Location(l))
	fmt.Fprintf(out, "  %s  %s\n", format.CardPrice(l), format.Rooms(l))
	fmt.Fprintf(out, "  id: %s\n\n", l.ID)
}

func runShow(cmd *cobra.Command, args []string) error {
	repo, err := loadRepository()
	if err != nil {
		return err
	}

	l, err := repo.Find(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showJSON {
		return writeJSON(out, l)
	}

	fmt.Fprintln(out, l.Title)
	fmt.Fprintln(out, format.DetailPrice(l))
	fmt.Fprintln(out)
	fmt.Fprintln(out, l.Address)
	fmt.Fprintln(out, l.City)
	fmt.Fprintf(out, "%d bedrooms • %d bathrooms • %d m²\n", l.Bedrooms, l.Bathrooms, l.Size)
	if l.IsVerified {
		fmt.Fprintln(out, "Verified landlord")
	}
	if d := strings.TrimSpace(l.Description); d != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, d)
	}
	fmt.Fprintln(out)
	if avail := format.Availability(l); avail != "" {
		fmt.Fprintln(out, avail)
	}
	if l.LandlordName != "" {
		fmt.Fprintf(out, "Landlord: %s\n", l.LandlordName)
	}
	return nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	repo, err := loadRepository()
	if err != nil {
		return err
	}

	counts := repo.CountByCategory()
	table := ui.NewSimpleTable("", "Tab", "Value", "Listings")
	table.RightAlign[2] = true
	for _, c := range listing.Categories() {
		table.AddRow(c.Label(), string(c), fmt.Sprintf("%d", counts[c]))
	}

	fmt.Fprint(cmd.OutOrStdout(), table.View(ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))))
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
