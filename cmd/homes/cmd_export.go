package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"homefinder/internal/listing"
	"homefinder/internal/logging"
)

var (
	exportCategory string
	exportQuery    string
	exportOut      string
)

// exportCmd writes a search result as CSV
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the listings of a category/search as CSV",
	Long: `Runs one search like "homes list" and writes the result as CSV.

Examples:
  homes export --category verified > verified.csv
  homes export --category new --query loft --out lofts.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "Category: verified, near_you, new (default from config)")
	exportCmd.Flags().StringVarP(&exportQuery, "query", "q", "", "Search text")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
}

// createExportFile opens the --out target. Tests replace it.
var createExportFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

var csvHeader = []string{
	"id", "title", "address", "city", "price", "currency", "category",
	"is_verified", "bedrooms", "bathrooms", "size_m2", "available_from", "landlord_name",
}

func runExport(cmd *cobra.Command, args []string) error {
	category, err := resolveCategory(exportCategory)
	if err != nil {
		return err
	}

	c, err := openContainer(category, exportQuery)
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

	if exportOut == "" {
		if err := writeCSV(cmd.OutOrStdout(), snap.Listings); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
	} else if err := exportToFile(exportOut, snap.Listings); err != nil {
		return err
	}

	logging.For(logger, logging.CategoryCLI).Info("exported listings",
		zap.Int("count", len(snap.Listings)),
		zap.String("out", exportOut))
	return nil
}

// exportToFile writes items to path. The close error is returned, since a
// failed close can mean the data never reached the disk.
func exportToFile(path string, items []listing.Listing) error {
	f, err := createExportFile(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := writeCSV(f, items); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func writeCSV(out io.Writer, items []listing.Listing) error {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, l := range items {
		row := []string{
			l.ID,
			l.Title,
			l.Address,
			l.City,
			strconv.FormatFloat(l.Price, 'f', -1, 64),
			l.Currency,
			string(l.Category),
			strconv.FormatBool(l.IsVerified),
			strconv.Itoa(l.Bedrooms),
			strconv.Itoa(l.Bathrooms),
			strconv.Itoa(l.Size),
			l.AvailableFrom,
			l.LandlordName,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
