package ui

import (
	"strings"
	"testing"
)

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Listings by category", "Category", "Count")
	table.RightAlign[1] = true
	table.AddRow("Verified", "2")
	table.AddRow("Near you")

	view := table.View(NewStyles(LightTheme()))

	t.Logf("View:\n%q", view)

	if !strings.Contains(view, "Listings by category") {
		t.Error("View missing title")
	}
	if !strings.Contains(view, "Verified") || !strings.Contains(view, "Near you") {
		t.Error("View missing cell content")
	}
	if got := strings.Count(view, "\n"); got != 5 {
		t.Errorf("expected title, header, divider and 2 rows, got %d lines", got)
	}
}

func TestSimpleTable_EmptyRendersNothing(t *testing.T) {
	table := NewSimpleTable("Empty", "A")
	if view := table.View(NewStyles(LightTheme())); view != "" {
		t.Errorf("expected empty view, got %q", view)
	}
}
