// Package cli provides command-line interface utilities.
package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"Season", "Score"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 2 {
		t.Errorf("Expected 2 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Season", "Score"})

	table.AddRow([]string{"warm autumn", "0.9"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Short rows are padded to the header count.
	table.AddRow([]string{"cool winter"})
	if len(table.rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("Expected padded row of 2 cells, got %d", len(table.rows[1]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Season", "Score"})
	table.AddRow([]string{"warm autumn", "0.900"})
	table.AddRow([]string{"light spring", "0.710"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Render() produced %d lines, want 4:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "Season") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("separator line = %q", lines[1])
	}

	// Columns align: "Score" starts at the same offset in every line.
	offset := strings.Index(lines[0], "Score")
	if got := strings.Index(lines[2], "0.900"); got != offset {
		t.Errorf("score column at offset %d, want %d:\n%s", got, offset, out)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Render() of headerless table = %q, want empty", out)
	}
}
