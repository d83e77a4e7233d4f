package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextTableAlignsColumns(t *testing.T) {
	tb := newTextTable("ID", "Players", "Title")
	tb.add("clawful", 1, "Clawful")
	tb.add("clawful_duel", 2, "Clawful Duel")

	var buf bytes.Buffer
	tb.write(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	want := []string{
		"  ID            Players  Title",
		"  --            -------  -----",
		"  clawful       1        Clawful",
		"  clawful_duel  2        Clawful Duel",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
