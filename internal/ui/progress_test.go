package ui

import (
	"strings"
	"testing"

	"vhdlsem/internal/driver"
)

func TestApplyEventUpdatesItem(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("analyze", []string{"a.vhd", "b.vhd"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.vhd", Stage: driver.StageParse, Status: driver.StatusWorking})
	if m.items[0].status != "parsing" {
		t.Fatalf("status = %q, want parsing", m.items[0].status)
	}

	m.applyEvent(driver.Event{File: "a.vhd", Stage: driver.StageAnalyze, Status: driver.StatusDone})
	if m.items[0].status != "done" {
		t.Fatalf("status = %q, want done", m.items[0].status)
	}

	// Unknown files and pipeline-wide events do not touch the rows.
	m.applyEvent(driver.Event{File: "other.vhd", Status: driver.StatusError})
	m.applyEvent(driver.Event{Stage: driver.StageParse, Status: driver.StatusWorking})
	if m.items[1].status != "queued" {
		t.Fatalf("untouched row changed: %q", m.items[1].status)
	}
	if m.stageLabel != "parsing" {
		t.Fatalf("stage label = %q, want parsing", m.stageLabel)
	}
}

func TestViewListsEveryFile(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("analyze", []string{"rtl/top.vhd"}, events).(*progressModel)

	out := m.View()
	if !strings.Contains(out, "rtl/top.vhd") || !strings.Contains(out, "queued") {
		t.Fatalf("view missing file row:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short.vhd", 20); got != "short.vhd" {
		t.Fatalf("truncate widened: %q", got)
	}
	got := truncate("a/very/long/path/to/some/unit.vhd", 12)
	if len(got) == 0 || !strings.HasSuffix(got, "...") {
		t.Fatalf("truncate = %q", got)
	}
}
