package schedule

import (
	"testing"
	"time"

	"pools-app-api/core/domain"
)

func TestExpandWeek_SlotMapsToOffsetDate(t *testing.T) {
	anchor := domain.NewDate(2024, time.May, 26) // a Sunday

	var slots [DaysPerWeek]string
	slots[3] = "1 - 2pm"

	emitted, failures := ExpandWeek(anchor, slots)

	if len(failures) != 0 {
		t.Fatalf("ExpandWeek returned %d failures, want 0", len(failures))
	}
	if len(emitted) != 1 {
		t.Fatalf("ExpandWeek emitted %d availabilities, want 1", len(emitted))
	}

	wantDate := domain.NewDate(2024, time.May, 29) // Wednesday
	if emitted[0].Date != wantDate {
		t.Errorf("emitted date = %v, want %v", emitted[0].Date, wantDate)
	}

	wantInterval := domain.Interval{Start: 780, End: 840}
	if emitted[0].Interval != wantInterval {
		t.Errorf("emitted interval = %v, want %v", emitted[0].Interval, wantInterval)
	}
}

func TestExpandWeek_EmptySlotsEmitNothing(t *testing.T) {
	anchor := domain.NewDate(2024, time.May, 26)

	var slots [DaysPerWeek]string
	slots[1] = "   "

	emitted, failures := ExpandWeek(anchor, slots)

	if len(emitted) != 0 {
		t.Errorf("ExpandWeek emitted %d availabilities for blank slots, want 0", len(emitted))
	}
	if len(failures) != 0 {
		t.Errorf("ExpandWeek returned %d failures for blank slots, want 0", len(failures))
	}
}

func TestExpandWeek_ConcatenatedCellEmitsBothRanges(t *testing.T) {
	anchor := domain.NewDate(2024, time.May, 26)

	var slots [DaysPerWeek]string
	slots[0] = "3 - 5pm6 - 8pm"

	emitted, failures := ExpandWeek(anchor, slots)

	if len(failures) != 0 {
		t.Fatalf("ExpandWeek returned %d failures, want 0", len(failures))
	}
	if len(emitted) != 2 {
		t.Fatalf("ExpandWeek emitted %d availabilities, want 2", len(emitted))
	}

	for _, a := range emitted {
		if a.Date != anchor {
			t.Errorf("emitted date = %v, want anchor %v", a.Date, anchor)
		}
	}
	if emitted[0].Interval != (domain.Interval{Start: 900, End: 1020}) {
		t.Errorf("first interval = %v, want 3pm-5pm", emitted[0].Interval)
	}
	if emitted[1].Interval != (domain.Interval{Start: 1080, End: 1200}) {
		t.Errorf("second interval = %v, want 6pm-8pm", emitted[1].Interval)
	}
}

func TestExpandWeek_MultipleSlotsAcrossWeek(t *testing.T) {
	anchor := domain.NewDate(2024, time.December, 29) // Sunday spanning a year boundary

	var slots [DaysPerWeek]string
	slots[0] = "9 - 11am"
	slots[6] = "2 - 4pm"

	emitted, failures := ExpandWeek(anchor, slots)

	if len(failures) != 0 {
		t.Fatalf("ExpandWeek returned %d failures, want 0", len(failures))
	}
	if len(emitted) != 2 {
		t.Fatalf("ExpandWeek emitted %d availabilities, want 2", len(emitted))
	}

	if emitted[0].Date != anchor {
		t.Errorf("first date = %v, want %v", emitted[0].Date, anchor)
	}
	if want := domain.NewDate(2025, time.January, 4); emitted[1].Date != want {
		t.Errorf("last date = %v, want %v", emitted[1].Date, want)
	}
}

func TestExpandWeek_FailureIsolatedToCell(t *testing.T) {
	anchor := domain.NewDate(2024, time.May, 26)

	var slots [DaysPerWeek]string
	slots[2] = "x - ypm"
	slots[4] = "1 - 2pm"

	emitted, failures := ExpandWeek(anchor, slots)

	if len(failures) != 1 {
		t.Fatalf("ExpandWeek returned %d failures, want 1", len(failures))
	}
	if failures[0].Date != anchor.AddDays(2) {
		t.Errorf("failure date = %v, want %v", failures[0].Date, anchor.AddDays(2))
	}
	if failures[0].Cell != "x - ypm" {
		t.Errorf("failure cell = %q, want offending text", failures[0].Cell)
	}

	if len(emitted) != 1 {
		t.Fatalf("ExpandWeek emitted %d availabilities, want the good cell to survive", len(emitted))
	}
	if emitted[0].Date != anchor.AddDays(4) {
		t.Errorf("emitted date = %v, want %v", emitted[0].Date, anchor.AddDays(4))
	}
}
