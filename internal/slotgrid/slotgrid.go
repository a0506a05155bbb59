// Package slotgrid owns the hourly slot catalog of a working day and the
// contiguous selection rule applied to it. A selection is always either
// empty or one unbroken ascending run of catalog slots; clicking a slot
// that is not adjacent to the current run starts a fresh selection rather
// than merging or failing.
package slotgrid

import (
	"fmt"
	"strings"
)

const (
	DefaultStartHour = 9
	DefaultEndHour   = 18
)

// Catalog builds the ordered list of one-hour slots between startHour
// (inclusive) and endHour (exclusive end of the last slot), formatted as
// "HH:00-HH:00".
func Catalog(startHour, endHour int) []string {
	if startHour < 0 || endHour > 24 || endHour <= startHour {
		return nil
	}
	slots := make([]string, 0, endHour-startHour)
	for h := startHour; h < endHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00-%02d:00", h, h+1))
	}
	return slots
}

// DefaultCatalog is the 09:00-18:00 working day.
func DefaultCatalog() []string {
	return Catalog(DefaultStartHour, DefaultEndHour)
}

// Toggle applies one click on candidate to the current selection and
// returns the new selection, ascending:
//   - a selected candidate is deselected (the result may become empty);
//   - on an empty selection the candidate becomes a singleton;
//   - a candidate adjacent to the run extends it at that end;
//   - a non-adjacent candidate resets the selection to itself.
//
// A candidate not present in the catalog leaves the selection unchanged.
func Toggle(catalog, selection []string, candidate string) []string {
	for i, s := range selection {
		if s == candidate {
			out := make([]string, 0, len(selection)-1)
			out = append(out, selection[:i]...)
			return append(out, selection[i+1:]...)
		}
	}

	ci := index(catalog, candidate)
	if ci < 0 {
		return selection
	}
	if len(selection) == 0 {
		return []string{candidate}
	}

	min, max := bounds(catalog, selection)
	switch ci {
	case min - 1:
		return append([]string{candidate}, selection...)
	case max + 1:
		out := make([]string, 0, len(selection)+1)
		out = append(out, selection...)
		return append(out, candidate)
	}
	return []string{candidate}
}

// Contiguous reports whether selection is an unbroken ascending run of
// catalog slots. The empty selection is trivially contiguous; callers
// that require at least one slot check that separately.
func Contiguous(catalog, selection []string) bool {
	prev := -1
	for i, s := range selection {
		ci := index(catalog, s)
		if ci < 0 {
			return false
		}
		if i > 0 && ci != prev+1 {
			return false
		}
		prev = ci
	}
	return true
}

// Span returns the earliest start and latest end among the given
// "start-end" slot values, compared textually the way the slots are
// stored. Slots that do not split into two parts are skipped.
func Span(slots []string) (start, end string) {
	for _, slot := range slots {
		s, e, ok := strings.Cut(slot, "-")
		if !ok {
			continue
		}
		if s != "" && (start == "" || s < start) {
			start = s
		}
		if e != "" && (end == "" || e > end) {
			end = e
		}
	}
	return start, end
}

func index(catalog []string, slot string) int {
	for i, s := range catalog {
		if s == slot {
			return i
		}
	}
	return -1
}

func bounds(catalog, selection []string) (min, max int) {
	min, max = -1, -1
	for _, s := range selection {
		ci := index(catalog, s)
		if ci < 0 {
			continue
		}
		if min == -1 || ci < min {
			min = ci
		}
		if ci > max {
			max = ci
		}
	}
	return min, max
}
