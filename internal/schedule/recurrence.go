package schedule

import (
	"strings"
	"time"
)

// Recurrence is the class that determines how a completed occurrence is rescheduled
type Recurrence string

const (
	Weekly     Recurrence = "weekly"
	Biweekly   Recurrence = "biweekly"
	Monthly    Recurrence = "monthly"
	Bimonthly  Recurrence = "bimonthly"
	Quarterly  Recurrence = "quarterly"
	Semiannual Recurrence = "semiannual"
	Annual     Recurrence = "annual"
	Biennial   Recurrence = "biennial"
)

// DefaultRecurrence applies to empty or unknown classes
const DefaultRecurrence = Monthly

type step struct {
	days   int
	months int
}

// recurrenceTable is the single source of truth for rescheduling intervals.
var recurrenceTable = map[Recurrence]step{
	Weekly:     {days: 7},
	Biweekly:   {days: 14},
	Monthly:    {months: 1},
	Bimonthly:  {months: 2},
	Quarterly:  {months: 3},
	Semiannual: {months: 6},
	Annual:     {months: 12},
	Biennial:   {months: 24},
}

// legacy labels still sent by older clients and seed files
var legacyLabels = map[string]Recurrence{
	"settimanale":   Weekly,
	"bisettimanale": Biweekly,
	"mensile":       Monthly,
	"bimestrale":    Bimonthly,
	"trimestrale":   Quarterly,
	"semestrale":    Semiannual,
	"annuale":       Annual,
	"biennale":      Biennial,
}

var monthsToRecurrence = map[int]Recurrence{
	1:  Monthly,
	2:  Bimonthly,
	3:  Quarterly,
	6:  Semiannual,
	12: Annual,
	24: Biennial,
}

// Recurrences lists every supported class in interval order
func Recurrences() []Recurrence {
	return []Recurrence{Weekly, Biweekly, Monthly, Bimonthly, Quarterly, Semiannual, Annual, Biennial}
}

// IsValid checks if the Recurrence is a known class
func (r Recurrence) IsValid() bool {
	_, ok := recurrenceTable[r]
	return ok
}

// OrDefault returns r, or the default class when r is unknown
func (r Recurrence) OrDefault() Recurrence {
	if r.IsValid() {
		return r
	}
	return DefaultRecurrence
}

// ParseRecurrence accepts English and legacy Italian labels, case-insensitively.
func ParseRecurrence(s string) (Recurrence, bool) {
	label := strings.ToLower(strings.TrimSpace(s))
	if r := Recurrence(label); r.IsValid() {
		return r, true
	}
	r, ok := legacyLabels[label]
	return r, ok
}

// RecurrenceForMonths maps a catalog frequency in months to a class.
// The second result is false when no class matches and the default was used.
func RecurrenceForMonths(months int) (Recurrence, bool) {
	if r, ok := monthsToRecurrence[months]; ok {
		return r, true
	}
	return DefaultRecurrence, false
}

// NextDueDate returns the due date that follows due for the given class.
// The result is anchored on the previous due date, never on the completion date.
func NextDueDate(due time.Time, r Recurrence) time.Time {
	s := recurrenceTable[r.OrDefault()]
	d := DateOf(due)
	if s.days > 0 {
		return d.AddDate(0, 0, s.days)
	}
	return addMonths(d, s.months)
}

// addMonths keeps the day of month; time.Date rolls an overflowing day
// (e.g. 31 February) into the following month.
func addMonths(t time.Time, n int) time.Time {
	total := int(t.Month()) - 1 + n
	year := t.Year() + total/12
	month := time.Month(total%12 + 1)
	return time.Date(year, month, t.Day(), 0, 0, 0, 0, t.Location())
}
