package schedule

// Classification tells whether an occurrence needs an alert, and why
type Classification string

const (
	NotDue   Classification = "none"
	Overdue  Classification = "overdue"
	DueToday Classification = "due_today"
	Upcoming Classification = "upcoming"
)

// Classify derives the alert class from the days remaining until the due date
// and the occurrence lead time. Due today always alerts, whatever the lead time.
func Classify(daysRemaining, leadDays int) Classification {
	switch {
	case daysRemaining < 0:
		return Overdue
	case daysRemaining == 0:
		return DueToday
	case daysRemaining <= leadDays:
		return Upcoming
	default:
		return NotDue
	}
}

// Alerting reports whether the class should raise an alert
func (c Classification) Alerting() bool {
	return c == Overdue || c == DueToday || c == Upcoming
}
