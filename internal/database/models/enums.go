package models

// OccurrenceState is the lifecycle state of a maintenance occurrence.
// The only transition is scheduled -> completed.
type OccurrenceState string

const (
	OccurrenceScheduled OccurrenceState = "scheduled"
	OccurrenceCompleted OccurrenceState = "completed"
)

// AlertCategory values are stored as-is and matched against channel labels
type AlertCategory string

const (
	AlertCategoryNonConformity AlertCategory = "non_conformita"
	AlertCategoryTicket        AlertCategory = "ticket"
	AlertCategoryScheduleDue   AlertCategory = "scadenza"
)

// AlertState defines the states of an alert
type AlertState string

const (
	AlertOpen       AlertState = "open"
	AlertInProgress AlertState = "in_progress"
	AlertClosed     AlertState = "closed"
)

// MovementKind defines the stock movement types
type MovementKind string

const (
	MovementInitialLoad MovementKind = "initial_load"
	MovementLoad        MovementKind = "load"
	MovementUnload      MovementKind = "unload"
	MovementCorrection  MovementKind = "correction"
)

// UserRole defines the roles of back-office users
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleOperator UserRole = "operator"
	UserRoleViewer   UserRole = "viewer"
)

// FieldType defines the input types of dynamic form fields
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldTextarea FieldType = "textarea"
	FieldFile     FieldType = "file"
)

// DefaultOutcome is recorded when a checklist result carries no explicit outcome
const DefaultOutcome = "executed"

// IsValid checks if the OccurrenceState is valid
func (s OccurrenceState) IsValid() bool {
	switch s {
	case OccurrenceScheduled, OccurrenceCompleted:
		return true
	}
	return false
}

// IsValid checks if the AlertCategory is valid
func (c AlertCategory) IsValid() bool {
	switch c {
	case AlertCategoryNonConformity, AlertCategoryTicket, AlertCategoryScheduleDue:
		return true
	}
	return false
}

// IsValid checks if the AlertState is valid
func (s AlertState) IsValid() bool {
	switch s {
	case AlertOpen, AlertInProgress, AlertClosed:
		return true
	}
	return false
}

// IsValid checks if the MovementKind is valid
func (k MovementKind) IsValid() bool {
	switch k {
	case MovementInitialLoad, MovementLoad, MovementUnload, MovementCorrection:
		return true
	}
	return false
}

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleOperator, UserRoleViewer:
		return true
	}
	return false
}

// IsValid checks if the FieldType is valid
func (t FieldType) IsValid() bool {
	switch t {
	case FieldText, FieldNumber, FieldDate, FieldSelect, FieldCheckbox, FieldTextarea, FieldFile:
		return true
	}
	return false
}
