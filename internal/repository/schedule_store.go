package repository

import (
	"gorm.io/gorm"
)

// ScheduleStore bundles the schedule repositories over one connection so that
// completion can update them in a single transaction
type ScheduleStore struct {
	db *gorm.DB
}

// Ensure ScheduleStore implements ScheduleStoreInterface
var _ ScheduleStoreInterface = (*ScheduleStore)(nil)

// NewScheduleStore creates a new schedule store
func NewScheduleStore(db *gorm.DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

func (s *ScheduleStore) Occurrences() OccurrenceRepositoryInterface {
	return NewOccurrenceRepository(s.db)
}

func (s *ScheduleStore) History() ExecutionHistoryRepositoryInterface {
	return NewExecutionHistoryRepository(s.db)
}

func (s *ScheduleStore) Results() ChecklistResultRepositoryInterface {
	return NewChecklistResultRepository(s.db)
}

// Transaction runs fn with a store bound to a database transaction.
// Returning an error from fn rolls everything back.
func (s *ScheduleStore) Transaction(fn func(store ScheduleStoreInterface) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewScheduleStore(tx))
	})
}
