package store

import (
	"errors"

	"github.com/Anamitraroy22/school-management/models"
)

var (
	// ErrNotFound signals that no school row matches the given id.
	ErrNotFound = errors.New("school not found")
	// ErrDuplicateEmail signals that another school already owns the email.
	ErrDuplicateEmail = errors.New("duplicate email")
)

// SchoolStore defines the persistence operations for school records.
// Handlers depend on this interface so tests can substitute MemoryStore.
type SchoolStore interface {
	// ListAll returns every school, newest-created first.
	ListAll() ([]models.School, error)
	// GetByID returns a single school or ErrNotFound.
	GetByID(id int) (models.School, error)
	// Insert assigns id and both timestamps; fails with ErrDuplicateEmail.
	Insert(s *models.School) error
	// Update replaces all mutable fields, refreshing updated_at only.
	// Fails with ErrNotFound or ErrDuplicateEmail.
	Update(id int, s *models.School) (models.School, error)
	// Delete permanently removes the row, returning its name for
	// confirmation messaging. Fails with ErrNotFound.
	Delete(id int) (string, error)

	// Ping and Count back the health endpoints.
	Ping() error
	Count() (int64, error)
}
