package store

import (
	"sync"
	"time"

	"github.com/Anamitraroy22/school-management/models"
)

// MemoryStore keeps school records in-process. It mirrors GormStore
// semantics (id assignment, timestamps, ordering, duplicate detection)
// so handler tests can run without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	schools map[uint]models.School
	order   []uint // insertion order, oldest first
	nextID  uint   // ids are never reused after deletion
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		schools: make(map[uint]models.School),
		nextID:  1,
	}
}

func (m *MemoryStore) ListAll() ([]models.School, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.School, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- { // newest-created first
		if s, ok := m.schools[m.order[i]]; ok {
			res = append(res, s)
		}
	}
	return res, nil
}

func (m *MemoryStore) GetByID(id int) (models.School, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.schools[uint(id)]
	if !ok {
		return models.School{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Insert(s *models.School) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.schools {
		if existing.EmailID == s.EmailID {
			return ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	s.ID = m.nextID
	s.CreatedAt = now
	s.UpdatedAt = now
	m.nextID++
	m.schools[s.ID] = *s
	m.order = append(m.order, s.ID)
	return nil
}

func (m *MemoryStore) Update(id int, in *models.School) (models.School, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.schools[uint(id)]
	if !ok {
		return models.School{}, ErrNotFound
	}
	for _, other := range m.schools {
		if other.ID != uint(id) && other.EmailID == in.EmailID {
			return models.School{}, ErrDuplicateEmail
		}
	}
	existing.Name = in.Name
	existing.Address = in.Address
	existing.City = in.City
	existing.State = in.State
	existing.Contact = in.Contact
	existing.EmailID = in.EmailID
	existing.Image = in.Image
	existing.UpdatedAt = time.Now().UTC()
	m.schools[existing.ID] = existing
	return existing, nil
}

func (m *MemoryStore) Delete(id int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.schools[uint(id)]
	if !ok {
		return "", ErrNotFound
	}
	delete(m.schools, uint(id))
	kept := m.order[:0]
	for _, oid := range m.order {
		if oid != uint(id) {
			kept = append(kept, oid)
		}
	}
	m.order = kept
	return existing.Name, nil
}

func (m *MemoryStore) Ping() error { return nil }

func (m *MemoryStore) Count() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.schools)), nil
}
