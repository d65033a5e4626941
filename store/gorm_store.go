package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Anamitraroy22/school-management/models"
)

// GormStore implements SchoolStore on the shared GORM/Postgres pool.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) ListAll() ([]models.School, error) {
	var schools []models.School
	if err := s.db.Order("created_at DESC").Find(&schools).Error; err != nil {
		return nil, err
	}
	return schools, nil
}

func (s *GormStore) GetByID(id int) (models.School, error) {
	var school models.School
	if err := s.db.First(&school, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.School{}, ErrNotFound
		}
		return models.School{}, err
	}
	return school, nil
}

func (s *GormStore) Insert(school *models.School) error {
	// Pre-insert duplicate check; the unique index on email_id is the
	// backstop for the narrow window between check and insert.
	var count int64
	if err := s.db.Model(&models.School{}).Where("email_id = ?", school.EmailID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmail
	}
	return s.db.Create(school).Error
}

func (s *GormStore) Update(id int, in *models.School) (models.School, error) {
	var existing models.School
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.School{}, ErrNotFound
		}
		return models.School{}, err
	}

	var dup int64
	if err := s.db.Model(&models.School{}).
		Where("email_id = ? AND id != ?", in.EmailID, id).
		Count(&dup).Error; err != nil {
		return models.School{}, err
	}
	if dup > 0 {
		return models.School{}, ErrDuplicateEmail
	}

	existing.Name = in.Name
	existing.Address = in.Address
	existing.City = in.City
	existing.State = in.State
	existing.Contact = in.Contact
	existing.EmailID = in.EmailID
	existing.Image = in.Image

	// Save refreshes updated_at and leaves created_at untouched.
	if err := s.db.Save(&existing).Error; err != nil {
		return models.School{}, err
	}
	return existing, nil
}

func (s *GormStore) Delete(id int) (string, error) {
	var existing models.School
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	if err := s.db.Delete(&models.School{}, "id = ?", id).Error; err != nil {
		return "", err
	}
	return existing.Name, nil
}

func (s *GormStore) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *GormStore) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.School{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
