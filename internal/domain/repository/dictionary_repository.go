package repository

import (
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DictionaryRepository serves the read-only reference catalogs.
type DictionaryRepository interface {
	FindDiseases(db *gorm.DB, name string, offset, limit int) ([]entity.Disease, int64, error)
	FindDiseaseByID(db *gorm.DB, id uuid.UUID) (*entity.Disease, error)
	FindMedicines(db *gorm.DB, name string, offset, limit int) ([]entity.Medicine, int64, error)
	FindMedicineByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error)
	FindOffices(db *gorm.DB, officeTypeName string, floor *int, offset, limit int) ([]entity.Office, int64, error)
	FindOfficeByID(db *gorm.DB, id uuid.UUID) (*entity.Office, error)
	FindSpecializations(db *gorm.DB, name string, offset, limit int) ([]entity.Specialization, int64, error)
	FindSpecializationByID(db *gorm.DB, id uuid.UUID) (*entity.Specialization, error)
	FindSpecializationsByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Specialization, error)
}
