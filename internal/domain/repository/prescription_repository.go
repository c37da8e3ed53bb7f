package repository

import (
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	CreateDosages(db *gorm.DB, dosages []entity.Dosage) error
	FindByID(db *gorm.DB, id uuid.UUID, ownPatientUserID *uuid.UUID) (*entity.Prescription, error)
	FindAll(db *gorm.DB, filter *entity.PrescriptionFilter, offset, limit int) ([]entity.Prescription, int64, error)
	// Delete removes the prescription row; owned dosages cascade at the
	// database level.
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	NextReadableID(db *gorm.DB) (int64, error)
}
