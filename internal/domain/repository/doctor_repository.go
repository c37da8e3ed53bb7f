package repository

import (
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindAll(db *gorm.DB, offset, limit int) ([]entity.Doctor, int64, error)
	ReplaceSpecializations(db *gorm.DB, doctor *entity.Doctor, specializations []entity.Specialization) error
}
