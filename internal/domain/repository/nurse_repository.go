package repository

import (
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NurseRepository interface {
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Nurse, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Nurse, error)
	FindAll(db *gorm.DB, offset, limit int) ([]entity.Nurse, int64, error)
}
