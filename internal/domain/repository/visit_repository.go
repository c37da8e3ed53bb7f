package repository

import (
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitRepository interface {
	Create(db *gorm.DB, visit *entity.Visit) error
	Update(db *gorm.DB, visit *entity.Visit) error
	// FindByID narrows visibility to the given patient/doctor user when set;
	// rows outside the narrowed set behave as absent.
	FindByID(db *gorm.DB, id uuid.UUID, ownPatientUserID, ownDoctorUserID *uuid.UUID) (*entity.Visit, error)
	FindAll(db *gorm.DB, filter *entity.VisitFilter, offset, limit int) ([]entity.Visit, int64, error)
	// FindOverlapping returns visits whose [date, predicted_end_date) interval
	// intersects [start, end), excluding excludeID when non-nil.
	FindOverlapping(db *gorm.DB, start, end time.Time, excludeID *uuid.UUID) ([]entity.Visit, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.VisitStatus) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	NextReadableID(db *gorm.DB) (int64, error)
}
