package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNurseNotFound = errors.New("nurse not found")

type NurseUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.NurseResponse, error)
	List(ctx context.Context, page, limit int) (*dto.NurseListResponse, error)
}

type nurseUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	nurseRepo repository.NurseRepository
}

func NewNurseUsecase(db *gorm.DB, log *logrus.Logger, nurseRepo repository.NurseRepository) NurseUsecase {
	return &nurseUsecase{
		db:        db,
		log:       log,
		nurseRepo: nurseRepo,
	}
}

// GetByID retrieves one nurse record. A nurse sees only their own record;
// the row behaves as absent for anyone else's.
func (u *nurseUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.NurseResponse, error) {
	nurse, err := u.nurseRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find nurse %s: %+v", id, err)
		return nil, err
	}
	if nurse == nil {
		return nil, ErrNurseNotFound
	}

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDNurse {
		userID, _ := middleware.GetUserIDFromContext(ctx)
		if nurse.UserID != userID {
			return nil, ErrNurseNotFound
		}
	}

	return converter.NurseToResponse(nurse), nil
}

func (u *nurseUsecase) List(ctx context.Context, page, limit int) (*dto.NurseListResponse, error) {
	offset := (page - 1) * limit
	nurses, total, err := u.nurseRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list nurses: %+v", err)
		return nil, err
	}

	return &dto.NurseListResponse{
		Nurses: converter.NursesToResponses(nurses),
		Total:  total,
	}, nil
}
