package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrDoctorNotOwnRecord    = errors.New("You do not have permission to perform this action.")
	ErrSpecializationUnknown = errors.New("one or more specializations do not exist")
)

type DoctorUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	List(ctx context.Context, page, limit int) (*dto.DoctorListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	userRepo     repository.UserRepository
	dictRepo     repository.DictionaryRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	userRepo repository.UserRepository,
	dictRepo repository.DictionaryRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		userRepo:     userRepo,
		dictRepo:     dictRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) List(ctx context.Context, page, limit int) (*dto.DoctorListResponse, error) {
	offset := (page - 1) * limit
	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   total,
	}, nil
}

// Update edits a doctor record. A doctor may edit only their own record;
// admins may edit any.
func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if roleID == entity.RoleIDDoctor && doctor.UserID != userID {
		return nil, ErrDoctorNotOwnRecord
	}

	oldValue := *doctor

	user, err := u.userRepo.FindByID(tx, doctor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update doctor user %s: %+v", doctor.UserID, err)
		return nil, err
	}

	if req.SpecializationIDs != nil {
		specializations, err := u.dictRepo.FindSpecializationsByIDs(tx, req.SpecializationIDs)
		if err != nil {
			return nil, err
		}
		if len(specializations) != len(req.SpecializationIDs) {
			return nil, ErrSpecializationUnknown
		}
		if err := u.doctorRepo.ReplaceSpecializations(tx, doctor, specializations); err != nil {
			u.log.Warnf("Failed to replace specializations for doctor %s: %+v", id, err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionDoctorUpdate, "doctor", id.String(), &oldValue, doctor); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	u.log.Infof("Doctor updated: id=%s", id)

	full, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || full == nil {
		return converter.DoctorToResponse(doctor), nil
	}
	return converter.DoctorToResponse(full), nil
}
