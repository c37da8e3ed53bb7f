package usecase

import (
	"context"
	"errors"
	"strings"

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
	ErrPatientNotFound     = errors.New("patient not found")
	ErrPatientNotOwnRecord = errors.New("You do not have permission to perform this action.")
)

type PatientUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	List(ctx context.Context, page, limit int) (*dto.PatientListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

// GetByID retrieves one patient record. A patient sees only their own record;
// anyone else's behaves as absent.
func (u *patientUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDPatient {
		userID, _ := middleware.GetUserIDFromContext(ctx)
		if patient.UserID != userID {
			return nil, ErrPatientNotFound
		}
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, page, limit int) (*dto.PatientListResponse, error) {
	offset := (page - 1) * limit
	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    total,
	}, nil
}

// Update edits a patient record and optionally its address. A patient may
// edit only their own record; admins may edit any.
func (u *patientUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if roleID == entity.RoleIDPatient && patient.UserID != userID {
		return nil, ErrPatientNotOwnRecord
	}

	oldValue := *patient

	user, err := u.userRepo.FindByID(tx, patient.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update patient user %s: %+v", patient.UserID, err)
		return nil, err
	}

	patient.PhoneNumber = req.PhoneNumber
	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	if req.Address != nil {
		address := &entity.Address{
			ID:              patient.AddressID,
			Street:          req.Address.Street,
			HouseNumber:     req.Address.HouseNumber,
			ApartmentNumber: req.Address.ApartmentNumber,
			City:            req.Address.City,
			PostCode:        req.Address.PostCode,
			Country:         strings.ToUpper(req.Address.Country),
		}
		if err := u.patientRepo.UpdateAddress(tx, address); err != nil {
			u.log.Warnf("Failed to update address for patient %s: %+v", id, err)
			return nil, err
		}
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionPatientUpdate, "patient", id.String(), &oldValue, patient); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	u.log.Infof("Patient updated: id=%s", id)

	full, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || full == nil {
		return converter.PatientToResponse(patient), nil
	}
	return converter.PatientToResponse(full), nil
}
