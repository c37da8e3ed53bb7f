package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

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

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error)
	List(ctx context.Context, query *dto.PrescriptionListQuery) (*dto.PrescriptionListResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	visitRepo        repository.VisitRepository
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
	dictRepo         repository.DictionaryRepository
	auditService     service.AuditService
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	visitRepo repository.VisitRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	dictRepo repository.DictionaryRepository,
	auditService service.AuditService,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		visitRepo:        visitRepo,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		dictRepo:         dictRepo,
		auditService:     auditService,
	}
}

// prescriptionVisibility narrows list/retrieve queries. Patients see only
// their own prescriptions; every other role sees all.
func prescriptionVisibility(ctx context.Context) (ownPatientUserID *uuid.UUID) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDPatient {
		return &userID
	}
	return nil
}

// Create validates and persists a prescription with its dosages in one
// transaction. Association is exactly one of: visit reference (patient and
// doctor derived from it), or explicit patient+doctor. The 4-digit code is
// submitted by the caller; issue date is server assigned and expiry is issue
// plus 30 days.
func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	draft := &PrescriptionDraft{
		VisitID:          req.VisitID,
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		PrescriptionCode: req.PrescriptionCode,
		Description:      req.Description,
	}
	for _, d := range req.Dosages {
		draft.Dosages = append(draft.Dosages, DosageDraft{
			MedicineID: d.MedicineID,
			Amount:     d.Amount,
			Frequency:  d.Frequency,
		})
	}

	if err := checkAssociationExclusivity(draft); err != nil {
		return nil, err
	}

	if fieldErrors := checkDosageAmounts(draft.Dosages); len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	var prescription *entity.Prescription
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patientID, doctorID, err := u.resolveParties(tx, draft)
		if err != nil {
			return err
		}

		if err := u.resolveMedicines(tx, draft.Dosages); err != nil {
			return err
		}

		readableID, err := u.prescriptionRepo.NextReadableID(tx)
		if err != nil {
			return err
		}

		issueDate := time.Now().UTC().Truncate(24 * time.Hour)
		prescription = &entity.Prescription{
			ReadableID:       readableID,
			VisitID:          draft.VisitID,
			PatientID:        patientID,
			DoctorID:         doctorID,
			PrescriptionCode: draft.PrescriptionCode,
			Description:      draft.Description,
			IssueDate:        issueDate,
			ExpiryDate:       issueDate.Add(entity.PrescriptionValidity),
		}
		if err := u.prescriptionRepo.Create(tx, prescription); err != nil {
			return err
		}

		dosages := make([]entity.Dosage, len(draft.Dosages))
		for i, d := range draft.Dosages {
			dosages[i] = entity.Dosage{
				PrescriptionID: prescription.ID,
				MedicineID:     d.MedicineID,
				Amount:         d.Amount,
				Frequency:      d.Frequency,
			}
		}
		if err := u.prescriptionRepo.CreateDosages(tx, dosages); err != nil {
			return err
		}

		return u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionPrescriptionCreate, "prescription", prescription.ID.String(), prescription)
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Prescription created: id=%s, readable_id=%d, code=%s", prescription.ID, prescription.ReadableID, prescription.PrescriptionCode)

	full, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), prescription.ID, nil)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload prescription %s: %+v", prescription.ID, err)
		return converter.PrescriptionToResponse(prescription), nil
	}
	return converter.PrescriptionToResponse(full), nil
}

// Delete removes a prescription and its dosages. A doctor may delete only
// prescriptions they issued; admins may delete any.
func (u *prescriptionUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.prescriptionRepo.FindByID(tx, id, nil)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return err
	}
	if existing == nil {
		return ErrPrescriptionNotFound
	}

	if roleID == entity.RoleIDDoctor && existing.Doctor.UserID != userID {
		return ErrPrescriptionNotOwned
	}

	rows, err := u.prescriptionRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete prescription %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrPrescriptionNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionPrescriptionDelete, "prescription", id.String(), existing); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	u.log.Infof("Prescription deleted: id=%s", id)
	return nil
}

// GetByID retrieves one prescription within the requester's visibility.
func (u *prescriptionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	ownPatient := prescriptionVisibility(ctx)

	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id, ownPatient)
	if err != nil {
		u.log.Warnf("Failed to find prescription %s: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	return converter.PrescriptionToResponse(prescription), nil
}

// List returns prescriptions matching the query filters.
func (u *prescriptionUsecase) List(ctx context.Context, query *dto.PrescriptionListQuery) (*dto.PrescriptionListResponse, error) {
	filter := &entity.PrescriptionFilter{
		IssueDateFrom:      query.IssueDateFrom,
		IssueDateTo:        query.IssueDateTo,
		ExpiryDateFrom:     query.ExpiryDateFrom,
		ExpiryDateTo:       query.ExpiryDateTo,
		MedicineName:       query.MedicineName,
		PatientPesel:       query.PatientPesel,
		DoctorJobExecution: query.DoctorJobExecution,
		VisitID:            query.VisitID,
		ReadableID:         query.ReadableID,
		OwnPatientUserID:   prescriptionVisibility(ctx),
	}

	offset := (query.Page - 1) * query.Limit
	prescriptions, total, err := u.prescriptionRepo.FindAll(u.db.WithContext(ctx), filter, offset, query.Limit)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         total,
	}, nil
}

// resolveParties loads the referenced visit or checks the explicit
// patient+doctor pair, and returns the final party IDs.
func (u *prescriptionUsecase) resolveParties(tx *gorm.DB, draft *PrescriptionDraft) (patientID, doctorID uuid.UUID, err error) {
	if draft.VisitID != nil {
		visit, err := u.visitRepo.FindByID(tx, *draft.VisitID, nil, nil)
		if err != nil {
			return uuid.Nil, uuid.Nil, err
		}
		if visit == nil {
			return uuid.Nil, uuid.Nil, &ValidationError{Fields: FieldErrors{
				"visit_id": fmt.Sprintf("Visit %s does not exist.", *draft.VisitID),
			}}
		}
		return visit.PatientID, visit.DoctorID, nil
	}

	fieldErrors := FieldErrors{}

	patient, err := u.patientRepo.FindByID(tx, *draft.PatientID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if patient == nil {
		fieldErrors["patient_id"] = fmt.Sprintf("Patient %s does not exist.", *draft.PatientID)
	}

	doctor, err := u.doctorRepo.FindByID(tx, *draft.DoctorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if doctor == nil {
		fieldErrors["doctor_id"] = fmt.Sprintf("Doctor %s does not exist.", *draft.DoctorID)
	}

	if len(fieldErrors) > 0 {
		return uuid.Nil, uuid.Nil, &ValidationError{Fields: fieldErrors}
	}
	return *draft.PatientID, *draft.DoctorID, nil
}

// resolveMedicines verifies every dosage references an existing medicine.
func (u *prescriptionUsecase) resolveMedicines(tx *gorm.DB, dosages []DosageDraft) error {
	fieldErrors := FieldErrors{}
	for i, d := range dosages {
		medicine, err := u.dictRepo.FindMedicineByID(tx, d.MedicineID)
		if err != nil {
			return err
		}
		if medicine == nil {
			fieldErrors[fmt.Sprintf("dosages.%d.medicine_id", i)] = fmt.Sprintf("Medicine %s does not exist.", d.MedicineID)
		}
	}
	if len(fieldErrors) > 0 {
		return &ValidationError{Fields: fieldErrors}
	}
	return nil
}
