package usecase

import (
	"context"
	"database/sql"
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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrConcurrentScheduling is returned when a concurrent writer took the slot
// between the conflict read and the commit.
var ErrConcurrentScheduling = errors.New("The time slot was taken by a concurrent booking. Please retry.")

// ValidationError carries per-field input failures up to the handler layer.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

type VisitUsecase interface {
	Create(ctx context.Context, req *dto.CreateVisitRequest) (*dto.VisitResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.VisitResponse, error)
	List(ctx context.Context, query *dto.VisitListQuery) (*dto.VisitListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateVisitStatusRequest) (*dto.VisitResponse, error)
}

type visitUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	visitRepo    repository.VisitRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	dictRepo     repository.DictionaryRepository
	auditService service.AuditService
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	visitRepo repository.VisitRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	dictRepo repository.DictionaryRepository,
	auditService service.AuditService,
) VisitUsecase {
	return &visitUsecase{
		db:           db,
		log:          log,
		visitRepo:    visitRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		dictRepo:     dictRepo,
		auditService: auditService,
	}
}

// visitVisibility narrows list/retrieve queries by requester role. Patients
// and doctors see only their own rows; nurses and admins see everything.
func visitVisibility(ctx context.Context) (ownPatientUserID, ownDoctorUserID *uuid.UUID) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, nil
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	switch roleID {
	case entity.RoleIDPatient:
		return &userID, nil
	case entity.RoleIDDoctor:
		return nil, &userID
	}
	return nil, nil
}

// Create validates and persists a new visit.
//
// The conflict-detection read and the insert run in one SERIALIZABLE
// transaction so two concurrent overlapping creations cannot both commit.
// Validation order: reference resolution, field checks (collected together),
// then overlap conflicts checked doctor first, office second, patient last.
func (u *visitUsecase) Create(ctx context.Context, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	draft := &VisitDraft{
		PatientID:         req.PatientID,
		DoctorID:          req.DoctorID,
		OfficeID:          req.OfficeID,
		DiseaseID:         req.DiseaseID,
		Date:              req.Date.UTC(),
		DurationInMinutes: req.DurationInMinutes,
		IsRemote:          req.IsRemote,
		Notes:             req.Notes,
	}

	var visit *entity.Visit
	err := u.runSerializable(ctx, func(tx *gorm.DB) error {
		refErrors, err := u.resolveReferences(tx, draft)
		if err != nil {
			return err
		}
		if err := checkVisitDraft(draft, refErrors, time.Now().UTC()); err != nil {
			return err
		}

		overlapping, err := u.visitRepo.FindOverlapping(tx, draft.Date, draft.PredictedEnd(), nil)
		if err != nil {
			return err
		}
		if err := findSchedulingConflict(draft, overlapping); err != nil {
			return err
		}

		readableID, err := u.visitRepo.NextReadableID(tx)
		if err != nil {
			return err
		}

		visit = &entity.Visit{
			ReadableID:        readableID,
			PatientID:         draft.PatientID,
			DoctorID:          draft.DoctorID,
			OfficeID:          draft.OfficeID,
			DiseaseID:         draft.DiseaseID,
			Date:              draft.Date,
			DurationInMinutes: draft.DurationInMinutes,
			PredictedEndDate:  draft.PredictedEnd(),
			IsRemote:          draft.IsRemote,
			Notes:             draft.Notes,
			Status:            entity.VisitStatusScheduled,
		}
		if err := u.visitRepo.Create(tx, visit); err != nil {
			return err
		}

		return u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionVisitCreate, "visit", visit.ID.String(), visit)
	})
	if err != nil {
		return nil, u.translateSchedulingError(err)
	}

	u.log.Infof("Visit created: id=%s, readable_id=%d, doctor=%s, office=%s", visit.ID, visit.ReadableID, visit.DoctorID, visit.OfficeID)
	return u.reload(ctx, visit.ID, visit)
}

// Update reschedules or reassigns an existing visit. Field-level failures
// report before the locks; a visit in progress or completed is permanently
// locked and a scheduled visit is locked within 24 hours of its start. The
// visit under update is excluded from the conflict scan.
func (u *visitUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	draft := &VisitDraft{
		PatientID:         req.PatientID,
		DoctorID:          req.DoctorID,
		OfficeID:          req.OfficeID,
		DiseaseID:         req.DiseaseID,
		Date:              req.Date.UTC(),
		DurationInMinutes: req.DurationInMinutes,
		IsRemote:          req.IsRemote,
		Notes:             req.Notes,
	}

	var visit *entity.Visit
	err := u.runSerializable(ctx, func(tx *gorm.DB) error {
		existing, err := u.visitRepo.FindByID(tx, id, nil, nil)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrVisitNotFound
		}

		refErrors, err := u.resolveReferences(tx, draft)
		if err != nil {
			return err
		}
		if err := checkVisitDraft(draft, refErrors, time.Now().UTC()); err != nil {
			return err
		}

		if err := checkVisitEditable(existing, time.Now().UTC()); err != nil {
			return err
		}

		overlapping, err := u.visitRepo.FindOverlapping(tx, draft.Date, draft.PredictedEnd(), &id)
		if err != nil {
			return err
		}
		if err := findSchedulingConflict(draft, overlapping); err != nil {
			return err
		}

		oldValue := *existing

		existing.PatientID = draft.PatientID
		existing.DoctorID = draft.DoctorID
		existing.OfficeID = draft.OfficeID
		existing.DiseaseID = draft.DiseaseID
		existing.Date = draft.Date
		existing.DurationInMinutes = draft.DurationInMinutes
		existing.PredictedEndDate = draft.PredictedEnd()
		existing.IsRemote = draft.IsRemote
		existing.Notes = draft.Notes

		if err := u.visitRepo.Update(tx, existing); err != nil {
			return err
		}
		visit = existing

		return u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionVisitUpdate, "visit", id.String(), &oldValue, existing)
	})
	if err != nil {
		return nil, u.translateSchedulingError(err)
	}

	u.log.Infof("Visit updated: id=%s", id)
	return u.reload(ctx, visit.ID, visit)
}

// Delete removes a visit. Deletion is blocked at the database level while a
// prescription still references the visit.
func (u *visitUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.visitRepo.FindByID(tx, id, nil, nil)
	if err != nil {
		u.log.Warnf("Failed to find visit %s: %+v", id, err)
		return err
	}
	if existing == nil {
		return ErrVisitNotFound
	}

	rows, err := u.visitRepo.Delete(tx, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrVisitReferenced
		}
		u.log.Warnf("Failed to delete visit %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrVisitNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionVisitDelete, "visit", id.String(), existing); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	u.log.Infof("Visit deleted: id=%s", id)
	return nil
}

// GetByID retrieves one visit. Rows outside the requester's visibility behave
// as absent, so an ownership miss is a not-found, not a permission error.
func (u *visitUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.VisitResponse, error) {
	ownPatient, ownDoctor := visitVisibility(ctx)

	visit, err := u.visitRepo.FindByID(u.db.WithContext(ctx), id, ownPatient, ownDoctor)
	if err != nil {
		u.log.Warnf("Failed to find visit %s: %+v", id, err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	return converter.VisitToResponse(visit), nil
}

// List returns visits matching the query filters, narrowed by requester role.
func (u *visitUsecase) List(ctx context.Context, query *dto.VisitListQuery) (*dto.VisitListResponse, error) {
	ownPatient, ownDoctor := visitVisibility(ctx)

	filter := &entity.VisitFilter{
		DateFrom:           query.DateFrom,
		DateTo:             query.DateTo,
		DurationMin:        query.DurationMin,
		DurationMax:        query.DurationMax,
		Status:             entity.VisitStatus(query.Status),
		PatientPesel:       query.PatientPesel,
		DoctorJobExecution: query.DoctorJobExecution,
		OfficeTypeName:     query.OfficeTypeName,
		OfficeFloor:        query.OfficeFloor,
		IsRemote:           query.IsRemote,
		DiseaseName:        query.DiseaseName,
		ReadableID:         query.ReadableID,
		OwnPatientUserID:   ownPatient,
		OwnDoctorUserID:    ownDoctor,
	}

	offset := (query.Page - 1) * query.Limit
	visits, total, err := u.visitRepo.FindAll(u.db.WithContext(ctx), filter, offset, query.Limit)
	if err != nil {
		u.log.Warnf("Failed to list visits: %+v", err)
		return nil, err
	}

	return &dto.VisitListResponse{
		Visits: converter.VisitsToResponses(visits),
		Total:  total,
	}, nil
}

// UpdateStatus moves a visit through its lifecycle. Administrative operation;
// the scheduling engine itself never changes status.
func (u *visitUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateVisitStatusRequest) (*dto.VisitResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	status := entity.VisitStatus(req.Status)
	if !entity.ValidVisitStatus(status) {
		return nil, ErrInvalidVisitStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.visitRepo.FindByID(tx, id, nil, nil)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrVisitNotFound
	}

	rows, err := u.visitRepo.UpdateStatus(tx, id, status)
	if err != nil {
		u.log.Warnf("Failed to update visit status %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrVisitNotFound
	}

	metadata := entity.JSON{
		"entity":     "visit",
		"entity_id":  id.String(),
		"old_status": string(existing.Status),
		"new_status": string(status),
	}
	if err := u.auditService.LogAction(ctx, tx, &userID, entity.AuditActionVisitStatusChange, metadata); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	u.log.Infof("Visit status changed: id=%s, status=%s", id, status)

	existing.Status = status
	return u.reload(ctx, id, existing)
}

// resolveReferences verifies every submitted foreign key points at an existing
// row and collects misses as field errors, so the caller can merge them with
// the other field-level checks before reporting.
func (u *visitUsecase) resolveReferences(tx *gorm.DB, draft *VisitDraft) (FieldErrors, error) {
	fieldErrors := FieldErrors{}

	patient, err := u.patientRepo.FindByID(tx, draft.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		fieldErrors["patient_id"] = fmt.Sprintf("Patient %s does not exist.", draft.PatientID)
	}

	doctor, err := u.doctorRepo.FindByID(tx, draft.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		fieldErrors["doctor_id"] = fmt.Sprintf("Doctor %s does not exist.", draft.DoctorID)
	}

	office, err := u.dictRepo.FindOfficeByID(tx, draft.OfficeID)
	if err != nil {
		return nil, err
	}
	if office == nil {
		fieldErrors["office_id"] = fmt.Sprintf("Office %s does not exist.", draft.OfficeID)
	}

	if draft.DiseaseID != nil {
		disease, err := u.dictRepo.FindDiseaseByID(tx, *draft.DiseaseID)
		if err != nil {
			return nil, err
		}
		if disease == nil {
			fieldErrors["disease_id"] = fmt.Sprintf("Disease %s does not exist.", *draft.DiseaseID)
		}
	}

	return fieldErrors, nil
}

// runSerializable executes fc in a SERIALIZABLE transaction.
func (u *visitUsecase) runSerializable(ctx context.Context, fc func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fc, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// translateSchedulingError maps storage-level conflict signals onto the
// business errors the API reports for overlaps. Serialization failures and
// exclusion-constraint violations both mean a concurrent writer won the slot.
func (u *visitUsecase) translateSchedulingError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "40001": // serialization_failure
		return ErrConcurrentScheduling
	case "23P01": // exclusion_violation
		switch pgErr.ConstraintName {
		case "visits_doctor_no_overlap":
			return ErrDoctorOverlap
		case "visits_office_no_overlap":
			return ErrOfficeOverlap
		case "visits_patient_no_overlap":
			return ErrPatientOverlap
		}
		return ErrConcurrentScheduling
	}
	return err
}

// reload fetches the visit with its related records for the response,
// falling back to the bare entity if the read fails.
func (u *visitUsecase) reload(ctx context.Context, id uuid.UUID, fallback *entity.Visit) (*dto.VisitResponse, error) {
	full, err := u.visitRepo.FindByID(u.db.WithContext(ctx), id, nil, nil)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload visit %s: %+v", id, err)
		return converter.VisitToResponse(fallback), nil
	}
	return converter.VisitToResponse(full), nil
}
