package usecase

import (
	"errors"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrVisitNotFound         = errors.New("visit not found")
	ErrVisitLifecycleLocked  = errors.New("Cannot modify a visit that is in progress or completed.")
	ErrVisitEditWindowClosed = errors.New("Cannot modify the visit within 24 hours of its scheduled start.")
	ErrDoctorOverlap         = errors.New("Doctor has an overlapping visit.")
	ErrOfficeOverlap         = errors.New("Office is not available during the selected time.")
	ErrPatientOverlap        = errors.New("Patient has an overlapping visit.")
	ErrInvalidVisitStatus    = errors.New("invalid visit status")
	ErrVisitReferenced       = errors.New("Cannot delete a visit that is referenced by a prescription.")
)

// FieldErrors collects per-field validation messages for a single request.
type FieldErrors map[string]string

// VisitDraft is the validated shape of a create or update request after
// reference resolution. PredictedEnd is derived, never submitted.
type VisitDraft struct {
	PatientID         uuid.UUID
	DoctorID          uuid.UUID
	OfficeID          uuid.UUID
	DiseaseID         *uuid.UUID
	Date              time.Time
	DurationInMinutes int
	IsRemote          bool
	Notes             string
}

// PredictedEnd returns the exclusive end of the visit interval.
func (d *VisitDraft) PredictedEnd() time.Time {
	return d.Date.Add(time.Duration(d.DurationInMinutes) * time.Minute)
}

// checkVisitFields validates the submitted values and collects every failure
// so the caller reports them together rather than one at a time.
func checkVisitFields(draft *VisitDraft, now time.Time) FieldErrors {
	fieldErrors := FieldErrors{}

	if draft.DurationInMinutes < entity.VisitMinDurationMinutes || draft.DurationInMinutes > entity.VisitMaxDurationMinutes {
		fieldErrors["duration_in_minutes"] = "Duration of the visit must be between 10 and 180 minutes."
	}

	if !draft.Date.After(now) {
		fieldErrors["date"] = "Date must be in the future."
	}

	return fieldErrors
}

// checkVisitDraft merges reference-resolution misses with the field checks so
// a request with an unknown reference and a bad field reports both at once.
func checkVisitDraft(draft *VisitDraft, refErrors FieldErrors, now time.Time) error {
	fieldErrors := FieldErrors{}
	for field, msg := range refErrors {
		fieldErrors[field] = msg
	}
	for field, msg := range checkVisitFields(draft, now) {
		fieldErrors[field] = msg
	}
	if len(fieldErrors) > 0 {
		return &ValidationError{Fields: fieldErrors}
	}
	return nil
}

// checkVisitEditable guards modification of an existing visit. A visit that
// has started or finished is permanently locked; a scheduled visit is locked
// once it is 24 hours or less from its start.
func checkVisitEditable(existing *entity.Visit, now time.Time) error {
	if existing.IsLifecycleLocked() {
		return ErrVisitLifecycleLocked
	}
	if existing.InEditLockWindow(now) {
		return ErrVisitEditWindowClosed
	}
	return nil
}

// findSchedulingConflict scans candidate visits overlapping the draft
// interval and reports the first conflict found, checking the doctor first,
// then the office, then the patient. At most one conflict is reported even
// when several exist.
func findSchedulingConflict(draft *VisitDraft, overlapping []entity.Visit) error {
	for _, v := range overlapping {
		if v.DoctorID == draft.DoctorID {
			return ErrDoctorOverlap
		}
	}
	for _, v := range overlapping {
		if v.OfficeID == draft.OfficeID {
			return ErrOfficeOverlap
		}
	}
	for _, v := range overlapping {
		if v.PatientID == draft.PatientID {
			return ErrPatientOverlap
		}
	}
	return nil
}
