package usecase

import (
	"errors"
	"fmt"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPrescriptionNotFound  = errors.New("prescription not found")
	ErrVisitWithParties      = errors.New("Cannot provide patient or doctor when visit is provided.")
	ErrIncompleteAssociation = errors.New("Either the visit must be provided, or both patient and doctor must be provided.")
	ErrPrescriptionNotOwned  = errors.New("You do not have permission to perform this action.")
)

// PrescriptionDraft is the shape of a create request before association
// resolution. Exactly one care context is allowed: a visit reference, or an
// explicit patient+doctor pair.
type PrescriptionDraft struct {
	VisitID          *uuid.UUID
	PatientID        *uuid.UUID
	DoctorID         *uuid.UUID
	PrescriptionCode string
	Description      string
	Dosages          []DosageDraft
}

type DosageDraft struct {
	MedicineID uuid.UUID
	Amount     decimal.Decimal
	Frequency  string
}

// checkAssociationExclusivity enforces the visit XOR patient+doctor rule.
// Derivation of patient and doctor from the visit happens after this check,
// once the visit row has been loaded.
func checkAssociationExclusivity(draft *PrescriptionDraft) error {
	if draft.VisitID != nil {
		if draft.PatientID != nil || draft.DoctorID != nil {
			return ErrVisitWithParties
		}
		return nil
	}
	if draft.PatientID == nil || draft.DoctorID == nil {
		return ErrIncompleteAssociation
	}
	return nil
}

// checkDosageAmounts validates every dosage bound and collects all failures
// keyed by input position, so one bad item reports without hiding the rest.
func checkDosageAmounts(dosages []DosageDraft) FieldErrors {
	fieldErrors := FieldErrors{}
	for i, d := range dosages {
		if !d.Amount.IsPositive() || d.Amount.GreaterThan(entity.MaxDosageAmount) {
			fieldErrors[fmt.Sprintf("dosages.%d.amount", i)] = "Invalid amount. Must be positive and not exceed 100."
		}
	}
	return fieldErrors
}
