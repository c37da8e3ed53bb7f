package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckAssociationExclusivity(t *testing.T) {
	visitID := uuid.New()
	patientID := uuid.New()
	doctorID := uuid.New()

	tests := []struct {
		name    string
		draft   PrescriptionDraft
		wantErr error
	}{
		{
			name:    "visit only",
			draft:   PrescriptionDraft{VisitID: &visitID},
			wantErr: nil,
		},
		{
			name:    "patient and doctor pair",
			draft:   PrescriptionDraft{PatientID: &patientID, DoctorID: &doctorID},
			wantErr: nil,
		},
		{
			name:    "visit with patient",
			draft:   PrescriptionDraft{VisitID: &visitID, PatientID: &patientID},
			wantErr: ErrVisitWithParties,
		},
		{
			name:    "visit with doctor",
			draft:   PrescriptionDraft{VisitID: &visitID, DoctorID: &doctorID},
			wantErr: ErrVisitWithParties,
		},
		{
			name:    "visit with both parties",
			draft:   PrescriptionDraft{VisitID: &visitID, PatientID: &patientID, DoctorID: &doctorID},
			wantErr: ErrVisitWithParties,
		},
		{
			name:    "patient without doctor",
			draft:   PrescriptionDraft{PatientID: &patientID},
			wantErr: ErrIncompleteAssociation,
		},
		{
			name:    "doctor without patient",
			draft:   PrescriptionDraft{DoctorID: &doctorID},
			wantErr: ErrIncompleteAssociation,
		},
		{
			name:    "nothing provided",
			draft:   PrescriptionDraft{},
			wantErr: ErrIncompleteAssociation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkAssociationExclusivity(&tt.draft)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCheckDosageAmounts(t *testing.T) {
	dosage := func(amount string) DosageDraft {
		return DosageDraft{
			MedicineID: uuid.New(),
			Amount:     decimal.RequireFromString(amount),
			Frequency:  "twice daily",
		}
	}

	t.Run("valid amounts", func(t *testing.T) {
		got := checkDosageAmounts([]DosageDraft{dosage("0.5"), dosage("100")})
		assert.Empty(t, got)
	})

	t.Run("zero amount", func(t *testing.T) {
		got := checkDosageAmounts([]DosageDraft{dosage("0")})
		assert.Equal(t, FieldErrors{
			"dosages.0.amount": "Invalid amount. Must be positive and not exceed 100.",
		}, got)
	})

	t.Run("negative amount", func(t *testing.T) {
		got := checkDosageAmounts([]DosageDraft{dosage("-1")})
		assert.Equal(t, FieldErrors{
			"dosages.0.amount": "Invalid amount. Must be positive and not exceed 100.",
		}, got)
	})

	t.Run("amount above the cap", func(t *testing.T) {
		got := checkDosageAmounts([]DosageDraft{dosage("100.01")})
		assert.Equal(t, FieldErrors{
			"dosages.0.amount": "Invalid amount. Must be positive and not exceed 100.",
		}, got)
	})

	t.Run("failures keyed by position", func(t *testing.T) {
		got := checkDosageAmounts([]DosageDraft{dosage("1"), dosage("0"), dosage("2"), dosage("250")})
		assert.Equal(t, FieldErrors{
			"dosages.1.amount": "Invalid amount. Must be positive and not exceed 100.",
			"dosages.3.amount": "Invalid amount. Must be positive and not exceed 100.",
		}, got)
	})
}
