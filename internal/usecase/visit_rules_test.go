package usecase

import (
	"testing"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVisitFields(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration int
		date     time.Time
		want     FieldErrors
	}{
		{
			name:     "valid draft",
			duration: 30,
			date:     now.Add(48 * time.Hour),
			want:     FieldErrors{},
		},
		{
			name:     "duration below minimum",
			duration: 9,
			date:     now.Add(48 * time.Hour),
			want: FieldErrors{
				"duration_in_minutes": "Duration of the visit must be between 10 and 180 minutes.",
			},
		},
		{
			name:     "duration above maximum",
			duration: 181,
			date:     now.Add(48 * time.Hour),
			want: FieldErrors{
				"duration_in_minutes": "Duration of the visit must be between 10 and 180 minutes.",
			},
		},
		{
			name:     "duration at bounds is accepted",
			duration: 180,
			date:     now.Add(48 * time.Hour),
			want:     FieldErrors{},
		},
		{
			name:     "date in the past",
			duration: 30,
			date:     now.Add(-time.Hour),
			want: FieldErrors{
				"date": "Date must be in the future.",
			},
		},
		{
			name:     "date exactly now is not in the future",
			duration: 30,
			date:     now,
			want: FieldErrors{
				"date": "Date must be in the future.",
			},
		},
		{
			name:     "both failures reported together",
			duration: 5,
			date:     now.Add(-time.Hour),
			want: FieldErrors{
				"duration_in_minutes": "Duration of the visit must be between 10 and 180 minutes.",
				"date":                "Date must be in the future.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &VisitDraft{
				PatientID:         uuid.New(),
				DoctorID:          uuid.New(),
				OfficeID:          uuid.New(),
				Date:              tt.date,
				DurationInMinutes: tt.duration,
			}
			assert.Equal(t, tt.want, checkVisitFields(draft, now))
		})
	}
}

func TestVisitDraftPredictedEnd(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	draft := &VisitDraft{Date: start, DurationInMinutes: 45}
	assert.Equal(t, start.Add(45*time.Minute), draft.PredictedEnd())
}

func TestCheckVisitDraft(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	validDraft := func() *VisitDraft {
		return &VisitDraft{
			PatientID:         uuid.New(),
			DoctorID:          uuid.New(),
			OfficeID:          uuid.New(),
			Date:              now.Add(48 * time.Hour),
			DurationInMinutes: 30,
		}
	}

	t.Run("no failures", func(t *testing.T) {
		assert.NoError(t, checkVisitDraft(validDraft(), FieldErrors{}, now))
	})

	t.Run("reference miss alone", func(t *testing.T) {
		refErrors := FieldErrors{"doctor_id": "Doctor does not exist."}
		err := checkVisitDraft(validDraft(), refErrors, now)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, refErrors, validationErr.Fields)
	})

	t.Run("reference miss and bad field report together", func(t *testing.T) {
		draft := validDraft()
		draft.DurationInMinutes = 5
		refErrors := FieldErrors{"doctor_id": "Doctor does not exist."}

		err := checkVisitDraft(draft, refErrors, now)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, FieldErrors{
			"doctor_id":           "Doctor does not exist.",
			"duration_in_minutes": "Duration of the visit must be between 10 and 180 minutes.",
		}, validationErr.Fields)
	})
}

// Update validates the submitted fields before it checks the locks, so a
// completed visit patched with a bad duration reports the duration error.
func TestUpdateChecksFieldsBeforeLocks(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	completed := &entity.Visit{Status: entity.VisitStatusCompleted, Date: now.Add(-48 * time.Hour)}

	draft := &VisitDraft{
		PatientID:         uuid.New(),
		DoctorID:          uuid.New(),
		OfficeID:          uuid.New(),
		Date:              now.Add(48 * time.Hour),
		DurationInMinutes: 5,
	}

	err := checkVisitDraft(draft, FieldErrors{}, now)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "duration_in_minutes")
	assert.NotErrorIs(t, err, ErrVisitLifecycleLocked)

	draft.DurationInMinutes = 30
	require.NoError(t, checkVisitDraft(draft, FieldErrors{}, now))
	assert.ErrorIs(t, checkVisitEditable(completed, now), ErrVisitLifecycleLocked)
}

func TestCheckVisitEditable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  entity.VisitStatus
		date    time.Time
		wantErr error
	}{
		{
			name:    "scheduled well before start",
			status:  entity.VisitStatusScheduled,
			date:    now.Add(25 * time.Hour),
			wantErr: nil,
		},
		{
			name:    "scheduled within the lock window",
			status:  entity.VisitStatusScheduled,
			date:    now.Add(23*time.Hour + 59*time.Minute),
			wantErr: ErrVisitEditWindowClosed,
		},
		{
			name:    "exactly 24 hours before start is locked",
			status:  entity.VisitStatusScheduled,
			date:    now.Add(24 * time.Hour),
			wantErr: ErrVisitEditWindowClosed,
		},
		{
			name:    "in progress",
			status:  entity.VisitStatusInProgress,
			date:    now.Add(48 * time.Hour),
			wantErr: ErrVisitLifecycleLocked,
		},
		{
			name:    "completed",
			status:  entity.VisitStatusCompleted,
			date:    now.Add(-48 * time.Hour),
			wantErr: ErrVisitLifecycleLocked,
		},
		{
			name:    "cancelled follows the window rule only",
			status:  entity.VisitStatusCancelled,
			date:    now.Add(48 * time.Hour),
			wantErr: nil,
		},
		{
			name:    "lifecycle lock wins over the window",
			status:  entity.VisitStatusInProgress,
			date:    now.Add(time.Hour),
			wantErr: ErrVisitLifecycleLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visit := &entity.Visit{Status: tt.status, Date: tt.date}
			err := checkVisitEditable(visit, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestFindSchedulingConflict(t *testing.T) {
	doctorID := uuid.New()
	officeID := uuid.New()
	patientID := uuid.New()

	draft := &VisitDraft{
		PatientID: patientID,
		DoctorID:  doctorID,
		OfficeID:  officeID,
	}

	otherVisit := func() entity.Visit {
		return entity.Visit{
			PatientID: uuid.New(),
			DoctorID:  uuid.New(),
			OfficeID:  uuid.New(),
		}
	}

	t.Run("no conflict among unrelated visits", func(t *testing.T) {
		assert.NoError(t, findSchedulingConflict(draft, []entity.Visit{otherVisit(), otherVisit()}))
	})

	t.Run("doctor conflict", func(t *testing.T) {
		v := otherVisit()
		v.DoctorID = doctorID
		assert.ErrorIs(t, findSchedulingConflict(draft, []entity.Visit{v}), ErrDoctorOverlap)
	})

	t.Run("office conflict", func(t *testing.T) {
		v := otherVisit()
		v.OfficeID = officeID
		assert.ErrorIs(t, findSchedulingConflict(draft, []entity.Visit{v}), ErrOfficeOverlap)
	})

	t.Run("patient conflict", func(t *testing.T) {
		v := otherVisit()
		v.PatientID = patientID
		assert.ErrorIs(t, findSchedulingConflict(draft, []entity.Visit{v}), ErrPatientOverlap)
	})

	t.Run("doctor reported before office even when office conflicts first", func(t *testing.T) {
		officeClash := otherVisit()
		officeClash.OfficeID = officeID
		doctorClash := otherVisit()
		doctorClash.DoctorID = doctorID
		err := findSchedulingConflict(draft, []entity.Visit{officeClash, doctorClash})
		assert.ErrorIs(t, err, ErrDoctorOverlap)
	})

	t.Run("office reported before patient", func(t *testing.T) {
		patientClash := otherVisit()
		patientClash.PatientID = patientID
		officeClash := otherVisit()
		officeClash.OfficeID = officeID
		err := findSchedulingConflict(draft, []entity.Visit{patientClash, officeClash})
		assert.ErrorIs(t, err, ErrOfficeOverlap)
	})

	t.Run("only one conflict reported", func(t *testing.T) {
		v := otherVisit()
		v.DoctorID = doctorID
		v.OfficeID = officeID
		v.PatientID = patientID
		err := findSchedulingConflict(draft, []entity.Visit{v})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDoctorOverlap)
	})

	t.Run("empty candidate set", func(t *testing.T) {
		assert.NoError(t, findSchedulingConflict(draft, nil))
	})
}
