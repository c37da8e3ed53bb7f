package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPrescriptionUsecase struct {
	created      *dto.CreatePrescriptionRequest
	prescription *dto.PrescriptionResponse
}

func (s *stubPrescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	s.created = req
	return s.prescription, nil
}

func (s *stubPrescriptionUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubPrescriptionUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PrescriptionResponse, error) {
	return s.prescription, nil
}

func (s *stubPrescriptionUsecase) List(ctx context.Context, query *dto.PrescriptionListQuery) (*dto.PrescriptionListResponse, error) {
	return &dto.PrescriptionListResponse{}, nil
}

func createPrescriptionBody(t *testing.T, code string) *bytes.Buffer {
	t.Helper()
	visitID := uuid.New()
	body, err := json.Marshal(dto.CreatePrescriptionRequest{
		VisitID:          &visitID,
		PrescriptionCode: code,
		Dosages: []dto.DosageRequest{
			{
				MedicineID: uuid.New(),
				Amount:     decimal.NewFromInt(2),
				Frequency:  "twice daily",
			},
		},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestPrescriptionHandlerCreatePersistsSubmittedCode(t *testing.T) {
	stub := &stubPrescriptionUsecase{prescription: &dto.PrescriptionResponse{ID: uuid.New(), PrescriptionCode: "0042"}}
	h := NewPrescriptionHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prescriptions", createPrescriptionBody(t, "0042"))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.created)
	assert.Equal(t, "0042", stub.created.PrescriptionCode)
}

func TestPrescriptionHandlerCreateRejectsBadCode(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"too short", "12"},
		{"too long", "00042"},
		{"non-digits", "00a2"},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPrescriptionUsecase{prescription: &dto.PrescriptionResponse{}}
			h := NewPrescriptionHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/prescriptions", createPrescriptionBody(t, tt.code))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, stub.created)

			body := decodeBody(t, rec)
			fields, ok := body["error"].(map[string]interface{})
			require.True(t, ok)
			assert.Contains(t, fields, "PrescriptionCode")
		})
	}
}
