package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVisitUsecase struct {
	createErr error
	updateErr error
	deleteErr error
	visit     *dto.VisitResponse
}

func (s *stubVisitUsecase) Create(ctx context.Context, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.visit, nil
}

func (s *stubVisitUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.visit, nil
}

func (s *stubVisitUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteErr
}

func (s *stubVisitUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.VisitResponse, error) {
	return s.visit, nil
}

func (s *stubVisitUsecase) List(ctx context.Context, query *dto.VisitListQuery) (*dto.VisitListResponse, error) {
	return &dto.VisitListResponse{}, nil
}

func (s *stubVisitUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateVisitStatusRequest) (*dto.VisitResponse, error) {
	return s.visit, nil
}

func createVisitBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(dto.CreateVisitRequest{
		PatientID:         uuid.New(),
		DoctorID:          uuid.New(),
		OfficeID:          uuid.New(),
		Date:              time.Now().Add(48 * time.Hour),
		DurationInMinutes: 30,
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestVisitHandlerCreateSuccess(t *testing.T) {
	stub := &stubVisitUsecase{visit: &dto.VisitResponse{ID: uuid.New(), Status: "scheduled"}}
	h := NewVisitHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/visits", createVisitBody(t))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestVisitHandlerCreateFieldErrors(t *testing.T) {
	stub := &stubVisitUsecase{
		createErr: &usecase.ValidationError{Fields: usecase.FieldErrors{
			"date": "Date must be in the future.",
		}},
	}
	h := NewVisitHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/visits", createVisitBody(t))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	fields, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Date must be in the future.", fields["date"])
}

func TestVisitHandlerCreateOverlapAsBusinessRule(t *testing.T) {
	stub := &stubVisitUsecase{createErr: usecase.ErrDoctorOverlap}
	h := NewVisitHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/visits", createVisitBody(t))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	messages, ok := errObj["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Equal(t, "Doctor has an overlapping visit.", messages[0])
}

func TestVisitHandlerCreateRejectsBadDuration(t *testing.T) {
	stub := &stubVisitUsecase{visit: &dto.VisitResponse{}}
	h := NewVisitHandler(stub, validator.NewValidator())

	payload := fmt.Sprintf(
		`{"patient_id":%q,"doctor_id":%q,"office_id":%q,"date":"2026-06-01T10:00:00Z","duration_in_minutes":5}`,
		uuid.New(), uuid.New(), uuid.New(),
	)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/visits", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVisitHandlerUpdateLockedVisit(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"lifecycle locked", usecase.ErrVisitLifecycleLocked, "Cannot modify a visit that is in progress or completed."},
		{"edit window closed", usecase.ErrVisitEditWindowClosed, "Cannot modify the visit within 24 hours of its scheduled start."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubVisitUsecase{updateErr: tt.err}
			h := NewVisitHandler(stub, validator.NewValidator())

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/visits/"+uuid.NewString(), createVisitBody(t))
			req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
			rec := httptest.NewRecorder()
			h.Update(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeBody(t, rec)
			errObj := body["error"].(map[string]interface{})
			messages := errObj["errors"].([]interface{})
			assert.Equal(t, tt.want, messages[0])
		})
	}
}

func TestVisitHandlerUpdateNotFound(t *testing.T) {
	stub := &stubVisitUsecase{updateErr: usecase.ErrVisitNotFound}
	h := NewVisitHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/visits/"+uuid.NewString(), createVisitBody(t))
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVisitHandlerDeleteReferencedVisit(t *testing.T) {
	stub := &stubVisitUsecase{deleteErr: usecase.ErrVisitReferenced}
	h := NewVisitHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/visits/"+uuid.NewString(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": uuid.NewString()})
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	errObj := body["error"].(map[string]interface{})
	messages := errObj["errors"].([]interface{})
	assert.Equal(t, "Cannot delete a visit that is referenced by a prescription.", messages[0])
}

func TestVisitHandlerInvalidID(t *testing.T) {
	stub := &stubVisitUsecase{}
	h := NewVisitHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/visits/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
