package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// PrescriptionToResponse converts a Prescription entity to PrescriptionResponse DTO
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:               prescription.ID,
		ReadableID:       prescription.ReadableID,
		VisitID:          prescription.VisitID,
		PrescriptionCode: prescription.PrescriptionCode,
		Description:      prescription.Description,
		IssueDate:        prescription.IssueDate.Format(dateLayout),
		ExpiryDate:       prescription.ExpiryDate.Format(dateLayout),
		Dosages:          DosagesToResponses(prescription.Dosages),
	}

	if prescription.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&prescription.Patient)
	}
	if prescription.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToResponse(&prescription.Doctor)
	}

	return response
}

// PrescriptionsToResponses converts a slice of Prescription entities to DTOs
func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		resp := PrescriptionToResponse(&prescription)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// DosageToResponse converts a Dosage entity to DosageResponse DTO
func DosageToResponse(dosage *entity.Dosage) *dto.DosageResponse {
	if dosage == nil {
		return nil
	}

	response := &dto.DosageResponse{
		ID:        dosage.ID,
		Amount:    dosage.Amount,
		Frequency: dosage.Frequency,
	}

	if dosage.Medicine.ID != uuid.Nil {
		response.Medicine = MedicineToResponse(&dosage.Medicine)
	}

	return response
}

// DosagesToResponses converts a slice of Dosage entities to DTOs
func DosagesToResponses(dosages []entity.Dosage) []dto.DosageResponse {
	responses := make([]dto.DosageResponse, len(dosages))
	for i, dosage := range dosages {
		resp := DosageToResponse(&dosage)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
