package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Omit("Visit", "Patient", "Doctor", "Dosages").Create(prescription).Error
}

func (r *prescriptionRepository) CreateDosages(db *gorm.DB, dosages []entity.Dosage) error {
	return db.Omit("Medicine").Create(&dosages).Error
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id uuid.UUID, ownPatientUserID *uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	query := db.
		Preload("Patient.User").Preload("Patient.Address").
		Preload("Doctor.User").Preload("Doctor.Specializations").
		Preload("Dosages", orderDosagesByInsertion).
		Preload("Dosages.Medicine.Form").
		Where("prescriptions.id = ?", id)
	query = narrowPrescriptions(query, ownPatientUserID)

	err := query.First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindAll(db *gorm.DB, filter *entity.PrescriptionFilter, offset, limit int) ([]entity.Prescription, int64, error) {
	query := db.Model(&entity.Prescription{})

	if filter != nil {
		if filter.IssueDateFrom != nil {
			query = query.Where("prescriptions.issue_date >= ?", *filter.IssueDateFrom)
		}
		if filter.IssueDateTo != nil {
			query = query.Where("prescriptions.issue_date <= ?", *filter.IssueDateTo)
		}
		if filter.ExpiryDateFrom != nil {
			query = query.Where("prescriptions.expiry_date >= ?", *filter.ExpiryDateFrom)
		}
		if filter.ExpiryDateTo != nil {
			query = query.Where("prescriptions.expiry_date <= ?", *filter.ExpiryDateTo)
		}
		if filter.MedicineName != "" {
			query = query.Where(
				"prescriptions.id IN (SELECT dosages.prescription_id FROM dosages JOIN medicines ON medicines.id = dosages.medicine_id WHERE medicines.name ILIKE ?)",
				"%"+filter.MedicineName+"%",
			)
		}
		if filter.PatientPesel != "" {
			query = query.
				Joins("JOIN patients ON patients.id = prescriptions.patient_id").
				Where("patients.pesel ILIKE ?", "%"+filter.PatientPesel+"%")
		}
		if filter.DoctorJobExecution != "" {
			query = query.
				Joins("JOIN doctors ON doctors.id = prescriptions.doctor_id").
				Where("doctors.job_execution_number ILIKE ?", "%"+filter.DoctorJobExecution+"%")
		}
		if filter.VisitID != nil {
			query = query.Where("prescriptions.visit_id = ?", *filter.VisitID)
		}
		if filter.ReadableID != nil {
			query = query.Where("prescriptions.readable_id = ?", *filter.ReadableID)
		}
		query = narrowPrescriptions(query, filter.OwnPatientUserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var prescriptions []entity.Prescription
	err := query.
		Preload("Patient.User").Preload("Patient.Address").
		Preload("Doctor.User").Preload("Doctor.Specializations").
		Preload("Dosages", orderDosagesByInsertion).
		Preload("Dosages.Medicine.Form").
		Order("prescriptions.issue_date DESC").
		Offset(offset).Limit(limit).
		Find(&prescriptions).Error
	if err != nil {
		return nil, 0, err
	}
	return prescriptions, total, nil
}

func (r *prescriptionRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Prescription{})
	return result.RowsAffected, result.Error
}

func (r *prescriptionRepository) NextReadableID(db *gorm.DB) (int64, error) {
	return nextReadableID(db, "prescriptions_readable_id_seq")
}

// orderDosagesByInsertion keeps preloaded dosages aligned to the order they
// were submitted and inserted in.
func orderDosagesByInsertion(db *gorm.DB) *gorm.DB {
	return db.Order("dosages.id")
}

func narrowPrescriptions(query *gorm.DB, ownPatientUserID *uuid.UUID) *gorm.DB {
	if ownPatientUserID != nil {
		query = query.Where("prescriptions.patient_id IN (SELECT id FROM patients WHERE user_id = ?)", *ownPatientUserID)
	}
	return query
}
