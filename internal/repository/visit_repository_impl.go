package repository

import (
	"errors"
	"time"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Create(db *gorm.DB, visit *entity.Visit) error {
	return db.Omit("Patient", "Doctor", "Office", "Disease").Create(visit).Error
}

func (r *visitRepository) Update(db *gorm.DB, visit *entity.Visit) error {
	return db.Omit("Patient", "Doctor", "Office", "Disease").Save(visit).Error
}

func (r *visitRepository) FindByID(db *gorm.DB, id uuid.UUID, ownPatientUserID, ownDoctorUserID *uuid.UUID) (*entity.Visit, error) {
	var visit entity.Visit
	query := db.
		Preload("Patient.User").Preload("Patient.Address").
		Preload("Doctor.User").Preload("Doctor.Specializations").
		Preload("Office.OfficeType").
		Preload("Disease").
		Where("visits.id = ?", id)
	query = narrowVisits(query, ownPatientUserID, ownDoctorUserID)

	err := query.First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindAll(db *gorm.DB, filter *entity.VisitFilter, offset, limit int) ([]entity.Visit, int64, error) {
	query := db.Model(&entity.Visit{})

	if filter != nil {
		if filter.DateFrom != nil {
			query = query.Where("visits.date >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			query = query.Where("visits.date <= ?", *filter.DateTo)
		}
		if filter.DurationMin != nil {
			query = query.Where("visits.duration_in_minutes >= ?", *filter.DurationMin)
		}
		if filter.DurationMax != nil {
			query = query.Where("visits.duration_in_minutes <= ?", *filter.DurationMax)
		}
		if filter.Status != "" {
			query = query.Where("visits.status = ?", filter.Status)
		}
		if filter.PatientPesel != "" {
			query = query.
				Joins("JOIN patients ON patients.id = visits.patient_id").
				Where("patients.pesel ILIKE ?", "%"+filter.PatientPesel+"%")
		}
		if filter.DoctorJobExecution != "" {
			query = query.
				Joins("JOIN doctors ON doctors.id = visits.doctor_id").
				Where("doctors.job_execution_number ILIKE ?", "%"+filter.DoctorJobExecution+"%")
		}
		if filter.OfficeTypeName != "" || filter.OfficeFloor != nil {
			query = query.Joins("JOIN offices ON offices.id = visits.office_id")
			if filter.OfficeTypeName != "" {
				query = query.
					Joins("JOIN office_types ON office_types.id = offices.office_type_id").
					Where("office_types.name ILIKE ?", "%"+filter.OfficeTypeName+"%")
			}
			if filter.OfficeFloor != nil {
				query = query.Where("offices.floor = ?", *filter.OfficeFloor)
			}
		}
		if filter.IsRemote != nil {
			query = query.Where("visits.is_remote = ?", *filter.IsRemote)
		}
		if filter.DiseaseName != "" {
			query = query.
				Joins("JOIN diseases ON diseases.id = visits.disease_id").
				Where("diseases.name ILIKE ?", "%"+filter.DiseaseName+"%")
		}
		if filter.ReadableID != nil {
			query = query.Where("visits.readable_id = ?", *filter.ReadableID)
		}
		query = narrowVisits(query, filter.OwnPatientUserID, filter.OwnDoctorUserID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var visits []entity.Visit
	err := query.
		Preload("Patient.User").Preload("Patient.Address").
		Preload("Doctor.User").Preload("Doctor.Specializations").
		Preload("Office.OfficeType").
		Preload("Disease").
		Order("visits.date ASC").
		Offset(offset).Limit(limit).
		Find(&visits).Error
	if err != nil {
		return nil, 0, err
	}
	return visits, total, nil
}

func (r *visitRepository) FindOverlapping(db *gorm.DB, start, end time.Time, excludeID *uuid.UUID) ([]entity.Visit, error) {
	// Half-open interval intersection: touching endpoints do not conflict.
	query := db.Where("date < ? AND predicted_end_date > ?", end, start)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var visits []entity.Visit
	if err := query.Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.VisitStatus) (int64, error) {
	result := db.Model(&entity.Visit{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *visitRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Visit{})
	return result.RowsAffected, result.Error
}

func (r *visitRepository) NextReadableID(db *gorm.DB) (int64, error) {
	return nextReadableID(db, "visits_readable_id_seq")
}

// narrowVisits restricts visibility to rows owned by the given patient or
// doctor user. Enforced in the query predicate, never by post-filtering.
func narrowVisits(query *gorm.DB, ownPatientUserID, ownDoctorUserID *uuid.UUID) *gorm.DB {
	if ownPatientUserID != nil {
		query = query.Where("visits.patient_id IN (SELECT id FROM patients WHERE user_id = ?)", *ownPatientUserID)
	}
	if ownDoctorUserID != nil {
		query = query.Where("visits.doctor_id IN (SELECT id FROM doctors WHERE user_id = ?)", *ownDoctorUserID)
	}
	return query
}
