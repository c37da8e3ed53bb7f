package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dictionaryRepository struct{}

func NewDictionaryRepository() domainRepo.DictionaryRepository {
	return &dictionaryRepository{}
}

func (r *dictionaryRepository) FindDiseases(db *gorm.DB, name string, offset, limit int) ([]entity.Disease, int64, error) {
	query := db.Model(&entity.Disease{})
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var diseases []entity.Disease
	err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&diseases).Error
	if err != nil {
		return nil, 0, err
	}
	return diseases, total, nil
}

func (r *dictionaryRepository) FindDiseaseByID(db *gorm.DB, id uuid.UUID) (*entity.Disease, error) {
	var disease entity.Disease
	err := db.Where("id = ?", id).First(&disease).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &disease, nil
}

func (r *dictionaryRepository) FindMedicines(db *gorm.DB, name string, offset, limit int) ([]entity.Medicine, int64, error) {
	query := db.Model(&entity.Medicine{})
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var medicines []entity.Medicine
	err := query.
		Preload("Type").Preload("Form").Preload("ActiveIngredients").
		Order("name ASC").Offset(offset).Limit(limit).
		Find(&medicines).Error
	if err != nil {
		return nil, 0, err
	}
	return medicines, total, nil
}

func (r *dictionaryRepository) FindMedicineByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.Preload("Type").Preload("Form").Preload("ActiveIngredients").
		Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *dictionaryRepository) FindOffices(db *gorm.DB, officeTypeName string, floor *int, offset, limit int) ([]entity.Office, int64, error) {
	query := db.Model(&entity.Office{})
	if officeTypeName != "" {
		query = query.
			Joins("JOIN office_types ON office_types.id = offices.office_type_id").
			Where("office_types.name ILIKE ?", "%"+officeTypeName+"%")
	}
	if floor != nil {
		query = query.Where("offices.floor = ?", *floor)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var offices []entity.Office
	err := query.Preload("OfficeType").
		Order("offices.readable_id ASC").Offset(offset).Limit(limit).
		Find(&offices).Error
	if err != nil {
		return nil, 0, err
	}
	return offices, total, nil
}

func (r *dictionaryRepository) FindOfficeByID(db *gorm.DB, id uuid.UUID) (*entity.Office, error) {
	var office entity.Office
	err := db.Preload("OfficeType").Where("id = ?", id).First(&office).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &office, nil
}

func (r *dictionaryRepository) FindSpecializations(db *gorm.DB, name string, offset, limit int) ([]entity.Specialization, int64, error) {
	query := db.Model(&entity.Specialization{})
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var specializations []entity.Specialization
	err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&specializations).Error
	if err != nil {
		return nil, 0, err
	}
	return specializations, total, nil
}

func (r *dictionaryRepository) FindSpecializationByID(db *gorm.DB, id uuid.UUID) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := db.Where("id = ?", id).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *dictionaryRepository) FindSpecializationsByIDs(db *gorm.DB, ids []uuid.UUID) ([]entity.Specialization, error) {
	var specializations []entity.Specialization
	err := db.Where("id IN ?", ids).Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}
