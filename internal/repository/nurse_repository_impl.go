package repository

import (
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type nurseRepository struct{}

func NewNurseRepository() domainRepo.NurseRepository {
	return &nurseRepository{}
}

func (r *nurseRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Nurse, error) {
	var nurse entity.Nurse
	err := db.Preload("User").Where("id = ?", id).First(&nurse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &nurse, nil
}

func (r *nurseRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Nurse, error) {
	var nurse entity.Nurse
	err := db.Preload("User").Where("user_id = ?", userID).First(&nurse).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &nurse, nil
}

func (r *nurseRepository) FindAll(db *gorm.DB, offset, limit int) ([]entity.Nurse, int64, error) {
	var total int64
	if err := db.Model(&entity.Nurse{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var nurses []entity.Nurse
	err := db.Preload("User").
		Order("readable_id ASC").
		Offset(offset).Limit(limit).
		Find(&nurses).Error
	if err != nil {
		return nil, 0, err
	}
	return nurses, total, nil
}
