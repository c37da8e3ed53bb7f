package usecase

import (
	"context"
	"errors"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDiseaseNotFound        = errors.New("disease not found")
	ErrMedicineNotFound       = errors.New("medicine not found")
	ErrOfficeNotFound         = errors.New("office not found")
	ErrSpecializationNotFound = errors.New("specialization not found")
)

// DictionaryUsecase serves the read-only reference catalogs.
type DictionaryUsecase interface {
	ListDiseases(ctx context.Context, name string, page, limit int) (*dto.DiseaseListResponse, error)
	GetDisease(ctx context.Context, id uuid.UUID) (*dto.DiseaseResponse, error)
	ListMedicines(ctx context.Context, name string, page, limit int) (*dto.MedicineListResponse, error)
	GetMedicine(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error)
	ListOffices(ctx context.Context, officeTypeName string, floor *int, page, limit int) (*dto.OfficeListResponse, error)
	GetOffice(ctx context.Context, id uuid.UUID) (*dto.OfficeResponse, error)
	ListSpecializations(ctx context.Context, name string, page, limit int) (*dto.SpecializationListResponse, error)
	GetSpecialization(ctx context.Context, id uuid.UUID) (*dto.SpecializationResponse, error)
}

type dictionaryUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	dictRepo repository.DictionaryRepository
}

func NewDictionaryUsecase(db *gorm.DB, log *logrus.Logger, dictRepo repository.DictionaryRepository) DictionaryUsecase {
	return &dictionaryUsecase{
		db:       db,
		log:      log,
		dictRepo: dictRepo,
	}
}

func (u *dictionaryUsecase) ListDiseases(ctx context.Context, name string, page, limit int) (*dto.DiseaseListResponse, error) {
	diseases, _, err := u.dictRepo.FindDiseases(u.db.WithContext(ctx), name, (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to list diseases: %+v", err)
		return nil, err
	}
	return &dto.DiseaseListResponse{Diseases: converter.DiseasesToResponses(diseases)}, nil
}

func (u *dictionaryUsecase) GetDisease(ctx context.Context, id uuid.UUID) (*dto.DiseaseResponse, error) {
	disease, err := u.dictRepo.FindDiseaseByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if disease == nil {
		return nil, ErrDiseaseNotFound
	}
	return converter.DiseaseToResponse(disease), nil
}

func (u *dictionaryUsecase) ListMedicines(ctx context.Context, name string, page, limit int) (*dto.MedicineListResponse, error) {
	medicines, total, err := u.dictRepo.FindMedicines(u.db.WithContext(ctx), name, (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, err
	}
	return &dto.MedicineListResponse{
		Medicines: converter.MedicinesToResponses(medicines),
		Total:     total,
	}, nil
}

func (u *dictionaryUsecase) GetMedicine(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error) {
	medicine, err := u.dictRepo.FindMedicineByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}
	return converter.MedicineToResponse(medicine), nil
}

func (u *dictionaryUsecase) ListOffices(ctx context.Context, officeTypeName string, floor *int, page, limit int) (*dto.OfficeListResponse, error) {
	offices, _, err := u.dictRepo.FindOffices(u.db.WithContext(ctx), officeTypeName, floor, (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to list offices: %+v", err)
		return nil, err
	}
	return &dto.OfficeListResponse{Offices: converter.OfficesToResponses(offices)}, nil
}

func (u *dictionaryUsecase) GetOffice(ctx context.Context, id uuid.UUID) (*dto.OfficeResponse, error) {
	office, err := u.dictRepo.FindOfficeByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if office == nil {
		return nil, ErrOfficeNotFound
	}
	return converter.OfficeToResponse(office), nil
}

func (u *dictionaryUsecase) ListSpecializations(ctx context.Context, name string, page, limit int) (*dto.SpecializationListResponse, error) {
	specializations, _, err := u.dictRepo.FindSpecializations(u.db.WithContext(ctx), name, (page-1)*limit, limit)
	if err != nil {
		u.log.Warnf("Failed to list specializations: %+v", err)
		return nil, err
	}
	return &dto.SpecializationListResponse{Specializations: converter.SpecializationsToResponses(specializations)}, nil
}

func (u *dictionaryUsecase) GetSpecialization(ctx context.Context, id uuid.UUID) (*dto.SpecializationResponse, error) {
	specialization, err := u.dictRepo.FindSpecializationByID(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}
	responses := converter.SpecializationsToResponses([]entity.Specialization{*specialization})
	return &responses[0], nil
}
