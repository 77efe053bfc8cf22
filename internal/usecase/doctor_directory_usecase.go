package usecase

import (
	"context"
	"errors"

	"docconnect/internal/converter"
	"docconnect/internal/delivery/dto"
	"docconnect/internal/domain/entity"
	"docconnect/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorDirectoryUsecase interface {
	SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	Suggest(ctx context.Context, term string) (*dto.SuggestionListResponse, error)
	GetCatalog(ctx context.Context) (*dto.CatalogResponse, error)
}

type doctorDirectoryUsecase struct {
	log           *logrus.Logger
	directoryRepo repository.DoctorDirectoryRepository
}

func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	directoryRepo repository.DoctorDirectoryRepository,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:           log,
		directoryRepo: directoryRepo,
	}
}

// SearchDoctors applies the full filter configuration carried by the request.
// The filter is rebuilt from scratch on every call; nothing is kept between
// interactions.
func (u *doctorDirectoryUsecase) SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest) (*dto.DoctorListResponse, error) {
	filter := &entity.DoctorFilter{
		SearchTerm:       req.Search,
		ConsultationType: entity.ConsultationType(req.ConsultationType),
		Specialties:      req.Specialties,
		SortBy:           entity.SortKey(req.SortBy),
		SortOrder:        entity.SortOrder(req.SortOrder),
	}

	doctors := u.directoryRepo.Search(filter)
	u.log.Debugf("Directory search matched %d doctors", len(doctors))

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *doctorDirectoryUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	doctor := u.directoryRepo.FindByID(doctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorDirectoryUsecase) Suggest(ctx context.Context, term string) (*dto.SuggestionListResponse, error) {
	suggestions := u.directoryRepo.Suggest(term)
	return &dto.SuggestionListResponse{
		Suggestions: suggestions,
		Total:       len(suggestions),
	}, nil
}

func (u *doctorDirectoryUsecase) GetCatalog(ctx context.Context) (*dto.CatalogResponse, error) {
	return &dto.CatalogResponse{
		Specialties:       u.directoryRepo.Specialties(),
		ConsultationTypes: u.directoryRepo.ConsultationTypes(),
		AppointmentSlots:  entity.AppointmentSlots(),
	}, nil
}
