package handler

import (
	"net/http"

	"docconnect/internal/delivery/dto"
	"docconnect/internal/usecase"
	"docconnect/pkg/response"
	"docconnect/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDoctorHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &dto.SearchDoctorsRequest{
		Search:           query.Get("search"),
		ConsultationType: query.Get("consultation_type"),
		Specialties:      query["specialty"],
		SortBy:           query.Get("sort_by"),
		SortOrder:        query.Get("sort_order"),
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.directoryUsecase.SearchDoctors(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to search doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), vars["id"])
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.directoryUsecase.Suggest(r.Context(), r.URL.Query().Get("term"))
	if err != nil {
		response.InternalServerError(w, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.directoryUsecase.GetCatalog(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get catalog")
		return
	}

	response.Success(w, http.StatusOK, "Catalog retrieved successfully", catalog)
}
