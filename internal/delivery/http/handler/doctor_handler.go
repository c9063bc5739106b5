package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/service"
	"doctor-directory/internal/usecase"
	"doctor-directory/pkg/response"
	"doctor-directory/pkg/validator"
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

func (h *DoctorHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := h.directoryUsecase.GetStatus(r.Context())
	response.Success(w, http.StatusOK, "Status retrieved successfully", status)
}

// ListDoctors serves the filtered and sorted view for the state encoded in the query string.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	state := service.DecodeQuery(r.URL.Query())
	req := converter.ViewStateToListRequest(state)

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.directoryUsecase.ListDoctors(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to get doctors")
		return
	}

	message := "Doctors retrieved successfully"
	if doctors.CatalogTotal == 0 {
		message = "No doctors found"
	}
	response.Success(w, http.StatusOK, message, doctors)
}

func (h *DoctorHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	req := &dto.SuggestionRequest{Query: r.URL.Query().Get("q")}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	suggestions, err := h.directoryUsecase.Suggest(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to get suggestions")
		return
	}

	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directoryUsecase.GetSpecialties(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to get specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *DoctorHandler) ApplyViewAction(w http.ResponseWriter, r *http.Request) {
	var req dto.ViewActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	view, err := h.directoryUsecase.ApplyViewAction(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "Failed to apply view action")
		return
	}

	response.Success(w, http.StatusOK, "View updated successfully", view)
}

func (h *DoctorHandler) writeError(w http.ResponseWriter, err error, fallback string) {
	var fetchErr *entity.FetchError

	switch {
	case errors.Is(err, usecase.ErrCatalogLoading):
		response.ServiceUnavailable(w, "Loading...", map[string]string{"state": "loading"})
	case errors.As(err, &fetchErr):
		response.BadGateway(w, fetchErr.Error())
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		response.BadGateway(w, err.Error())
	case errors.Is(err, usecase.ErrSuggestionIndex):
		response.BadRequest(w, "Suggestion not found")
	case errors.Is(err, usecase.ErrUnknownAction),
		errors.Is(err, usecase.ErrInvalidActionValue),
		errors.Is(err, usecase.ErrInvalidQuery):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
