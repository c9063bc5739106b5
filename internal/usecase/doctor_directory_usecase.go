package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrCatalogLoading     = errors.New("doctor list is still loading")
	ErrCatalogUnavailable = errors.New("doctor list unavailable")
	ErrUnknownAction      = errors.New("unknown view action")
	ErrInvalidActionValue = errors.New("invalid view action value")
	ErrInvalidQuery       = errors.New("invalid query string")
	ErrSuggestionIndex    = service.ErrSuggestionIndex
)

type DoctorDirectoryUsecase interface {
	GetStatus(ctx context.Context) *dto.StatusResponse
	ListDoctors(ctx context.Context, req *dto.ListDoctorsRequest) (*dto.DoctorListResponse, error)
	Suggest(ctx context.Context, req *dto.SuggestionRequest) (*dto.SuggestionListResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	ApplyViewAction(ctx context.Context, req *dto.ViewActionRequest) (*dto.ViewResponse, error)
}

type doctorDirectoryUsecase struct {
	log     *logrus.Logger
	catalog *service.Catalog
}

func NewDoctorDirectoryUsecase(log *logrus.Logger, catalog *service.Catalog) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:     log,
		catalog: catalog,
	}
}

func (u *doctorDirectoryUsecase) GetStatus(ctx context.Context) *dto.StatusResponse {
	snap := u.catalog.Snapshot()

	status := &dto.StatusResponse{
		State: string(snap.State),
		Total: len(snap.Doctors),
	}
	switch snap.State {
	case service.CatalogLoading:
		status.Message = "Loading..."
	case service.CatalogError:
		status.Message = snap.Err.Error()
	case service.CatalogReady:
		if len(snap.Doctors) == 0 {
			status.Message = "No doctors found"
		}
	}
	return status
}

func (u *doctorDirectoryUsecase) ListDoctors(ctx context.Context, req *dto.ListDoctorsRequest) (*dto.DoctorListResponse, error) {
	snap, err := u.readySnapshot()
	if err != nil {
		return nil, err
	}

	state := converter.ListRequestToViewState(req)
	doctors := service.ApplyFilters(snap.Doctors, state.Search, state.Filter)

	return &dto.DoctorListResponse{
		Query:        service.EncodeQuery(state),
		Search:       state.Search,
		Filters:      converter.FilterToResponse(state.Filter),
		Doctors:      converter.DoctorsToResponses(doctors),
		Total:        len(doctors),
		CatalogTotal: len(snap.Doctors),
		Specialties:  snap.Specialties,
	}, nil
}

func (u *doctorDirectoryUsecase) Suggest(ctx context.Context, req *dto.SuggestionRequest) (*dto.SuggestionListResponse, error) {
	snap, err := u.readySnapshot()
	if err != nil {
		return nil, err
	}

	return &dto.SuggestionListResponse{
		Query:       req.Query,
		Suggestions: converter.SuggestionsToResponses(service.Suggest(snap.Doctors, req.Query)),
	}, nil
}

func (u *doctorDirectoryUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	snap, err := u.readySnapshot()
	if err != nil {
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: snap.Specialties,
		Total:       len(snap.Specialties),
	}, nil
}

// ApplyViewAction rebuilds a session from the query string, replays the live
// input and applies one action. The returned view carries the rewritten query.
func (u *doctorDirectoryUsecase) ApplyViewAction(ctx context.Context, req *dto.ViewActionRequest) (*dto.ViewResponse, error) {
	snap, err := u.readySnapshot()
	if err != nil {
		return nil, err
	}

	state, err := service.ParseQuery(req.Query)
	if err != nil {
		u.logger(ctx).Warnf("Failed to parse view query %q: %+v", req.Query, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	session := service.NewSession(snap.Doctors, snap.Specialties, state)
	if req.Input != nil {
		session.Type(*req.Input)
	}

	switch req.Action {
	case dto.ActionType:
		session.Type(req.Value)
	case dto.ActionSubmitSearch:
		session.SubmitSearch()
	case dto.ActionSelectSuggestion:
		if err := session.SelectSuggestion(req.Index); err != nil {
			u.logger(ctx).Warnf("Failed to select suggestion %d: %+v", req.Index, err)
			return nil, err
		}
	case dto.ActionDismissSuggestions:
		session.DismissSuggestions()
	case dto.ActionSetConsultationType:
		if req.Value != "" && !slices.Contains(entity.ConsultationTypes, req.Value) {
			return nil, fmt.Errorf("%w: consultation type %q", ErrInvalidActionValue, req.Value)
		}
		session.SetConsultationType(req.Value)
	case dto.ActionToggleSpecialty:
		if req.Value == "" || strings.Contains(req.Value, ",") {
			return nil, fmt.Errorf("%w: specialty %q", ErrInvalidActionValue, req.Value)
		}
		session.ToggleSpecialty(req.Value)
	case dto.ActionSetSortBy:
		if req.Value != entity.SortByNone && req.Value != entity.SortByFees && req.Value != entity.SortByExperience {
			return nil, fmt.Errorf("%w: sort key %q", ErrInvalidActionValue, req.Value)
		}
		session.SetSortBy(req.Value)
	case dto.ActionReset:
		session.Reset()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, req.Action)
	}

	u.logger(ctx).Debugf("Applied view action %s, query now %q", req.Action, session.Query())
	return converter.ViewToResponse(session.View()), nil
}

func (u *doctorDirectoryUsecase) readySnapshot() (service.CatalogSnapshot, error) {
	snap := u.catalog.Snapshot()
	switch snap.State {
	case service.CatalogLoading:
		return snap, ErrCatalogLoading
	case service.CatalogError:
		return snap, fmt.Errorf("%w: %w", ErrCatalogUnavailable, snap.Err)
	}
	return snap, nil
}

// logger tags entries with the request id when the request carries one
func (u *doctorDirectoryUsecase) logger(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(u.log)
	if requestID, ok := middleware.GetRequestIDFromContext(ctx); ok {
		entry = entry.WithField("request_id", requestID)
	}
	return entry
}
