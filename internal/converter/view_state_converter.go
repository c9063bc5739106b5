package converter

import (
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/service"
)

// ListRequestToViewState converts query DTO to domain view state
func ListRequestToViewState(req *dto.ListDoctorsRequest) entity.ViewState {
	return entity.ViewState{
		Search: req.Search,
		Filter: entity.FilterState{
			ConsultationType:    req.ConsultationType,
			SelectedSpecialties: req.Specialties,
			SortBy:              req.SortBy,
		},
	}
}

// ViewStateToListRequest is the inverse of ListRequestToViewState
func ViewStateToListRequest(state entity.ViewState) *dto.ListDoctorsRequest {
	return &dto.ListDoctorsRequest{
		Search:           state.Search,
		ConsultationType: state.Filter.ConsultationType,
		Specialties:      state.Filter.SelectedSpecialties,
		SortBy:           state.Filter.SortBy,
	}
}

func FilterToResponse(filter entity.FilterState) dto.FilterResponse {
	selected := filter.SelectedSpecialties
	if selected == nil {
		selected = []string{}
	}
	return dto.FilterResponse{
		ConsultationType:    filter.ConsultationType,
		SelectedSpecialties: selected,
		SortBy:              filter.SortBy,
	}
}

func ViewToResponse(view service.View) *dto.ViewResponse {
	return &dto.ViewResponse{
		Query:           view.Query,
		Search:          view.State.Search,
		Input:           view.Input,
		Filters:         FilterToResponse(view.State.Filter),
		Doctors:         DoctorsToResponses(view.Doctors),
		Total:           len(view.Doctors),
		Specialties:     nonNil(view.Specialties),
		Suggestions:     SuggestionsToResponses(view.Suggestions),
		ShowSuggestions: view.ShowSuggestions,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
