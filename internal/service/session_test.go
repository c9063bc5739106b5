package service_test

import (
	"testing"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(initial entity.ViewState) *service.Session {
	doctors := sampleDoctors()
	return service.NewSession(doctors, service.Specialties(doctors), initial)
}

func TestSession_SeedsFromURL(t *testing.T) {
	t.Parallel()

	state, err := service.ParseQuery("sortBy=fees&specialties=Dentist,&search=dr")
	require.NoError(t, err)

	s := newSession(state)
	view := s.View()

	// canonical order is restored
	assert.Equal(t, "search=dr&specialties=Dentist&sortBy=fees", view.Query)
	assert.Equal(t, "dr", view.Input)
	assert.Equal(t, []int{1, 6}, ids(view.Doctors))
	assert.False(t, view.ShowSuggestions)
}

func TestSession_Autocomplete(t *testing.T) {
	t.Parallel()

	t.Run("typing shows suggestions without touching the query", func(t *testing.T) {
		t.Parallel()

		s := newSession(entity.ViewState{})
		s.Type("Dr")

		view := s.View()
		assert.True(t, view.ShowSuggestions)
		assert.Len(t, view.Suggestions, service.MaxSuggestions)
		assert.Equal(t, "", view.Query)
		assert.Len(t, view.Doctors, len(sampleDoctors()))
	})

	t.Run("clearing input hides suggestions", func(t *testing.T) {
		t.Parallel()

		s := newSession(entity.ViewState{})
		s.Type("Dr")
		s.Type("")

		view := s.View()
		assert.False(t, view.ShowSuggestions)
		assert.Empty(t, view.Suggestions)
	})

	t.Run("selecting a suggestion commits its exact name", func(t *testing.T) {
		t.Parallel()

		s := newSession(entity.ViewState{})
		s.Type("dr. m")
		require.NoError(t, s.SelectSuggestion(0))

		view := s.View()
		assert.Equal(t, "Dr. Meera Iyer", view.State.Search)
		assert.Equal(t, "Dr. Meera Iyer", view.Input)
		assert.Equal(t, "search=Dr.+Meera+Iyer", view.Query)
		assert.False(t, view.ShowSuggestions)
		assert.Equal(t, []int{3}, ids(view.Doctors))
	})

	t.Run("selecting outside the list fails", func(t *testing.T) {
		t.Parallel()

		s := newSession(entity.ViewState{})
		s.Type("rahul")

		assert.ErrorIs(t, s.SelectSuggestion(1), service.ErrSuggestionIndex)
		assert.ErrorIs(t, s.SelectSuggestion(-1), service.ErrSuggestionIndex)
		assert.Equal(t, "", s.Query())
	})

	t.Run("hidden suggestions cannot be selected", func(t *testing.T) {
		t.Parallel()

		s := newSession(entity.ViewState{})
		s.Type("dr")
		s.DismissSuggestions()

		assert.ErrorIs(t, s.SelectSuggestion(0), service.ErrSuggestionIndex)
		assert.Equal(t, "", s.Query())
		assert.Equal(t, "", s.View().State.Search)
	})

	t.Run("suggestions hidden by submit cannot be selected", func(t *testing.T) {
		t.Parallel()

		s := newSession(entity.ViewState{})
		s.Type("meera")
		s.SubmitSearch()

		assert.ErrorIs(t, s.SelectSuggestion(0), service.ErrSuggestionIndex)
		assert.Equal(t, "search=meera", s.Query())
	})

	t.Run("submit commits input and hides suggestions", func(t *testing.T) {
		t.Parallel()

		s := newSession(entity.ViewState{})
		s.Type("SHAH")
		s.SubmitSearch()

		view := s.View()
		assert.Equal(t, "search=SHAH", view.Query)
		assert.False(t, view.ShowSuggestions)
		assert.Equal(t, []int{2}, ids(view.Doctors))
	})

	t.Run("dismiss hides suggestions", func(t *testing.T) {
		t.Parallel()

		s := newSession(entity.ViewState{})
		s.Type("Dr")
		s.DismissSuggestions()

		view := s.View()
		assert.False(t, view.ShowSuggestions)
		assert.Empty(t, view.Suggestions)
		assert.Equal(t, "Dr", view.Input)
	})
}

func TestSession_FilterActions(t *testing.T) {
	t.Parallel()

	s := newSession(entity.ViewState{Search: "dr"})

	s.SetConsultationType(entity.ConsultationVideo)
	assert.Equal(t, "search=dr&consultationType=Video+Consult", s.Query())

	s.ToggleSpecialty("Dermatologist")
	s.ToggleSpecialty("Cardiologist")
	assert.Equal(t, "search=dr&consultationType=Video+Consult&specialties=Dermatologist%2CCardiologist", s.Query())

	s.SetSortBy(entity.SortByFees)
	view := s.View()
	assert.Equal(t, []int{3, 2, 6}, ids(view.Doctors))

	s.ToggleSpecialty("Dermatologist")
	assert.Equal(t, []string{"Cardiologist"}, s.View().State.Filter.SelectedSpecialties)

	s.ToggleSpecialty("Cardiologist")
	assert.Equal(t, "search=dr&consultationType=Video+Consult&sortBy=fees", s.Query())

	s.Reset()
	assert.Equal(t, "search=dr", s.Query())
	assert.Len(t, s.View().Doctors, len(sampleDoctors()))
}

func TestSession_QueryMatchesStateAfterEveryAction(t *testing.T) {
	t.Parallel()

	s := newSession(entity.ViewState{})
	actions := []func(){
		func() { s.Type("a") },
		s.SubmitSearch,
		func() { s.SetConsultationType(entity.ConsultationInClinic) },
		func() { s.ToggleSpecialty("Dentist") },
		func() { s.SetSortBy(entity.SortByExperience) },
		func() { s.SetConsultationType("") },
		s.Reset,
	}

	for _, act := range actions {
		act()
		view := s.View()
		decoded, err := service.ParseQuery(view.Query)
		require.NoError(t, err)
		assert.Equal(t, service.EncodeQuery(view.State), view.Query)
		assert.Equal(t, service.EncodeQuery(decoded), view.Query)
	}
}

func TestSession_ViewIsDetached(t *testing.T) {
	t.Parallel()

	s := newSession(entity.ViewState{})
	s.ToggleSpecialty("Dentist")
	before := s.View()

	before.State.Filter.SelectedSpecialties[0] = "Cardiologist"
	before.Specialties[0] = "changed"

	s.SetSortBy(entity.SortByFees)
	after := s.View()

	assert.Equal(t, "specialties=Dentist", before.Query)
	assert.Equal(t, []string{"Dentist"}, after.State.Filter.SelectedSpecialties)
	assert.Equal(t, service.Specialties(sampleDoctors()), after.Specialties)
	assert.Equal(t, "specialties=Dentist&sortBy=fees", after.Query)
}
