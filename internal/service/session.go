package service

import (
	"errors"
	"slices"
	"sync"

	"doctor-directory/internal/domain/entity"
)

// ErrSuggestionIndex is returned when a suggestion outside the visible list is selected.
var ErrSuggestionIndex = errors.New("suggestion index out of range")

// View is an immutable snapshot of a session, ready for rendering.
type View struct {
	Query           string
	State           entity.ViewState
	Input           string
	Doctors         []entity.Doctor
	Specialties     []string
	Suggestions     []Suggestion
	ShowSuggestions bool
}

// Session owns the search term, filter state and autocomplete state of one
// viewer. Every user action updates the state first, then the canonical
// query; readers only ever see View snapshots.
type Session struct {
	mu sync.Mutex

	doctors     []entity.Doctor
	specialties []string

	state           entity.ViewState
	query           string
	input           string
	suggestions     []Suggestion
	showSuggestions bool
}

// NewSession seeds a session from the decoded URL state. The URL is
// authoritative on load, so the canonical query is recomputed from it.
func NewSession(doctors []entity.Doctor, specialties []string, initial entity.ViewState) *Session {
	s := &Session{
		doctors:     doctors,
		specialties: specialties,
		state:       initial.Clone(),
		input:       initial.Search,
	}
	s.query = EncodeQuery(s.state)
	return s
}

// Query returns the canonical query string of the current state.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Type records live input in the search box and recomputes suggestions.
// The committed search term and the URL are left alone.
func (s *Session) Type(input string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.input = input
	if input == "" {
		s.suggestions = nil
		s.showSuggestions = false
	} else {
		s.suggestions = Suggest(s.doctors, input)
		s.showSuggestions = true
	}
}

// SubmitSearch commits the current input as the search term.
func (s *Session) SubmitSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.showSuggestions = false
	s.state.Search = s.input
	s.commitLocked()
}

// SelectSuggestion commits the exact name of the visible suggestion at index.
func (s *Session) SelectSuggestion(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.showSuggestions || index < 0 || index >= len(s.suggestions) {
		return ErrSuggestionIndex
	}

	s.input = s.suggestions[index].Name
	s.showSuggestions = false
	s.state.Search = s.input
	s.commitLocked()
	return nil
}

// DismissSuggestions hides the suggestion list, e.g. on a pointer event
// outside the search box.
func (s *Session) DismissSuggestions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.showSuggestions = false
}

func (s *Session) SetConsultationType(consultationType string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Filter.ConsultationType = consultationType
	s.commitLocked()
}

// ToggleSpecialty adds the specialty to the selection, or removes it if already selected.
func (s *Session) ToggleSpecialty(specialty string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := s.state.Filter.SelectedSpecialties
	if s.state.Filter.HasSpecialty(specialty) {
		selected = slices.DeleteFunc(slices.Clone(selected), func(v string) bool { return v == specialty })
	} else {
		selected = append(slices.Clone(selected), specialty)
	}
	if len(selected) == 0 {
		selected = nil
	}
	s.state.Filter.SelectedSpecialties = selected
	s.commitLocked()
}

func (s *Session) SetSortBy(sortBy string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Filter.SortBy = sortBy
	s.commitLocked()
}

// Reset clears the filter state. The search term is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Filter = entity.FilterState{}
	s.commitLocked()
}

func (s *Session) commitLocked() {
	s.query = EncodeQuery(s.state)
}

func (s *Session) viewLocked() View {
	var suggestions []Suggestion
	if s.showSuggestions {
		suggestions = slices.Clone(s.suggestions)
	}
	return View{
		Query:           s.query,
		State:           s.state.Clone(),
		Input:           s.input,
		Doctors:         ApplyFilters(s.doctors, s.state.Search, s.state.Filter),
		Specialties:     slices.Clone(s.specialties),
		Suggestions:     suggestions,
		ShowSuggestions: s.showSuggestions && len(suggestions) > 0,
	}
}
