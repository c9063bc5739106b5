package entity

// ConsultationType is the mode in which a doctor is consulted
const (
	ConsultationVideo    = "Video Consult"
	ConsultationInClinic = "In Clinic"
)

// Sort keys accepted in the sortBy parameter
const (
	SortByNone       = ""
	SortByFees       = "fees"
	SortByExperience = "experience"
)

// ConsultationTypes lists every supported consultation mode.
var ConsultationTypes = []string{ConsultationVideo, ConsultationInClinic}

// FilterState is the combined user-selected consultation type, specialty set and sort key.
// Zero value means no filtering and input order.
type FilterState struct {
	ConsultationType    string
	SelectedSpecialties []string
	SortBy              string
}

// IsZero reports whether no filter or sort is applied.
func (f FilterState) IsZero() bool {
	return f.ConsultationType == "" && len(f.SelectedSpecialties) == 0 && f.SortBy == ""
}

// HasSpecialty reports whether the specialty is currently selected.
func (f FilterState) HasSpecialty(specialty string) bool {
	for _, s := range f.SelectedSpecialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no backing array with f.
func (f FilterState) Clone() FilterState {
	out := f
	if f.SelectedSpecialties != nil {
		out.SelectedSpecialties = append([]string(nil), f.SelectedSpecialties...)
	}
	return out
}

// ViewState is everything the URL encodes: search term plus filter state.
type ViewState struct {
	Search string
	Filter FilterState
}

func (v ViewState) Clone() ViewState {
	return ViewState{Search: v.Search, Filter: v.Filter.Clone()}
}
