package service

import (
	"strings"

	"doctor-directory/internal/domain/entity"
)

// MaxSuggestions caps the autocomplete list.
const MaxSuggestions = 3

// Suggestion is an autocomplete candidate.
type Suggestion struct {
	DoctorID  int    `json:"doctor_id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// Suggest scans doctors in order and returns the first MaxSuggestions whose
// name contains query, ignoring case. An empty query yields nothing.
func Suggest(doctors []entity.Doctor, query string) []Suggestion {
	if query == "" {
		return nil
	}

	needle := strings.ToLower(query)
	var out []Suggestion
	for _, d := range doctors {
		if !strings.Contains(strings.ToLower(d.Name), needle) {
			continue
		}
		out = append(out, Suggestion{
			DoctorID:  d.ID,
			Name:      d.Name,
			Specialty: d.PrimarySpecialty(),
		})
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
