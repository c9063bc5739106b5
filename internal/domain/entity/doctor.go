package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Fallback values shown when an optional doctor field is missing
const (
	DefaultImageURL        = "https://via.placeholder.com/80"
	DefaultQualification   = "MBBS"
	DefaultClinicName      = "Clinic"
	DefaultLocation        = "Location"
	DefaultSpecialtyLabel  = "No specialties listed"
	DefaultSuggestionLabel = "Doctor"
)

// Doctor represents a single record of the remote directory.
// Records are never mutated after they are fetched.
type Doctor struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Specialties      []string        `json:"specialties"`
	Experience       int             `json:"experience"`
	Fee              decimal.Decimal `json:"fee"`
	ConsultationType string          `json:"consultationType"`

	// Optional attributes
	Qualification *string `json:"qualification,omitempty"`
	ClinicName    *string `json:"clinicName,omitempty"`
	Location      *string `json:"location,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
}

func (d Doctor) QualificationOrDefault() string {
	return valueOr(d.Qualification, DefaultQualification)
}

func (d Doctor) ClinicNameOrDefault() string {
	return valueOr(d.ClinicName, DefaultClinicName)
}

func (d Doctor) LocationOrDefault() string {
	return valueOr(d.Location, DefaultLocation)
}

func (d Doctor) ImageURLOrDefault() string {
	return valueOr(d.ImageURL, DefaultImageURL)
}

// SpecialtyLabel joins specialties for display, keeping their listed order.
func (d Doctor) SpecialtyLabel() string {
	if len(d.Specialties) == 0 {
		return DefaultSpecialtyLabel
	}
	return strings.Join(d.Specialties, ", ")
}

// PrimarySpecialty returns the first listed specialty, or the generic label.
func (d Doctor) PrimarySpecialty() string {
	if len(d.Specialties) == 0 || d.Specialties[0] == "" {
		return DefaultSuggestionLabel
	}
	return d.Specialties[0]
}

// HasAnySpecialty reports whether the doctor carries at least one of the given specialties.
func (d Doctor) HasAnySpecialty(selected []string) bool {
	for _, s := range d.Specialties {
		for _, want := range selected {
			if s == want {
				return true
			}
		}
	}
	return false
}

func valueOr(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
