package dto

import "github.com/shopspring/decimal"

// Request DTOs

// ListDoctorsRequest mirrors the URL query parameters of a directory view.
type ListDoctorsRequest struct {
	Search           string   `json:"search"`
	ConsultationType string   `json:"consultationType" validate:"omitempty,oneof='Video Consult' 'In Clinic'"`
	Specialties      []string `json:"specialties" validate:"omitempty,dive,required,max=100,excludesall=0x2C"`
	SortBy           string   `json:"sortBy" validate:"omitempty,oneof=fees experience"`
}

type SuggestionRequest struct {
	Query string `json:"q"`
}

// Response DTOs

type DoctorResponse struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Specialties      []string        `json:"specialties"`
	SpecialtyLabel   string          `json:"specialty_label"`
	Experience       int             `json:"experience"`
	Fee              decimal.Decimal `json:"fee"`
	ConsultationType string          `json:"consultation_type"`
	Qualification    string          `json:"qualification"`
	ClinicName       string          `json:"clinic_name"`
	Location         string          `json:"location"`
	ImageURL         string          `json:"image_url"`
}

type FilterResponse struct {
	ConsultationType    string   `json:"consultation_type"`
	SelectedSpecialties []string `json:"selected_specialties"`
	SortBy              string   `json:"sort_by"`
}

type DoctorListResponse struct {
	Query        string           `json:"query"`
	Search       string           `json:"search"`
	Filters      FilterResponse   `json:"filters"`
	Doctors      []DoctorResponse `json:"doctors"`
	Total        int              `json:"total"`
	CatalogTotal int              `json:"catalog_total"`
	Specialties  []string         `json:"specialties"`
}

type SuggestionResponse struct {
	DoctorID  int    `json:"doctor_id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type SuggestionListResponse struct {
	Query       string               `json:"query"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

type StatusResponse struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
	Total   int    `json:"total"`
}
