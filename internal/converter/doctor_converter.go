package converter

import (
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/service"
)

// DoctorToResponse converts a Doctor entity to its view-model, applying field fallbacks
func DoctorToResponse(doctor entity.Doctor) dto.DoctorResponse {
	specialties := doctor.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return dto.DoctorResponse{
		ID:               doctor.ID,
		Name:             doctor.Name,
		Specialties:      specialties,
		SpecialtyLabel:   doctor.SpecialtyLabel(),
		Experience:       doctor.Experience,
		Fee:              doctor.Fee,
		ConsultationType: doctor.ConsultationType,
		Qualification:    doctor.QualificationOrDefault(),
		ClinicName:       doctor.ClinicNameOrDefault(),
		Location:         doctor.LocationOrDefault(),
		ImageURL:         doctor.ImageURLOrDefault(),
	}
}

// DoctorsToResponses converts a slice of Doctor entities, keeping their order
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = DoctorToResponse(doctor)
	}
	return responses
}

func SuggestionsToResponses(suggestions []service.Suggestion) []dto.SuggestionResponse {
	responses := make([]dto.SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		responses[i] = dto.SuggestionResponse{
			DoctorID:  s.DoctorID,
			Name:      s.Name,
			Specialty: s.Specialty,
		}
	}
	return responses
}
