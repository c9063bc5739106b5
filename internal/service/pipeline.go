package service

import (
	"cmp"
	"slices"
	"strings"

	"doctor-directory/internal/domain/entity"
)

// ApplyFilters returns the doctors matching search and filter, ordered by filter.SortBy.
// The input slice is never modified and equal keys keep their input order.
func ApplyFilters(doctors []entity.Doctor, search string, filter entity.FilterState) []entity.Doctor {
	needle := strings.ToLower(search)

	result := make([]entity.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if needle != "" && !strings.Contains(strings.ToLower(d.Name), needle) {
			continue
		}
		if filter.ConsultationType != "" && d.ConsultationType != filter.ConsultationType {
			continue
		}
		if len(filter.SelectedSpecialties) > 0 && !d.HasAnySpecialty(filter.SelectedSpecialties) {
			continue
		}
		result = append(result, d)
	}

	switch filter.SortBy {
	case entity.SortByFees:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return a.Fee.Cmp(b.Fee)
		})
	case entity.SortByExperience:
		slices.SortStableFunc(result, func(a, b entity.Doctor) int {
			return cmp.Compare(b.Experience, a.Experience)
		})
	}

	return result
}

// Specialties returns the distinct specialty tags of doctors, sorted.
func Specialties(doctors []entity.Doctor) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, d := range doctors {
		for _, s := range d.Specialties {
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out
}
