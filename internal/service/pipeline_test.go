package service_test

import (
	"fmt"
	"testing"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: 1, Name: "Dr. A", Specialties: []string{"Dermatologist"}, Experience: 5, Fee: decimal.NewFromInt(500), ConsultationType: entity.ConsultationVideo},
		{ID: 2, Name: "Dr. B", Specialties: []string{"Cardiologist"}, Experience: 10, Fee: decimal.NewFromInt(300), ConsultationType: entity.ConsultationInClinic},
	}
}

func sampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: 1, Name: "Dr. Asha Rao", Specialties: []string{"Dentist"}, Experience: 8, Fee: decimal.NewFromInt(400), ConsultationType: entity.ConsultationInClinic},
		{ID: 2, Name: "Dr. Vikram Shah", Specialties: []string{"Cardiologist", "General Physician"}, Experience: 15, Fee: decimal.NewFromInt(800), ConsultationType: entity.ConsultationVideo},
		{ID: 3, Name: "Dr. Meera Iyer", Specialties: []string{"Dermatologist"}, Experience: 8, Fee: decimal.NewFromInt(400), ConsultationType: entity.ConsultationVideo},
		{ID: 4, Name: "Dr. Rahul Nair", Specialties: nil, Experience: 3, Fee: decimal.NewFromInt(250), ConsultationType: entity.ConsultationInClinic},
		{ID: 5, Name: "Dr. Kavya Menon", Specialties: []string{"General Physician"}, Experience: 15, Fee: decimal.NewFromInt(400), ConsultationType: entity.ConsultationInClinic},
		{ID: 6, Name: "Dr. Arjun Das", Specialties: []string{"Dentist", "Dermatologist"}, Experience: 1, Fee: decimal.NewFromInt(1000), ConsultationType: entity.ConsultationVideo},
	}
}

func names(doctors []entity.Doctor) []string {
	out := make([]string, len(doctors))
	for i, d := range doctors {
		out[i] = d.Name
	}
	return out
}

func ids(doctors []entity.Doctor) []int {
	out := make([]int, len(doctors))
	for i, d := range doctors {
		out[i] = d.ID
	}
	return out
}

func TestApplyFilters_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		search string
		filter entity.FilterState
		want   []string
	}{
		{
			name:   "sort by fees ascending",
			filter: entity.FilterState{SortBy: entity.SortByFees},
			want:   []string{"Dr. B", "Dr. A"},
		},
		{
			name:   "sort by experience descending",
			filter: entity.FilterState{SortBy: entity.SortByExperience},
			want:   []string{"Dr. B", "Dr. A"},
		},
		{
			name:   "selected specialty",
			filter: entity.FilterState{SelectedSpecialties: []string{"Cardiologist"}},
			want:   []string{"Dr. B"},
		},
		{
			name:   "search ignores case",
			search: "dr. a",
			want:   []string{"Dr. A"},
		},
		{
			name:   "search upper case",
			search: "DR. A",
			want:   []string{"Dr. A"},
		},
		{
			name:   "consultation type exact",
			filter: entity.FilterState{ConsultationType: entity.ConsultationInClinic},
			want:   []string{"Dr. B"},
		},
		{
			name:   "consultation type is case sensitive",
			filter: entity.FilterState{ConsultationType: "in clinic"},
			want:   []string{},
		},
		{
			name: "no filter keeps input order",
			want: []string{"Dr. A", "Dr. B"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := service.ApplyFilters(twoDoctors(), tt.search, tt.filter)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestApplyFilters_SpecialtiesUseUnion(t *testing.T) {
	t.Parallel()

	got := service.ApplyFilters(sampleDoctors(), "", entity.FilterState{
		SelectedSpecialties: []string{"Dentist", "Cardiologist"},
	})

	assert.Equal(t, []int{1, 2, 6}, ids(got))
}

func TestApplyFilters_AllPredicatesMustHold(t *testing.T) {
	t.Parallel()

	got := service.ApplyFilters(sampleDoctors(), "a", entity.FilterState{
		ConsultationType:    entity.ConsultationVideo,
		SelectedSpecialties: []string{"Dermatologist"},
		SortBy:              entity.SortByFees,
	})

	assert.Equal(t, []int{3, 6}, ids(got))
}

func TestApplyFilters_StableSort(t *testing.T) {
	t.Parallel()

	t.Run("equal fees keep input order", func(t *testing.T) {
		t.Parallel()

		got := service.ApplyFilters(sampleDoctors(), "", entity.FilterState{SortBy: entity.SortByFees})
		assert.Equal(t, []int{4, 1, 3, 5, 2, 6}, ids(got))
	})

	t.Run("equal experience keeps input order", func(t *testing.T) {
		t.Parallel()

		got := service.ApplyFilters(sampleDoctors(), "", entity.FilterState{SortBy: entity.SortByExperience})
		assert.Equal(t, []int{2, 5, 1, 3, 4, 6}, ids(got))
	})

	t.Run("unknown sort key keeps input order", func(t *testing.T) {
		t.Parallel()

		got := service.ApplyFilters(sampleDoctors(), "", entity.FilterState{SortBy: "rating"})
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(got))
	})
}

func TestApplyFilters_Properties(t *testing.T) {
	t.Parallel()

	doctors := sampleDoctors()
	searches := []string{"", "dr", "a", "MEERA", "zzz"}
	filters := []entity.FilterState{
		{},
		{SortBy: entity.SortByFees},
		{SortBy: entity.SortByExperience},
		{ConsultationType: entity.ConsultationVideo},
		{SelectedSpecialties: []string{"Dentist"}},
		{ConsultationType: entity.ConsultationInClinic, SelectedSpecialties: []string{"General Physician", "Dentist"}, SortBy: entity.SortByExperience},
	}

	byID := make(map[int]entity.Doctor)
	for _, d := range doctors {
		byID[d.ID] = d
	}

	for _, search := range searches {
		for i, filter := range filters {
			t.Run(fmt.Sprintf("%q/filter-%d", search, i), func(t *testing.T) {
				first := service.ApplyFilters(doctors, search, filter)
				second := service.ApplyFilters(doctors, search, filter)

				// idempotent
				assert.Equal(t, first, second)

				// subset of the input
				for _, d := range first {
					orig, ok := byID[d.ID]
					require.True(t, ok)
					assert.Equal(t, orig, d)
				}

				switch filter.SortBy {
				case entity.SortByFees:
					for j := 1; j < len(first); j++ {
						assert.LessOrEqual(t, first[j-1].Fee.Cmp(first[j].Fee), 0)
					}
				case entity.SortByExperience:
					for j := 1; j < len(first); j++ {
						assert.GreaterOrEqual(t, first[j-1].Experience, first[j].Experience)
					}
				default:
					for j := 1; j < len(first); j++ {
						assert.Less(t, first[j-1].ID, first[j].ID)
					}
				}
			})
		}
	}
}

func TestApplyFilters_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	doctors := sampleDoctors()
	_ = service.ApplyFilters(doctors, "", entity.FilterState{SortBy: entity.SortByFees})

	assert.Equal(t, sampleDoctors(), doctors)
}

func TestSpecialties(t *testing.T) {
	t.Parallel()

	t.Run("distinct and sorted", func(t *testing.T) {
		t.Parallel()

		got := service.Specialties(sampleDoctors())
		assert.Equal(t, []string{"Cardiologist", "Dentist", "Dermatologist", "General Physician"}, got)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, service.Specialties(nil))
	})
}

func TestApplyFilters_FractionalFees(t *testing.T) {
	t.Parallel()

	doctors := []entity.Doctor{
		{ID: 1, Name: "Dr. P", Fee: decimal.RequireFromString("300.50")},
		{ID: 2, Name: "Dr. Q", Fee: decimal.RequireFromString("300.25")},
		{ID: 3, Name: "Dr. R", Fee: decimal.RequireFromString("300.5")},
	}

	got := service.ApplyFilters(doctors, "", entity.FilterState{SortBy: entity.SortByFees})

	// 300.50 and 300.5 are equal fees and keep their input order
	assert.Equal(t, []int{2, 1, 3}, ids(got))
}
