// Package mock provides test doubles for the domain interfaces.
package mock

import (
	"context"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
)

var _ repository.DoctorSource = (*DoctorSource)(nil)

// DoctorSource is a repository.DoctorSource backed by a function field.
type DoctorSource struct {
	FetchFn func(ctx context.Context) ([]entity.Doctor, error)
}

func (s *DoctorSource) Fetch(ctx context.Context) ([]entity.Doctor, error) {
	return s.FetchFn(ctx)
}

// StaticSource returns a DoctorSource that always yields doctors.
func StaticSource(doctors []entity.Doctor) *DoctorSource {
	return &DoctorSource{
		FetchFn: func(context.Context) ([]entity.Doctor, error) {
			return doctors, nil
		},
	}
}
