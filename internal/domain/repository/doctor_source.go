package repository

import (
	"context"

	"doctor-directory/internal/domain/entity"
)

// DoctorSource retrieves the full doctor list from wherever it lives.
type DoctorSource interface {
	Fetch(ctx context.Context) ([]entity.Doctor, error)
}
