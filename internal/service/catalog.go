package service

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ErrCatalogAlreadyLoaded is returned by a second call to Load.
var ErrCatalogAlreadyLoaded = errors.New("catalog already loaded")

// CatalogState is the observable loader state.
type CatalogState string

const (
	CatalogLoading CatalogState = "loading"
	CatalogError   CatalogState = "error"
	CatalogReady   CatalogState = "ready"
)

// CatalogSnapshot is a read-only copy of the catalog at one point in time.
type CatalogSnapshot struct {
	State       CatalogState
	Doctors     []entity.Doctor
	Specialties []string
	Err         error
}

// Catalog owns the full doctor list for the lifetime of the process.
// It is filled exactly once by Load and read through Snapshot.
type Catalog struct {
	source repository.DoctorSource
	log    *logrus.Logger

	started atomic.Bool

	mu          sync.RWMutex
	state       CatalogState
	doctors     []entity.Doctor
	specialties []string
	err         error
}

func NewCatalog(source repository.DoctorSource, log *logrus.Logger) *Catalog {
	return &Catalog{
		source: source,
		log:    log,
		state:  CatalogLoading,
	}
}

// Load fetches the list once. If ctx ends before the fetch completes the
// catalog is left untouched and ctx.Err() is returned.
func (c *Catalog) Load(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return ErrCatalogAlreadyLoaded
	}

	doctors, err := c.source.Fetch(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		c.log.Warnf("Catalog load abandoned: %+v", ctxErr)
		return ctxErr
	}

	c.mu.Lock()
	if err != nil {
		c.state = CatalogError
		c.err = err
	} else {
		c.state = CatalogReady
		c.doctors = doctors
		c.specialties = Specialties(doctors)
		c.err = nil
	}
	c.mu.Unlock()

	if err != nil {
		c.log.Errorf("Failed to load doctor catalog: %v", err)
		return err
	}

	c.log.Infof("Doctor catalog ready: %d doctors, %d specialties", len(doctors), len(c.specialties))
	return nil
}

func (c *Catalog) Snapshot() CatalogSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CatalogSnapshot{
		State:       c.state,
		Doctors:     slices.Clone(c.doctors),
		Specialties: slices.Clone(c.specialties),
		Err:         c.err,
	}
}
