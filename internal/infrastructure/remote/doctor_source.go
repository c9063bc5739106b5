package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"doctor-directory/config"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var _ repository.DoctorSource = (*DoctorSource)(nil)

// DoctorSource fetches the doctor list as a JSON array over HTTP.
type DoctorSource struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewDoctorSource builds a source whose client has no timeout unless
// cfg.Timeout is positive; the caller's context ends the request otherwise.
func NewDoctorSource(cfg config.SourceConfig, log *logrus.Logger) *DoctorSource {
	timeout := cfg.Timeout
	if timeout < 0 {
		timeout = 0
	}

	return &DoctorSource{
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Timeout reports the client timeout; zero means none.
func (s *DoctorSource) Timeout() time.Duration {
	return s.client.Timeout
}

// Fetch issues one unauthenticated GET and decodes the body. No retries.
func (s *DoctorSource) Fetch(ctx context.Context) ([]entity.Doctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &entity.FetchError{Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnf("Failed to fetch doctors from %s: %+v", s.url, err)
		return nil, &entity.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warnf("Failed to fetch doctors from %s: status %s", s.url, resp.Status)
		return nil, &entity.FetchError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	var doctors []entity.Doctor
	if err := json.NewDecoder(resp.Body).Decode(&doctors); err != nil {
		s.log.Warnf("Failed to decode doctors from %s: %+v", s.url, err)
		return nil, &entity.FetchError{Err: fmt.Errorf("decode doctors: %w", err)}
	}
	if doctors == nil {
		doctors = []entity.Doctor{}
	}

	s.log.Infof("Fetched %d doctors from %s", len(doctors), s.url)
	return doctors, nil
}

// statusText strips the numeric code from resp.Status ("500 Internal Server Error").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
