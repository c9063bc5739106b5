package service

import (
	"net/url"
	"strings"

	"doctor-directory/internal/domain/entity"
)

// Query parameter names
const (
	ParamSearch           = "search"
	ParamConsultationType = "consultationType"
	ParamSpecialties      = "specialties"
	ParamSortBy           = "sortBy"
)

// EncodeQuery renders the canonical query string for state. Parameters
// always appear in the same order and fields at their zero value are omitted.
// Specialty names are comma-joined without escaping commas inside a name.
func EncodeQuery(state entity.ViewState) string {
	var parts []string
	add := func(key, value string) {
		if value == "" {
			return
		}
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}

	add(ParamSearch, state.Search)
	add(ParamConsultationType, state.Filter.ConsultationType)
	add(ParamSpecialties, strings.Join(state.Filter.SelectedSpecialties, ","))
	add(ParamSortBy, state.Filter.SortBy)

	return strings.Join(parts, "&")
}

// DecodeQuery reads state from query parameters. Unknown parameters are ignored.
func DecodeQuery(values url.Values) entity.ViewState {
	return entity.ViewState{
		Search: values.Get(ParamSearch),
		Filter: entity.FilterState{
			ConsultationType:    values.Get(ParamConsultationType),
			SelectedSpecialties: SplitSpecialties(values.Get(ParamSpecialties)),
			SortBy:              values.Get(ParamSortBy),
		},
	}
}

// ParseQuery decodes a raw query string, with or without a leading '?'.
func ParseQuery(raw string) (entity.ViewState, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return entity.ViewState{}, err
	}
	return DecodeQuery(values), nil
}

// SplitSpecialties splits a comma-joined list, dropping empty fragments.
func SplitSpecialties(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
