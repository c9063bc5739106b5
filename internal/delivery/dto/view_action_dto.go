package dto

// View actions a client can replay against a query string
const (
	ActionType                = "type"
	ActionSubmitSearch        = "submit_search"
	ActionSelectSuggestion    = "select_suggestion"
	ActionDismissSuggestions  = "dismiss_suggestions"
	ActionSetConsultationType = "set_consultation_type"
	ActionToggleSpecialty     = "toggle_specialty"
	ActionSetSortBy           = "set_sort_by"
	ActionReset               = "reset"
)

// ViewActionRequest applies one user action to the state encoded in Query.
// Input is the live search box text; it defaults to the committed search term.
type ViewActionRequest struct {
	Query  string  `json:"query" validate:"max=2000"`
	Input  *string `json:"input"`
	Action string  `json:"action" validate:"required,oneof=type submit_search select_suggestion dismiss_suggestions set_consultation_type toggle_specialty set_sort_by reset"`
	Value  string  `json:"value" validate:"max=200"`
	Index  int     `json:"index" validate:"gte=0"`
}

type ViewResponse struct {
	Query           string               `json:"query"`
	Search          string               `json:"search"`
	Input           string               `json:"input"`
	Filters         FilterResponse       `json:"filters"`
	Doctors         []DoctorResponse     `json:"doctors"`
	Total           int                  `json:"total"`
	Specialties     []string             `json:"specialties"`
	Suggestions     []SuggestionResponse `json:"suggestions"`
	ShowSuggestions bool                 `json:"show_suggestions"`
}
