package models

// ListResponse is the storefront list payload: the total match count and the
// capped, ordered item list.
type ListResponse struct {
	Count int    `json:"count"`
	Items []Game `json:"items"`
}

// SuggestResponse is the autocomplete payload: query suggestions plus a short
// list of matching offers.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
	Items       []Game   `json:"items"`
}

// ErrorBody is the error payload. Hint carries actionable guidance where the
// failure implies a remediation (setup incomplete, bad parameter format).
type ErrorBody struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Error: message}
}

func ErrorResponseWithHint(message, hint string) ErrorBody {
	return ErrorBody{Error: message, Hint: hint}
}
