package prize

import (
	"unicode/utf8"
)

// Name and description length limits enforced on incoming requests.
const (
	maxNameLen        = 100
	maxDescriptionLen = 500
)

// Prize is one item in the gacha pool. Stock drives both the displayed win
// percentage and draw eligibility; zero stock means the prize cannot be won.
type Prize struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock"`
	CreatedAt   int64  `json:"createdAt"` // epoch milliseconds
	Description string `json:"description,omitempty"`
}

// AddRequest carries the operator-supplied fields for a new prize. The
// service assigns ID and CreatedAt.
type AddRequest struct {
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock"`
	Description string `json:"description"`
}

// Validate checks the request before it reaches the service. The service
// itself accepts whatever it is given; callers must reject bad input first.
func (r AddRequest) Validate() error {
	if r.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(r.Name) > maxNameLen {
		return &ValidationError{Field: "name", Reason: "must be 100 characters or fewer"}
	}
	if r.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	if utf8.RuneCountInString(r.Description) > maxDescriptionLen {
		return &ValidationError{Field: "description", Reason: "must be 500 characters or fewer"}
	}
	return nil
}

// UpdateRequest is a field-level patch. Nil fields keep their current
// values; only non-nil fields are applied.
type UpdateRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name"`
	ImageURL    *string `json:"imageUrl"`
	Stock       *int    `json:"stock"`
	Description *string `json:"description"`
}

// Validate checks only the fields present in the patch.
func (r UpdateRequest) Validate() error {
	if r.Name != nil {
		if *r.Name == "" {
			return &ValidationError{Field: "name", Reason: "must not be empty"}
		}
		if utf8.RuneCountInString(*r.Name) > maxNameLen {
			return &ValidationError{Field: "name", Reason: "must be 100 characters or fewer"}
		}
	}
	if r.Stock != nil && *r.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxDescriptionLen {
		return &ValidationError{Field: "description", Reason: "must be 500 characters or fewer"}
	}
	return nil
}
