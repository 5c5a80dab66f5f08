package models

type SearchInputRequest struct {
	Query string `json:"query"`
}

type CategorySelectRequest struct {
	Category string `json:"category" validate:"required"`
}

type SortSelectRequest struct {
	Sort string `json:"sort" validate:"required"`
}

type PageSelectRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

// SessionView is the browse state after the latest interaction. Searching is
// true while a keystroke burst is still settling; the items then reflect the
// previous query.
type SessionView struct {
	Items        []Product `json:"items"`
	Page         int       `json:"page"`
	TotalPages   int       `json:"total_pages"`
	TotalMatches int       `json:"total_matches"`
	Search       string    `json:"search"`
	Category     string    `json:"category"`
	Sort         string    `json:"sort"`
	Searching    bool      `json:"searching"`
}
