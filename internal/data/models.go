package data

import (
	"database/sql"
	"errors"
)

var (
	ErrRecordNotFound = errors.New("record not found")
)

// Errors reported by a verse source. Implementations wrap them with the
// failing endpoint so callers can both log the detail and match the kind.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrFailure            = errors.New("request failure")
)

// VerseDetail is a single verse as returned by the verse API.
type VerseDetail struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type Models struct {
	Books BookModel
}

func NewModels(db *sql.DB) Models {
	return Models{
		Books: NewBookModel(db),
	}
}
