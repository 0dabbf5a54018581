package service

import (
	"errors"
	"shuvoedward/bible_verses/internal/data"
)

var (
	ErrEmptyQuery = errors.New("query can not be empty")
	ErrEmptyText  = errors.New("text can not be empty")
)

// ErrorKind classifies why a reference could not be fully resolved.
// The zero value means the reference resolved without error.
type ErrorKind string

const (
	KindNone               ErrorKind = ""
	KindUnknownBook        ErrorKind = "UnknownBook"
	KindInvalidChapter     ErrorKind = "InvalidChapter"
	KindNotFound           ErrorKind = "NotFound"
	KindUnexpectedResponse ErrorKind = "UnexpectedResponse"
	KindFailure            ErrorKind = "Failure"
)

// KindOf maps an error returned by a verse source to its kind. Errors that
// match none of the data sentinels are transport failures.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, data.ErrNotFound):
		return KindNotFound
	case errors.Is(err, data.ErrUnexpectedResponse):
		return KindUnexpectedResponse
	default:
		return KindFailure
	}
}

func (k ErrorKind) String() string {
	if k == KindNone {
		return "None"
	}
	return string(k)
}
