package service

import (
	"log/slog"
	"shuvoedward/bible_verses/internal/data"
	"shuvoedward/bible_verses/internal/reference"
)

// Services contains all business logic services
type Service struct {
	Reference    *ReferenceService
	Passage      *PassageService
	Autocomplete *AutocompleteService
}

// NewServices creates all services with their dependencies
// Centralize service creation
func NewServices(
	dataset *data.Dataset,
	matcher *reference.Matcher,
	fetcher VerseFetcher,
	logger *slog.Logger,
) *Service {
	passages := NewPassageService(dataset, fetcher, matcher.DefaultVersion(), logger)

	return &Service{
		Reference: NewReferenceService(matcher, passages, logger),
		Passage:   passages,
		Autocomplete: NewAutocompleteService(
			BuildBookSearchIndex(dataset),
		),
	}
}
