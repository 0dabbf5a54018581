package service

import (
	"shuvoedward/bible_verses/internal/data"
	"shuvoedward/bible_verses/internal/normalize"
	"slices"
	"strings"
)

// BookSuggestion is a book whose alias starts with the typed text.
type BookSuggestion struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
}

// AutocompleteResult represents autocomplete search results
type AutocompleteResult struct {
	Query string           `json:"query"`
	Books []BookSuggestion `json:"books"`
}

type AutocompleteService struct {
	booksSearchIndex map[string][]BookSuggestion // Index for fast book look ups
}

func NewAutocompleteService(booksSearchIndex map[string][]BookSuggestion) *AutocompleteService {
	return &AutocompleteService{
		booksSearchIndex: booksSearchIndex,
	}
}

// BuildBookSearchIndex maps every prefix of every normalized alias to the
// books it may complete to, in dataset order.
// Numbered books are also indexed without spaces, so "1jo" and "1 jo" both
// suggest "1ª João".
//
// Examples:
//
//	"jo"  → [Josué, Jó, Joel, Jonas, João]
//	"apo" → [Apocalipse]
func BuildBookSearchIndex(ds *data.Dataset) map[string][]BookSuggestion {
	index := make(map[string][]BookSuggestion)

	add := func(key string, suggestion BookSuggestion) {
		if !slices.Contains(index[key], suggestion) {
			index[key] = append(index[key], suggestion)
		}
	}

	for _, book := range ds.Books() {
		suggestion := BookSuggestion{Abbrev: book.Abbrev, Name: book.Name}

		for _, alias := range book.Aliases {
			for _, key := range []string{normalize.Normalize(alias), strings.ReplaceAll(normalize.Normalize(alias), " ", "")} {
				runes := []rune(key)
				for i := 1; i <= len(runes); i++ {
					add(string(runes[:i]), suggestion)
				}
			}
		}
	}

	return index
}

// Autocomplete suggests books for a partially typed book name.
// Case, accents and surrounding spaces are ignored.
func (s *AutocompleteService) Autocomplete(query string) (*AutocompleteResult, error) {
	normalized := normalize.Normalize(query)
	if normalized == "" {
		return nil, ErrEmptyQuery
	}

	books, exists := s.booksSearchIndex[normalized]
	if !exists {
		books = s.booksSearchIndex[strings.Join(strings.Fields(normalized), " ")]
	}

	result := &AutocompleteResult{
		Query: normalized,
		Books: []BookSuggestion{},
	}
	result.Books = append(result.Books, books...)

	return result, nil
}
