package data

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"shuvoedward/bible_verses/internal/normalize"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed books.yaml
var defaultBooks []byte

var (
	ErrDuplicateAbbrev = errors.New("duplicate book abbreviation")
	ErrAliasCollision  = errors.New("alias maps to more than one book")
	ErrInvalidBook     = errors.New("invalid book definition")
)

// Book is one canonical book of the reference dataset.
type Book struct {
	Abbrev   string   `json:"abbrev" yaml:"abbrev"`
	Name     string   `json:"name" yaml:"name"`
	Chapters int      `json:"chapters" yaml:"chapters"`
	Aliases  []string `json:"aliases,omitempty" yaml:"aliases"`
}

func (b Book) clone() Book {
	b.Aliases = append([]string(nil), b.Aliases...)
	return b
}

// Dataset is the read-only book table shared by the matcher and the resolver.
// It is never mutated after NewDataset returns, so it is safe for concurrent use.
type Dataset struct {
	books    []Book
	byAbbrev map[string]int
	byAlias  map[string]int // normalized alias -> index into books
	aliases  []string
}

// NewDataset indexes books by abbreviation and by normalized alias.
// Declaration order of books and aliases is preserved.
func NewDataset(books []Book) (*Dataset, error) {
	ds := &Dataset{
		books:    make([]Book, 0, len(books)),
		byAbbrev: make(map[string]int, len(books)),
		byAlias:  make(map[string]int),
	}

	for _, book := range books {
		book.Abbrev = strings.TrimSpace(book.Abbrev)

		switch {
		case book.Abbrev == "":
			return nil, fmt.Errorf("%w: missing abbreviation for %q", ErrInvalidBook, book.Name)
		case book.Name == "":
			return nil, fmt.Errorf("%w: missing name for %q", ErrInvalidBook, book.Abbrev)
		case book.Chapters < 1:
			return nil, fmt.Errorf("%w: %q must have at least one chapter", ErrInvalidBook, book.Abbrev)
		}

		if _, exists := ds.byAbbrev[book.Abbrev]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAbbrev, book.Abbrev)
		}

		idx := len(ds.books)
		book.Aliases = append([]string(nil), book.Aliases...)

		for _, alias := range book.Aliases {
			key := normalize.Normalize(alias)
			if key == "" {
				return nil, fmt.Errorf("%w: empty alias for %q", ErrInvalidBook, book.Abbrev)
			}

			if other, exists := ds.byAlias[key]; exists {
				if other == idx {
					continue
				}
				return nil, fmt.Errorf("%w: %q used by %q and %q",
					ErrAliasCollision, alias, ds.books[other].Abbrev, book.Abbrev)
			}

			ds.byAlias[key] = idx
			ds.aliases = append(ds.aliases, alias)
		}

		ds.byAbbrev[book.Abbrev] = idx
		ds.books = append(ds.books, book)
	}

	return ds, nil
}

// LoadDataset decodes a YAML list of books.
func LoadDataset(r io.Reader) (*Dataset, error) {
	var books []Book

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}

	return NewDataset(books)
}

// LoadDefaultDataset returns the dataset embedded in the binary.
func LoadDefaultDataset() (*Dataset, error) {
	return LoadDataset(strings.NewReader(string(defaultBooks)))
}

// Book returns the book identified by abbrev.
func (ds *Dataset) Book(abbrev string) (Book, bool) {
	idx, ok := ds.byAbbrev[abbrev]
	if !ok {
		return Book{}, false
	}
	return ds.books[idx].clone(), true
}

// Lookup resolves any alias spelling, in any case and with or without
// accents, to its book.
func (ds *Dataset) Lookup(alias string) (Book, bool) {
	idx, ok := ds.byAlias[normalize.Normalize(alias)]
	if !ok {
		return Book{}, false
	}
	return ds.books[idx].clone(), true
}

// Aliases returns every alias in declaration order.
func (ds *Dataset) Aliases() []string {
	return append([]string(nil), ds.aliases...)
}

// Books returns every book in declaration order.
func (ds *Dataset) Books() []Book {
	books := make([]Book, len(ds.books))
	for i, book := range ds.books {
		books[i] = book.clone()
	}
	return books
}

// Len returns the number of books.
func (ds *Dataset) Len() int {
	return len(ds.books)
}
