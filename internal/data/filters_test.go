package data

import (
	"shuvoedward/bible_verses/internal/validator"
	"testing"
)

func TestPaginateBooks(t *testing.T) {
	ds, err := LoadDefaultDataset()
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}

	tests := []struct {
		name          string
		filters       Filters
		expectedFirst string
		expectedLen   int
		expectedLast  int
	}{
		{name: "first page", filters: Filters{Page: 1, PageSize: 10, Sort: "position"}, expectedFirst: "gn", expectedLen: 10, expectedLast: 7},
		{name: "last page", filters: Filters{Page: 7, PageSize: 10, Sort: "position"}, expectedFirst: "2pe", expectedLen: 6, expectedLast: 7},
		{name: "past the end", filters: Filters{Page: 8, PageSize: 10, Sort: "position"}, expectedLen: 0, expectedLast: 7},
		{name: "reverse canonical", filters: Filters{Page: 1, PageSize: 1, Sort: "-position"}, expectedFirst: "ap", expectedLen: 1, expectedLast: 66},
		{name: "most chapters", filters: Filters{Page: 1, PageSize: 1, Sort: "-chapters"}, expectedFirst: "sl", expectedLen: 1, expectedLast: 66},
		{name: "fewest chapters keeps canonical ties", filters: Filters{Page: 1, PageSize: 1, Sort: "chapters"}, expectedFirst: "ob", expectedLen: 1, expectedLast: 66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filters.SortSafeList = BookSortSafeList

			books, metadata := PaginateBooks(ds.Books(), tt.filters)

			if len(books) != tt.expectedLen {
				t.Fatalf("expected %d books, got %d", tt.expectedLen, len(books))
			}
			if tt.expectedLen > 0 && books[0].Abbrev != tt.expectedFirst {
				t.Errorf("expected first book %q, got %q", tt.expectedFirst, books[0].Abbrev)
			}
			if metadata.LastPage != tt.expectedLast || metadata.TotalRecords != 66 {
				t.Errorf("unexpected metadata %+v", metadata)
			}
		})
	}
}

func TestPaginateBooksDoesNotReorderInput(t *testing.T) {
	ds, err := LoadDefaultDataset()
	if err != nil {
		t.Fatalf("failed to load dataset: %v", err)
	}

	books := ds.Books()
	PaginateBooks(books, Filters{Page: 1, PageSize: 5, Sort: "-name", SortSafeList: BookSortSafeList})

	if books[0].Abbrev != "gn" {
		t.Errorf("input was reordered, first book is %q", books[0].Abbrev)
	}
}

func TestFiltersValidate(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		valid   bool
	}{
		{name: "valid", filters: Filters{Page: 1, PageSize: 20, Sort: "name", SortSafeList: BookSortSafeList}, valid: true},
		{name: "zero page", filters: Filters{Page: 0, PageSize: 20, Sort: "name", SortSafeList: BookSortSafeList}},
		{name: "page size too large", filters: Filters{Page: 1, PageSize: 101, Sort: "name", SortSafeList: BookSortSafeList}},
		{name: "unsafe sort", filters: Filters{Page: 1, PageSize: 20, Sort: "abbrev; DROP TABLE books", SortSafeList: BookSortSafeList}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			tt.filters.Validate(v)
			tt.filters.ValidateSort(v)

			if v.Valid() != tt.valid {
				t.Errorf("Valid() = %v, want %v (%v)", v.Valid(), tt.valid, v.Errors)
			}
		})
	}
}
