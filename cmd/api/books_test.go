package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"shuvoedward/bible_verses/internal/data"
	"shuvoedward/bible_verses/internal/service"
	"testing"
)

func TestBookHandler_List(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/books", nil)

	testRouter().ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", status, http.StatusOK)
	}

	var actual struct {
		Books []data.Book `json:"books"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &actual); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}

	if len(actual.Books) != 66 {
		t.Fatalf("expected 66 books, got %d", len(actual.Books))
	}
	if actual.Books[0].Abbrev != "gn" || actual.Books[65].Abbrev != "ap" {
		t.Errorf("books out of canonical order: first %q, last %q", actual.Books[0].Abbrev, actual.Books[65].Abbrev)
	}
}

func TestBookHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		abbrev         string
		expectedStatus int
		expectedName   string
	}{
		{name: "known book", abbrev: "sl", expectedStatus: http.StatusOK, expectedName: "Salmos"},
		{name: "upper case", abbrev: "1JO", expectedStatus: http.StatusOK, expectedName: "1ª João"},
		{name: "unknown book", abbrev: "xx", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/books/"+tt.abbrev, nil)

			testRouter().ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, tt.expectedStatus)
			}

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var actual struct {
				Book data.Book `json:"book"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &actual); err != nil {
				t.Fatalf("failed to unmarshal response body: %v", err)
			}
			if actual.Book.Name != tt.expectedName {
				t.Errorf("expected %q, got %q", tt.expectedName, actual.Book.Name)
			}
		})
	}
}

func TestAutoCompleteHandler_Book(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/autocomplete/books?q=apo", nil)

	testRouter().ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v wants %v", status, http.StatusOK)
	}

	var actual struct {
		Autocomplete service.AutocompleteResult `json:"autocomplete"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &actual); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}

	if len(actual.Autocomplete.Books) != 1 || actual.Autocomplete.Books[0].Abbrev != "ap" {
		t.Errorf("expected Apocalipse, got %+v", actual.Autocomplete.Books)
	}
}

func TestAutoCompleteHandler_EmptyQuery(t *testing.T) {
	for _, url := range []string{"/v1/autocomplete/books", "/v1/autocomplete/books?q=%20%20"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, url, nil)

		testRouter().ServeHTTP(rr, req)

		if status := rr.Code; status != http.StatusBadRequest {
			t.Errorf("%s: handler returned wrong status code: got %v want %v", url, status, http.StatusBadRequest)
		}
	}
}

func TestBookHandler_ListPagination(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedFirst  string
		expectedLen    int
	}{
		{name: "second page", query: "?page=2&page_size=10", expectedStatus: http.StatusOK, expectedFirst: "1rs", expectedLen: 10},
		{name: "sorted by name", query: "?sort=name&page_size=1", expectedStatus: http.StatusOK, expectedFirst: "1co", expectedLen: 1},
		{name: "most chapters", query: "?sort=-chapters&page_size=1", expectedStatus: http.StatusOK, expectedFirst: "sl", expectedLen: 1},
		{name: "non integer page", query: "?page=two", expectedStatus: http.StatusBadRequest},
		{name: "page size too large", query: "?page_size=500", expectedStatus: http.StatusUnprocessableEntity},
		{name: "unknown sort", query: "?sort=abbrev", expectedStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/books"+tt.query, nil)

			testRouter().ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("handler returned wrong status code: got %v want %v: %s", rr.Code, tt.expectedStatus, rr.Body.String())
			}

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var actual struct {
				Books    []data.Book   `json:"books"`
				Metadata data.Metadata `json:"metadata"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &actual); err != nil {
				t.Fatalf("failed to unmarshal response body: %v", err)
			}

			if len(actual.Books) != tt.expectedLen || actual.Books[0].Abbrev != tt.expectedFirst {
				t.Errorf("expected %d books starting with %q, got %+v", tt.expectedLen, tt.expectedFirst, actual.Books)
			}
			if actual.Metadata.TotalRecords != 66 {
				t.Errorf("unexpected metadata %+v", actual.Metadata)
			}
		})
	}
}
