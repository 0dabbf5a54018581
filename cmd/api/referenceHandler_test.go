package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"shuvoedward/bible_verses/internal/reference"
	"shuvoedward/bible_verses/internal/service"
	"strings"
	"testing"
)

func TestReferenceHandler_Match(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "two references",
			body:           `{"text": "Leia João 3:16 e Salmos 23"}`,
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "no references",
			body:           `{"text": "bom dia"}`,
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "empty text",
			body:           `{"text": "   "}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown field",
			body:           `{"message": "João 3:16"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"text": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "text too long",
			body:           `{"text": "` + strings.Repeat("a", maxTextBytes+1) + `"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/references/match", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			testRouter().ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var actual struct {
				Matches []reference.Match `json:"matches"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &actual); err != nil {
				t.Fatalf("failed to unmarshal response body: %v", err)
			}

			if actual.Matches == nil {
				t.Error("expected matches to be a list, got null")
			}
			if len(actual.Matches) != tt.expectedCount {
				t.Errorf("expected %d matches, got %+v", tt.expectedCount, actual.Matches)
			}
		})
	}
}

func TestReferenceHandler_Resolve(t *testing.T) {
	body := `{"text": "João 3:16-17 e Mateus 5:9 ,Gênesis 1 kjv", "version": "nvi"}`

	req := httptest.NewRequest(http.MethodPost, "/v1/references/resolve", strings.NewReader(body))
	rr := httptest.NewRecorder()

	testRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var actual struct {
		References []service.ResolvedReference `json:"references"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &actual); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}

	if len(actual.References) != 3 {
		t.Fatalf("expected 3 references, got %d", len(actual.References))
	}

	first, second, third := actual.References[0], actual.References[1], actual.References[2]

	if first.Abbrev != "jo" || first.Version != "nvi" || len(first.Verses) != 2 || first.Error != service.KindNone {
		t.Errorf("unexpected first reference %+v", first)
	}
	if first.Verses[0].Text != "nvi jo 3:16" {
		t.Errorf("unexpected verse text %q", first.Verses[0].Text)
	}

	// mt 5:9 only fails for the default version
	if second.Abbrev != "mt" || second.Error != service.KindNone {
		t.Errorf("unexpected second reference %+v", second)
	}

	if third.Abbrev != "gn" || third.Version != "kjv" || len(third.Verses) != 2 {
		t.Errorf("unexpected third reference %+v", third)
	}
}

func TestReferenceHandler_ResolveReportsErrorsPerReference(t *testing.T) {
	body := `{"text": "Mateus 5:9 ;Gênesis 51 ;Romanos 8:27-29"}`

	req := httptest.NewRequest(http.MethodPost, "/v1/references/resolve", strings.NewReader(body))
	rr := httptest.NewRecorder()

	testRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var actual struct {
		References []struct {
			Abbrev string `json:"abbrev"`
			Error  string `json:"error"`
			Verses []any  `json:"verses"`
		} `json:"references"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &actual); err != nil {
		t.Fatalf("failed to unmarshal response body: %v", err)
	}

	expected := []struct {
		abbrev string
		kind   string
		verses int
	}{
		{"mt", "NotFound", 0},
		{"gn", "InvalidChapter", 0},
		{"rm", "UnexpectedResponse", 1},
	}

	if len(actual.References) != len(expected) {
		t.Fatalf("expected %d references, got %d", len(expected), len(actual.References))
	}

	for i, want := range expected {
		got := actual.References[i]
		if got.Abbrev != want.abbrev || got.Error != want.kind || len(got.Verses) != want.verses {
			t.Errorf("reference %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestReferenceHandler_ResolveUnsupportedVersion(t *testing.T) {
	body := `{"text": "João 3:16", "version": "xyz"}`

	req := httptest.NewRequest(http.MethodPost, "/v1/references/resolve", strings.NewReader(body))
	rr := httptest.NewRecorder()

	testRouter().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
}

func TestReferenceHandler_GetPassage(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		expectedStatus int
		expectedVerses int
		expectedText   string
	}{
		{name: "whole chapter", url: "/v1/bible/Genesis/1", expectedStatus: http.StatusOK, expectedVerses: 2},
		{name: "abbreviation", url: "/v1/bible/gn/1?svs=3", expectedStatus: http.StatusOK, expectedVerses: 1, expectedText: "acf gn 1:3"},
		{name: "accented alias", url: "/v1/bible/G%C3%AAnesis/1?svs=1&evs=3", expectedStatus: http.StatusOK, expectedVerses: 3},
		{name: "version", url: "/v1/bible/John/3?svs=16&version=KJV", expectedStatus: http.StatusOK, expectedVerses: 1, expectedText: "kjv jo 3:16"},
		{name: "unknown book", url: "/v1/bible/Hezekiah/1", expectedStatus: http.StatusNotFound},
		{name: "chapter out of range", url: "/v1/bible/Genesis/51", expectedStatus: http.StatusNotFound},
		{name: "verse not found", url: "/v1/bible/mt/5?svs=9", expectedStatus: http.StatusNotFound},
		{name: "bible api failure", url: "/v1/bible/rm/8?svs=28", expectedStatus: http.StatusBadGateway},
		{name: "invalid chapter", url: "/v1/bible/Genesis/one", expectedStatus: http.StatusBadRequest},
		{name: "end verse without start", url: "/v1/bible/Genesis/1?evs=3", expectedStatus: http.StatusBadRequest},
		{name: "reversed range", url: "/v1/bible/Genesis/1?svs=3&evs=1", expectedStatus: http.StatusUnprocessableEntity},
		{name: "unsupported version", url: "/v1/bible/Genesis/1?version=xyz", expectedStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()

			testRouter().ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var actual struct {
				Passage service.ResolvedReference `json:"passage"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &actual); err != nil {
				t.Fatalf("failed to unmarshal response body: %v", err)
			}

			if len(actual.Passage.Verses) != tt.expectedVerses {
				t.Errorf("expected %d verses, got %+v", tt.expectedVerses, actual.Passage.Verses)
			}
			if tt.expectedText != "" && actual.Passage.Verses[0].Text != tt.expectedText {
				t.Errorf("expected text %q, got %q", tt.expectedText, actual.Passage.Verses[0].Text)
			}
		})
	}
}
