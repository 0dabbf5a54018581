package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"shuvoedward/bible_verses/internal/reference"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestMatchCommand(t *testing.T) {
	out, err := run(t, "match", "Joao", "1:1-3", "kjv")
	if err != nil {
		t.Fatalf("match returned an error: %v", err)
	}

	var matches []reference.Match
	if err := json.Unmarshal([]byte(out), &matches); err != nil {
		t.Fatalf("failed to decode output %q: %v", out, err)
	}

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	m := matches[0]
	if m.BookAlias != "Joao" || m.Chapter != 1 || *m.FromVerse != 1 || *m.ToVerse != 3 || m.Version != "kjv" {
		t.Errorf("unexpected match %+v", m)
	}
}

func TestLookupCommand(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var version, abbrev string
		var chapter, verse int

		_, err := fmt.Sscanf(strings.ReplaceAll(r.URL.Path, "/", " "), " verses %s %s %d %d", &version, &abbrev, &chapter, &verse)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		fmt.Fprintf(w, `{"number":%d,"text":"%s %s %d:%d"}`, verse, version, abbrev, chapter, verse)
	}))
	defer ts.Close()

	out, err := run(t, "lookup", "--bible-api-url", ts.URL, "Joao 1:1-3 kjv")
	if err != nil {
		t.Fatalf("lookup returned an error: %v", err)
	}

	for _, want := range []string{"João 1:1-3 (kjv)", "1 kjv jo 1:1", "2 kjv jo 1:2", "3 kjv jo 1:3"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestLookupCommandReportsErrors(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	out, err := run(t, "lookup", "--bible-api-url", ts.URL, "Genesis 1:1 e Genesis 51")
	if err != nil {
		t.Fatalf("lookup returned an error: %v", err)
	}

	if !strings.Contains(out, "error: NotFound") || !strings.Contains(out, "error: InvalidChapter") {
		t.Errorf("expected both errors in output, got:\n%s", out)
	}
}

func TestLookupCommandUnsupportedVersion(t *testing.T) {
	_, err := run(t, "lookup", "--bible-api-url", "http://localhost", "--version", "xyz", "Genesis 1")
	if err == nil {
		t.Error("expected an error for an unsupported version")
	}
}

func TestBooksCommand(t *testing.T) {
	out, err := run(t, "books")
	if err != nil {
		t.Fatalf("books returned an error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 66 {
		t.Fatalf("expected 66 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "gn ") || !strings.HasSuffix(lines[0], " 50") {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestSeedBooksRequiresDSN(t *testing.T) {
	t.Setenv("BIBLE_DB_DSN", "")

	_, err := run(t, "seed-books")
	if err == nil {
		t.Error("expected an error without a DSN")
	}
}
