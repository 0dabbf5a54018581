package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"shuvoedward/bible_verses/internal/data"
	"shuvoedward/bible_verses/internal/reference"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

type envelope map[string]any

// getLocationFilters reads a Bible location from the request.
// The book and chapter come from the URL path. The verses come from the
// optional svs (start verse) and evs (end verse) query parameters: svs alone
// selects one verse, svs with evs a range, neither the whole chapter.
// The book may be an alias ("Genesis", "Gênesis") or an abbreviation ("gn").
func (app *application) getLocationFilters(r *http.Request) (reference.Match, error) {
	params := httprouter.ParamsFromContext(r.Context())

	book := params.ByName("book")
	if b, ok := app.dataset.Book(book); ok {
		book = b.Name
	}

	chapter, err := strconv.Atoi(params.ByName("chapter"))
	if err != nil {
		return reference.Match{}, errors.New("invalid chapter parameter")
	}

	m := reference.Match{
		BookAlias: book,
		Chapter:   chapter,
	}

	query := r.URL.Query()

	if query.Has("svs") {
		svs, err := strconv.Atoi(query.Get("svs"))
		if err != nil {
			return reference.Match{}, errors.New("invalid start verse parameter")
		}
		m.FromVerse = &svs
	}

	if query.Has("evs") {
		if m.FromVerse == nil {
			return reference.Match{}, errors.New("end verse requires a start verse")
		}

		evs, err := strconv.Atoi(query.Get("evs"))
		if err != nil {
			return reference.Match{}, errors.New("invalid end verse parameter")
		}
		m.ToVerse = &evs
	}

	return m, nil
}

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(js); err != nil {
		return err
	}

	return nil
}

func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		// syntax error
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")

		// type error
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)

		// empty body
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)

		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

		case errors.As(err, &invalidUnmarshalError):
			panic(err)

		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single json value")
	}

	return nil
}

// readPaginationParams reads page, page_size and sort from the query string.
// Missing values fall back to the defaults given.
func (app *application) readPaginationParams(r *http.Request, defaultPageSize int, defaultSort string) (data.Filters, error) {
	query := r.URL.Query()

	page := 1 // default
	if query.Has("page") {
		var err error
		page, err = strconv.Atoi(query.Get("page"))
		if err != nil {
			return data.Filters{}, errors.New("page must be an integer")
		}
	}

	pageSize := defaultPageSize
	if query.Has("page_size") {
		var err error
		pageSize, err = strconv.Atoi(query.Get("page_size"))
		if err != nil {
			return data.Filters{}, errors.New("page_size must be an integer")
		}
	}

	sort := defaultSort
	if query.Has("sort") {
		sort = query.Get("sort")
	}

	return data.Filters{Page: page, PageSize: pageSize, Sort: sort}, nil
}
