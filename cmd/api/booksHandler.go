package main

import (
	"errors"
	"net/http"
	"shuvoedward/bible_verses/internal/data"
	"shuvoedward/bible_verses/internal/service"
	"shuvoedward/bible_verses/internal/validator"
	"strings"

	"github.com/julienschmidt/httprouter"
)

type BookCatalog interface {
	Books() []data.Book
	Book(abbrev string) (data.Book, bool)
}

type AutocompleteInterface interface {
	Autocomplete(query string) (*service.AutocompleteResult, error)
}

type BookHandler struct {
	app                 *application
	catalog             BookCatalog
	autocompleteService AutocompleteInterface
}

func NewBookHandler(
	app *application,
	catalog BookCatalog,
	autocompleteService AutocompleteInterface,
) *BookHandler {
	return &BookHandler{
		app:                 app,
		catalog:             catalog,
		autocompleteService: autocompleteService,
	}
}

func (h *BookHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/v1/books", h.app.generalRateLimit(h.List))
	router.HandlerFunc(http.MethodGet, "/v1/books/:abbrev", h.app.generalRateLimit(h.Get))
	router.HandlerFunc(http.MethodGet, "/v1/autocomplete/books", h.app.generalRateLimit(h.Autocomplete))
}

func (h *BookHandler) handlerBooksError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyQuery):
		h.app.badRequestResponse(w, r, err)
	default:
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary List the books of the Bible
// @Description Returns the books with their abbreviation, display name, chapter count and accepted aliases, in canonical order unless sorted otherwise.
// @Tags Books
// @Produce json
// @Param page query int false "Page number (minimum: 1)" minimum(1)
// @Param page_size query int false "Number of books per page (1-100, default 100)" minimum(1) maximum(100)
// @Param sort query string false "position, name or chapters, prefixed with - for descending order"
// @Success 200 {object} object{books=[]data.Book,metadata=data.Metadata}
// @Failure 400 {object} object{error=string} "Non integer page or page_size"
// @Failure 422 {object} object{error=object} "Out of range page, page_size or unknown sort"
// @Router /v1/books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := h.app.readPaginationParams(r, 100, "position")
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}
	filters.SortSafeList = data.BookSortSafeList

	v := validator.New()
	filters.Validate(v)
	filters.ValidateSort(v)
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	books, metadata := data.PaginateBooks(h.catalog.Books(), filters)

	err = h.app.writeJSON(w, http.StatusOK, envelope{"books": books, "metadata": metadata}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Get a book by abbreviation
// @Tags Books
// @Produce json
// @Param abbrev path string true "Book abbreviation (e.g., gn, 1jo)"
// @Success 200 {object} object{book=data.Book}
// @Failure 404 {object} object{error=string} "Unknown abbreviation"
// @Router /v1/books/{abbrev} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	abbrev := strings.ToLower(httprouter.ParamsFromContext(r.Context()).ByName("abbrev"))

	book, ok := h.catalog.Book(abbrev)
	if !ok {
		h.app.notFoundResponse(w, r)
		return
	}

	err := h.app.writeJSON(w, http.StatusOK, envelope{"book": book}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Autocomplete book names
// @Description Suggests books whose name or alias starts with the typed text. Case and accents are ignored.
// @Tags Books, Autocomplete
// @Produce json
// @Param q query string true "Partial book name (e.g., 'apo', 'jo', '1 jo')"
// @Success 200 {object} object{autocomplete=service.AutocompleteResult}
// @Failure 400 {object} object{error=string} "Query parameter is empty or missing"
// @Failure 500 {object} object{error=string} "Internal server error"
// @Router /v1/autocomplete/books [get]
func (h *BookHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.app.badRequestResponse(w, r, errors.New("query can not be empty"))
		return
	}

	autocomplete, err := h.autocompleteService.Autocomplete(query)
	if err != nil {
		h.handlerBooksError(w, r, err)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"autocomplete": autocomplete}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}
