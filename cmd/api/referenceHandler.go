package main

import (
	"context"
	"net/http"
	"shuvoedward/bible_verses/internal/reference"
	"shuvoedward/bible_verses/internal/service"
	"shuvoedward/bible_verses/internal/validator"
	"strings"

	"github.com/julienschmidt/httprouter"
)

type ReferenceServiceInterface interface {
	Match(text string) []reference.Match
	ResolveAll(ctx context.Context, matches []reference.Match, versionOverride string) []service.ResolvedReference
	Resolve(ctx context.Context, m reference.Match, versionOverride string) service.ResolvedReference
	Versions() []string
}

type ReferenceHandler struct {
	app              *application
	referenceService ReferenceServiceInterface
}

func NewReferenceHandler(app *application, referenceService ReferenceServiceInterface) *ReferenceHandler {
	return &ReferenceHandler{
		app:              app,
		referenceService: referenceService,
	}
}

func (h *ReferenceHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/v1/references/match", h.app.generalRateLimit(h.Match))
	router.HandlerFunc(http.MethodPost, "/v1/references/resolve", h.app.generalRateLimit(h.Resolve))
	router.HandlerFunc(http.MethodGet, "/v1/bible/:book/:chapter", h.app.generalRateLimit(h.GetPassage))
}

// handleResolveError answers a single reference lookup that failed.
func (h *ReferenceHandler) handleResolveError(w http.ResponseWriter, r *http.Request, result service.ResolvedReference) {
	switch result.Error {
	case service.KindUnknownBook, service.KindInvalidChapter, service.KindNotFound:
		h.app.notFoundResponse(w, r)
	case service.KindUnexpectedResponse, service.KindFailure:
		h.app.logger.Warn("passage lookup failed",
			"book", result.Abbrev,
			"chapter", result.Chapter,
			"kind", result.Error.String(),
			"request_id", requestIDFromContext(r.Context()),
		)
		h.app.badGatewayResponse(w, r)
	default:
		h.app.serverErrorResponse(w, r, result.Err)
	}
}

// @Summary Find Bible references in a text
// @Description Lists every reference such as "João 3:16" or "John 1:1-3 kjv" written in the text, in order of appearance. Nothing is fetched.
// @Tags References
// @Accept json
// @Produce json
// @Param request body object{text=string} true "Text to scan"
// @Success 200 {object} object{matches=[]reference.Match}
// @Failure 400 {object} object{error=string} "Malformed JSON body"
// @Failure 422 {object} object{error=object} "Missing or oversized text"
// @Router /v1/references/match [post]
func (h *ReferenceHandler) Match(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Text string `json:"text"`
	}

	err := h.app.readJSON(w, r, &input)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	h.app.validateText(v, input.Text)
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	matches := h.referenceService.Match(input.Text)
	if matches == nil {
		matches = []reference.Match{}
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"matches": matches}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Resolve the Bible references in a text
// @Description Finds every reference in the text and fetches its verses. References are resolved in order; a failing one carries an error kind (UnknownBook, InvalidChapter, NotFound, UnexpectedResponse, Failure) and the verses fetched before the failure, and never stops the others.
// @Tags References
// @Accept json
// @Produce json
// @Param request body object{text=string,version=string} true "Text to scan and an optional version used when a reference names none"
// @Success 200 {object} object{references=[]service.ResolvedReference}
// @Failure 400 {object} object{error=string} "Malformed JSON body"
// @Failure 422 {object} object{error=object} "Missing text or unsupported version"
// @Router /v1/references/resolve [post]
func (h *ReferenceHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Text    string `json:"text"`
		Version string `json:"version"`
	}

	err := h.app.readJSON(w, r, &input)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	h.app.validateText(v, input.Text)
	h.app.validateVersion(v, input.Version, h.referenceService.Versions())
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	matches := h.referenceService.Match(input.Text)
	references := h.referenceService.ResolveAll(r.Context(), matches, strings.ToLower(input.Version))

	err = h.app.writeJSON(w, http.StatusOK, envelope{"references": references}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Get a Bible chapter or verse range
// @Description Retrieves the text of a chapter, a single verse (svs) or a range of verses (svs and evs).
// @Tags Bible, Passages
// @Produce json
// @Param book path string true "Book name, alias or abbreviation (e.g., Genesis, Gênesis, gn)"
// @Param chapter path int true "The chapter number (e.g., 1)"
// @Param svs query int false "Start verse number"
// @Param evs query int false "End verse number (must be used with svs)"
// @Param version query string false "Bible version (e.g., acf, kjv)"
// @Success 200 {object} object{passage=service.ResolvedReference} "Successfully retrieved passage"
// @Failure 400 {object} object{error=string} "Invalid request parameters"
// @Failure 404 {object} object{error=string} "Unknown book, chapter out of range or verses not found"
// @Failure 422 {object} object{error=object} "Invalid verse range or unsupported version"
// @Failure 502 {object} object{error=string} "Bible API failure"
// @Router /v1/bible/{book}/{chapter} [get]
func (h *ReferenceHandler) GetPassage(w http.ResponseWriter, r *http.Request) {
	m, err := h.app.getLocationFilters(r)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	version := r.URL.Query().Get("version")

	v := validator.New()
	h.app.validateLocation(v, m)
	h.app.validateVersion(v, version, h.referenceService.Versions())
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	passage := h.referenceService.Resolve(r.Context(), m, strings.ToLower(version))
	if passage.Error != service.KindNone {
		h.handleResolveError(w, r, passage)
		return
	}

	err = h.app.writeJSON(w, http.StatusOK, envelope{"passage": passage}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}
