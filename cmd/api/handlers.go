package main

import "shuvoedward/bible_verses/internal/service"

// Handlers contains all HTTP methods
// This is specific to the HTTP API entry point
type Handlers struct {
	Reference *ReferenceHandler
	Book      *BookHandler
}

// NewHandlers creates all HTTP handlers
// Handlers are tied to HTTP - not reusable like services
func NewHandlers(app *application, services *service.Service) *Handlers {
	return &Handlers{
		Reference: NewReferenceHandler(app, services.Reference),
		Book:      NewBookHandler(app, app.dataset, services.Autocomplete),
	}
}
