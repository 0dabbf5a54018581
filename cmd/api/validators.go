package main

import (
	"shuvoedward/bible_verses/internal/reference"
	"shuvoedward/bible_verses/internal/validator"
	"strings"
)

const maxTextBytes = 10_000

func (app *application) validateText(v *validator.Validator, text string) {
	v.Check(strings.TrimSpace(text) != "", "text", "must be provided")
	v.Check(len(text) <= maxTextBytes, "text", "must not be more than 10000 bytes long")
}

// validateVersion accepts an empty version, meaning the default one.
func (app *application) validateVersion(v *validator.Validator, version string, permitted []string) {
	if strings.TrimSpace(version) == "" {
		return
	}
	v.Check(validator.PermittedValue(strings.ToLower(strings.TrimSpace(version)), permitted...), "version", "must be a supported version")
}

func (app *application) validateLocation(v *validator.Validator, m reference.Match) {
	v.Check(m.BookAlias != "", "book", "must be provided")
	v.Check(m.Chapter > 0, "chapter", "must be a positive integer")
	if m.FromVerse != nil {
		v.Check(*m.FromVerse > 0, "svs", "must be a positive integer")
	}
	if m.FromVerse != nil && m.ToVerse != nil {
		v.Check(*m.ToVerse >= *m.FromVerse, "evs", "must not be before the start verse")
	}
}
