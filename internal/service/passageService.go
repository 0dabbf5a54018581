package service

import (
	"context"
	"fmt"
	"log/slog"
	"shuvoedward/bible_verses/internal/data"
	"shuvoedward/bible_verses/internal/reference"
	"strings"
)

// VerseFetcher is the remote verse source. Errors wrap data.ErrNotFound,
// data.ErrUnexpectedResponse or, for anything else, count as a failure.
type VerseFetcher interface {
	FetchChapter(ctx context.Context, version, abbrev string, chapter int) ([]data.VerseDetail, error)
	FetchVerse(ctx context.Context, version, abbrev string, chapter, verse int) (*data.VerseDetail, error)
}

// ResolvedReference is the outcome of resolving one reference. When Error is
// set, Verses holds whatever was fetched before the failure.
type ResolvedReference struct {
	Abbrev    string             `json:"abbrev,omitempty"`
	BookName  string             `json:"book_name"`
	Chapter   int                `json:"chapter"`
	FromVerse *int               `json:"from_verse,omitempty"`
	ToVerse   *int               `json:"to_verse,omitempty"`
	Version   string             `json:"version"`
	Verses    []data.VerseDetail `json:"verses"`
	Error     ErrorKind          `json:"error,omitempty"`
	Err       error              `json:"-"`
}

type PassageService struct {
	dataset        *data.Dataset
	fetcher        VerseFetcher
	defaultVersion string
	logger         *slog.Logger
}

func NewPassageService(
	dataset *data.Dataset,
	fetcher VerseFetcher,
	defaultVersion string,
	logger *slog.Logger,
) *PassageService {
	return &PassageService{
		dataset:        dataset,
		fetcher:        fetcher,
		defaultVersion: defaultVersion,
		logger:         logger,
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// chooseVersion prefers the version written next to the reference, then the
// caller's override, then the configured default.
func (s *PassageService) chooseVersion(matched, override string) string {
	switch {
	case !isBlank(matched):
		return strings.TrimSpace(matched)
	case !isBlank(override):
		return strings.TrimSpace(override)
	default:
		return s.defaultVersion
	}
}

// Resolve fetches the verses m refers to. It never fails: problems are
// reported through the Error field of the result.
//
//   - both verses given: every verse from FromVerse to ToVerse, one fetch
//     each, stopping at the first failure. A reversed or non positive range
//     yields no verses and no error.
//   - only FromVerse: that single verse.
//   - no verses: the whole chapter in one fetch.
func (s *PassageService) Resolve(ctx context.Context, m reference.Match, versionOverride string) ResolvedReference {
	result := ResolvedReference{
		Chapter:   m.Chapter,
		FromVerse: m.FromVerse,
		ToVerse:   m.ToVerse,
		Version:   s.chooseVersion(m.Version, versionOverride),
		Verses:    []data.VerseDetail{},
	}

	book, ok := s.dataset.Lookup(m.BookAlias)
	if !ok {
		result.Error = KindUnknownBook
		result.Err = fmt.Errorf("unknown book %q", m.BookAlias)
		return result
	}

	result.Abbrev = book.Abbrev
	result.BookName = book.Name

	if m.Chapter < 1 || m.Chapter > book.Chapters {
		result.Error = KindInvalidChapter
		result.Err = fmt.Errorf("chapter %d of %q is outside 1-%d", m.Chapter, book.Abbrev, book.Chapters)
		return result
	}

	switch {
	case m.FromVerse != nil && m.ToVerse != nil:
		from, to := *m.FromVerse, *m.ToVerse
		if from < 1 || to < 1 || from > to {
			return result
		}

		for verse := from; verse <= to; verse++ {
			detail, err := s.fetchVerse(ctx, result.Version, book.Abbrev, m.Chapter, verse)
			if err != nil {
				s.fail(&result, err)
				return result
			}
			result.Verses = append(result.Verses, *detail)
		}

	case m.FromVerse != nil:
		if *m.FromVerse < 1 {
			return result
		}

		detail, err := s.fetchVerse(ctx, result.Version, book.Abbrev, m.Chapter, *m.FromVerse)
		if err != nil {
			s.fail(&result, err)
			return result
		}
		result.Verses = append(result.Verses, *detail)

	default:
		verses, err := s.fetcher.FetchChapter(ctx, result.Version, book.Abbrev, m.Chapter)
		if err != nil {
			s.fail(&result, err)
			return result
		}
		for _, v := range verses {
			result.Verses = append(result.Verses, data.VerseDetail{Number: v.Number, Text: v.Text})
		}
	}

	return result
}

func (s *PassageService) fetchVerse(ctx context.Context, version, abbrev string, chapter, verse int) (*data.VerseDetail, error) {
	detail, err := s.fetcher.FetchVerse(ctx, version, abbrev, chapter, verse)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("%w: empty verse %s/%d/%d", data.ErrUnexpectedResponse, abbrev, chapter, verse)
	}
	return &data.VerseDetail{Number: detail.Number, Text: detail.Text}, nil
}

func (s *PassageService) fail(result *ResolvedReference, err error) {
	result.Error = KindOf(err)
	result.Err = err

	s.logger.Warn("failed to resolve reference",
		"book", result.Abbrev,
		"chapter", result.Chapter,
		"version", result.Version,
		"fetched", len(result.Verses),
		"kind", result.Error.String(),
		"error", err,
	)
}

// ResolveAll resolves matches one after another, in order. A failing
// reference never stops the others from resolving.
func (s *PassageService) ResolveAll(ctx context.Context, matches []reference.Match, versionOverride string) []ResolvedReference {
	results := make([]ResolvedReference, 0, len(matches))

	for _, m := range matches {
		results = append(results, s.Resolve(ctx, m, versionOverride))
	}

	return results
}
