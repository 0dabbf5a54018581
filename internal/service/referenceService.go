package service

import (
	"context"
	"log/slog"
	"shuvoedward/bible_verses/internal/reference"
	"strings"
)

// ReferenceService ties the matcher and the resolver together. The matcher
// and dataset are shared read-only, so one instance serves every request.
type ReferenceService struct {
	matcher  *reference.Matcher
	passages *PassageService
	logger   *slog.Logger
}

func NewReferenceService(
	matcher *reference.Matcher,
	passages *PassageService,
	logger *slog.Logger,
) *ReferenceService {
	return &ReferenceService{
		matcher:  matcher,
		passages: passages,
		logger:   logger,
	}
}

// Match lists the references written in text.
func (s *ReferenceService) Match(text string) []reference.Match {
	return s.matcher.FindReferences(text)
}

// ResolveAll resolves matches in order, one at a time.
func (s *ReferenceService) ResolveAll(ctx context.Context, matches []reference.Match, versionOverride string) []ResolvedReference {
	return s.passages.ResolveAll(ctx, matches, versionOverride)
}

// Resolve resolves a single reference.
func (s *ReferenceService) Resolve(ctx context.Context, m reference.Match, versionOverride string) ResolvedReference {
	return s.passages.Resolve(ctx, m, versionOverride)
}

// Lookup matches and resolves every reference in text.
func (s *ReferenceService) Lookup(ctx context.Context, text, versionOverride string) ([]ResolvedReference, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	matches := s.Match(text)

	s.logger.Debug("references matched", "count", len(matches))

	return s.ResolveAll(ctx, matches, versionOverride), nil
}

// SupportsVersion reports whether version can be requested explicitly.
func (s *ReferenceService) SupportsVersion(version string) bool {
	return s.matcher.SupportsVersion(version)
}

// Versions returns the version codes that can be requested.
func (s *ReferenceService) Versions() []string {
	return s.matcher.Versions()
}
