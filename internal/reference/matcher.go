// Package reference finds scripture references such as "João 3:16",
// "Genesis 50" or "John 1:1-3 kjv" embedded in free text.
package reference

import (
	"errors"
	"regexp"
	"shuvoedward/bible_verses/internal/data"
	"shuvoedward/bible_verses/internal/normalize"
	"slices"
	"strconv"
	"strings"
)

var ErrNoAliases = errors.New("dataset has no aliases")

// Config selects the versions a reference may name explicitly.
type Config struct {
	// DefaultVersion is used when a reference names no version.
	DefaultVersion string
	// SupportedVersions are the version codes accepted after a reference.
	// When empty, per-reference versions are not recognized at all.
	SupportedVersions []string
}

// DefaultConfig returns the versions served by the verse API.
func DefaultConfig() Config {
	return Config{
		DefaultVersion:    "acf",
		SupportedVersions: []string{"acf", "apee", "bbe", "kjv", "nvi", "ra", "rvr"},
	}
}

// Match is one reference found in a text. FromVerse and ToVerse are nil
// when the text does not name them; an empty Version means none was given.
type Match struct {
	BookAlias string `json:"book_alias"`
	Chapter   int    `json:"chapter"`
	FromVerse *int   `json:"from_verse,omitempty"`
	ToVerse   *int   `json:"to_verse,omitempty"`
	Version   string `json:"version,omitempty"`
}

// Matcher holds the compiled reference pattern. It is immutable and safe
// for concurrent use.
type Matcher struct {
	re             *regexp.Regexp
	defaultVersion string
	versions       []string

	book, chapter, from, to, version, end int
}

// NewMatcher compiles a single pattern out of every alias in ds:
//
//	(^|\s|,|;) BOOK \s+ CHAPTER ( [:.] FROM ( - TO )? )? ( \s+ VERSION )? ($|\s+)
//
// Aliases are tried longest first, ties keep dataset order, so "Salmos"
// wins over "Salmo" and "1 João" over "João" at the same position.
func NewMatcher(ds *data.Dataset, cfg Config) (*Matcher, error) {
	aliases := ds.Aliases()
	if len(aliases) == 0 {
		return nil, ErrNoAliases
	}

	slices.SortStableFunc(aliases, func(a, b string) int {
		return len([]rune(b)) - len([]rune(a))
	})

	alternatives := make([]string, len(aliases))
	for i, alias := range aliases {
		alternatives[i] = normalize.FoldDiacriticsForPattern(normalize.EscapeForPattern(alias))
	}

	var sb strings.Builder
	sb.WriteString(`(?im)(^|\s|,|;)`)
	sb.WriteString(`(?P<book>` + strings.Join(alternatives, "|") + `)`)
	sb.WriteString(`\s+(?P<chapter>\d+)`)
	sb.WriteString(`(\s*[:.]\s*(?P<from>\d+)(\s*-\s*(?P<to>\d+))?)?`)

	versions := make([]string, 0, len(cfg.SupportedVersions))
	for _, v := range cfg.SupportedVersions {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" && !slices.Contains(versions, v) {
			versions = append(versions, v)
		}
	}

	if len(versions) > 0 {
		// longest first so "apee" is not cut short by a shorter code
		ordered := slices.Clone(versions)
		slices.SortStableFunc(ordered, func(a, b string) int { return len(b) - len(a) })

		quoted := make([]string, len(ordered))
		for i, v := range ordered {
			quoted[i] = normalize.EscapeForPattern(v)
		}
		sb.WriteString(`(\s+(?P<version>` + strings.Join(quoted, "|") + `))?`)
	}

	sb.WriteString(`(?P<end>$|\s+)`)

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, err
	}

	return &Matcher{
		re:             re,
		defaultVersion: strings.TrimSpace(cfg.DefaultVersion),
		versions:       versions,
		book:           re.SubexpIndex("book"),
		chapter:        re.SubexpIndex("chapter"),
		from:           re.SubexpIndex("from"),
		to:             re.SubexpIndex("to"),
		version:        re.SubexpIndex("version"),
		end:            re.SubexpIndex("end"),
	}, nil
}

// DefaultVersion returns the configured default version.
func (m *Matcher) DefaultVersion() string {
	return m.defaultVersion
}

// Versions returns the version codes recognized after a reference.
func (m *Matcher) Versions() []string {
	return slices.Clone(m.versions)
}

// SupportsVersion reports whether v is one of the recognized version codes.
func (m *Matcher) SupportsVersion(v string) bool {
	return slices.Contains(m.versions, strings.ToLower(strings.TrimSpace(v)))
}

// FindReferences returns every reference in text, in order of appearance.
// Text that contains no reference yields an empty slice.
//
// The trailing whitespace a match consumes is also the leading separator of
// the next reference, so scanning resumes where that whitespace starts.
func (m *Matcher) FindReferences(text string) []Match {
	matches := []Match{}

	pos := 0
	for pos < len(text) {
		loc := m.re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}

		matches = append(matches, m.toMatch(text[pos:], loc))

		next := pos + loc[1]
		if endStart := loc[2*m.end]; endStart >= 0 && loc[2*m.end+1] > endStart {
			next = pos + endStart
		}
		if next <= pos {
			next = pos + loc[1]
			if next <= pos {
				break
			}
		}
		pos = next
	}

	return matches
}

func (m *Matcher) toMatch(text string, loc []int) Match {
	group := func(idx int) (string, bool) {
		if idx < 0 || loc[2*idx] < 0 {
			return "", false
		}
		return text[loc[2*idx]:loc[2*idx+1]], true
	}

	match := Match{}

	match.BookAlias, _ = group(m.book)

	chapter, _ := group(m.chapter)
	match.Chapter = atoi(chapter)

	if from, ok := group(m.from); ok {
		n := atoi(from)
		match.FromVerse = &n
	}
	if to, ok := group(m.to); ok {
		n := atoi(to)
		match.ToVerse = &n
	}
	if version, ok := group(m.version); ok {
		match.Version = strings.ToLower(version)
	}

	return match
}

// atoi parses a run of digits. Values too large for an int saturate, which
// still lands outside every chapter and verse range.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return int(^uint(0) >> 1)
		}
		return 0
	}
	return n
}
