package strength

import (
	"regexp"
	"strings"
)

// vendorPrefixes are equipment / vendor words that are stripped from the
// beginning of an exercise name, e.g. "eGym Leg Curl" -> "leg curl".
var vendorPrefixes = []string{
	"egym ",
	"machine ",
}

var (
	parenthesesRegex = regexp.MustCompile(`\([^)]*\)`)
	whitespaceRegex  = regexp.MustCompile(`\s+`)
)

// NormalizeName turns a free-text exercise name into a lookup key:
// lower-cased, trimmed, without a leading vendor prefix, without
// parenthetical annotations and with single spaces only.
func NormalizeName(raw string) string {
	name := strings.TrimSpace(strings.ToLower(raw))
	name = whitespaceRegex.ReplaceAllString(name, " ")
	for _, prefix := range vendorPrefixes {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimPrefix(name, prefix)
			break
		}
	}
	name = parenthesesRegex.ReplaceAllString(name, " ")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// Library resolves raw exercise names to canonical library entries.
// It is immutable once built and safe for concurrent use.
type Library struct {
	entries []ExerciseDocument
	byKey   map[string]int
}

// NewLibrary indexes the given documents by their normalized canonical name
// and by every normalized legacy name. A canonical name always beats a legacy
// name of another document; otherwise the first document claiming a key wins.
func NewLibrary(docs []ExerciseDocument) *Library {
	lib := &Library{
		entries: make([]ExerciseDocument, 0, len(docs)),
		byKey:   make(map[string]int),
	}

	for _, doc := range docs {
		canonical := NormalizeName(doc.NormalizedName)
		if canonical == "" {
			canonical = NormalizeName(doc.Name)
		}
		if canonical == "" {
			continue
		}
		doc.NormalizedName = canonical

		if _, taken := lib.byKey[canonical]; !taken {
			lib.byKey[canonical] = len(lib.entries)
		}
		lib.entries = append(lib.entries, doc)
	}

	for idx, doc := range lib.entries {
		for _, legacy := range doc.LegacyNames {
			alias := NormalizeName(legacy)
			if alias == "" {
				continue
			}
			if _, taken := lib.byKey[alias]; !taken {
				lib.byKey[alias] = idx
			}
		}
	}

	return lib
}

func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

func (l *Library) Entries() []ExerciseDocument {
	if l == nil {
		return nil
	}
	out := make([]ExerciseDocument, len(l.entries))
	copy(out, l.entries)
	return out
}

// Lookup returns the library entry the raw name resolves to, if any.
func (l *Library) Lookup(raw string) (ExerciseDocument, bool) {
	if l == nil {
		return ExerciseDocument{}, false
	}
	idx, ok := l.byKey[NormalizeName(raw)]
	if !ok {
		return ExerciseDocument{}, false
	}
	return l.entries[idx], true
}

// Key returns the canonical key for a raw exercise name. Names that are not
// in the library fall back to their normalized form, so they remain usable.
func (l *Library) Key(raw string) string {
	if doc, ok := l.Lookup(raw); ok {
		return doc.NormalizedName
	}
	return NormalizeName(raw)
}

// DisplayName is the library's canonical name, or the trimmed raw name when
// the exercise is unknown.
func (l *Library) DisplayName(raw string) string {
	if doc, ok := l.Lookup(raw); ok && doc.Name != "" {
		return doc.Name
	}
	return strings.TrimSpace(raw)
}

// KeySet is a set of canonical exercise keys.
type KeySet map[string]struct{}

// Keys resolves every name to its canonical key.
func (l *Library) Keys(names ...string) KeySet {
	keys := make(KeySet, len(names))
	for _, name := range names {
		if key := l.Key(name); key != "" {
			keys[key] = struct{}{}
		}
	}
	return keys
}

func (ks KeySet) Contains(key string) bool {
	_, ok := ks[key]
	return ok
}
