// Package catalog fetches and normalizes the selectable model catalog from
// the upstream listing endpoint. The response shape is not contractually
// fixed, so normalization walks an ordered list of shape decoders and stops
// at the first match. The loader never fails hard: anything unusable
// degrades to a fixed two-entry fallback catalog.
package catalog

import "strings"

// Entry is one selectable model.
type Entry struct {
	// ID is the opaque upstream identifier, e.g. "openai/gpt-4o-mini".
	ID string
	// DisplayName is the human-readable form of ID.
	DisplayName string
	// Preselected marks entries that start out selected.
	Preselected bool
}

// Catalog is the normalized model list for one session.
type Catalog struct {
	Entries []Entry
	// Degraded is set when the upstream response was missing, empty or
	// unrecognizable and the fallback catalog was substituted.
	Degraded bool
}

const (
	// displayLimit caps how many entries are offered for display. It is a
	// presentation limit only; Entries retains the full list.
	displayLimit = 12
	// preselectCount is how many leading entries start out selected.
	preselectCount = 2
)

// Fallback model identifiers used when the upstream catalog is unusable.
var fallbackModels = []string{
	"openai/gpt-4o-mini",
	"anthropic/claude-3-5-haiku",
}

// Display returns the entries to offer for selection, truncated to the
// presentation limit.
func (c *Catalog) Display() []Entry {
	if len(c.Entries) <= displayLimit {
		return c.Entries
	}
	return c.Entries[:displayLimit]
}

// Preselected returns the IDs of the entries that start out selected.
func (c *Catalog) Preselected() []string {
	var ids []string
	for _, e := range c.Entries {
		if e.Preselected {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// newCatalog builds a Catalog from normalized model IDs, marking the first
// two entries pre-selected.
func newCatalog(ids []string, degraded bool) *Catalog {
	c := &Catalog{Degraded: degraded}
	for i, id := range ids {
		c.Entries = append(c.Entries, Entry{
			ID:          id,
			DisplayName: DisplayName(id),
			Preselected: i < preselectCount,
		})
	}
	return c
}

// Fallback returns the fixed two-entry catalog used when the upstream list
// is unavailable. Both entries are pre-selected.
func Fallback() *Catalog {
	return newCatalog(fallbackModels, true)
}

// DisplayName derives a display name from a model identifier: the leading
// "provider/" segment is stripped, dashes become spaces, and each word is
// capitalized.
func DisplayName(id string) string {
	name := id
	if idx := strings.Index(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	words := strings.Split(strings.ReplaceAll(name, "-", " "), " ")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
