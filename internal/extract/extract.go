// Package extract normalizes raw ad-platform payloads into models.Record.
// Each platform is its own Extractor; add platforms by adding types, not
// branches.
package extract

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/AngelCh415/adcompare/internal/coerce"
	"github.com/AngelCh415/adcompare/internal/models"
)

var ErrUnknownPlatform = errors.New("unknown platform")

type Extractor interface {
	// Platform is the registry key, e.g. "meta".
	Platform() string
	// Label is the human-readable source name stamped on records.
	Label() string
	// Extract returns nil only when raw is absent (nil, empty object or not an object).
	Extract(raw any, hints models.Hints) *models.Record
}

type Registry struct {
	byKey map[string]Extractor
}

func NewRegistry(ex ...Extractor) *Registry {
	r := &Registry{byKey: make(map[string]Extractor, len(ex))}
	for _, e := range ex {
		r.byKey[norm(e.Platform())] = e
	}
	return r
}

// Default wires the two supported platforms with their stock labels.
func Default() *Registry {
	return NewRegistry(NewMeta(MetaLabel), NewGoogle(GoogleLabel))
}

func (r *Registry) Get(platform string) (Extractor, error) {
	e, ok := r.byKey[norm(platform)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
	return e, nil
}

func (r *Registry) Platforms() []string {
	out := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func object(raw any) (map[string]any, bool) {
	m, ok := raw.(map[string]any)
	if !ok || len(m) == 0 {
		return nil, false
	}
	return m, true
}

// pick returns the first key present in obj, whatever its value.
func pick(obj any, keys ...string) (any, bool) {
	for _, k := range keys {
		if coerce.Has(obj, k) {
			return coerce.Dig(obj, k), true
		}
	}
	return nil, false
}

// firstString returns the first non-empty string found at any of paths.
func firstString(obj any, paths ...[]any) string {
	for _, p := range paths {
		if s := coerce.ToSafeString(coerce.Dig(obj, p...), ""); s != "" {
			return s
		}
	}
	return ""
}

// sumActions adds up the value of every {action_type, value} entry accepted
// by match. A nil match accepts everything.
func sumActions(list any, match func(string) bool) float64 {
	arr, ok := list.([]any)
	if !ok {
		return 0
	}
	var total float64
	for _, a := range arr {
		typ := coerce.ToSafeString(coerce.Dig(a, "action_type"), "")
		if match != nil && !match(typ) {
			continue
		}
		total += maxf(coerce.ToNumber(coerce.Dig(a, "value"), 0))
	}
	return total
}

func identity(r *models.Record, h models.Hints, id, name, since, until string) {
	r.EntityID = coalesce(h.EntityID, id)
	r.EntityName = coalesce(h.EntityName, name)
	r.Since = coalesce(h.Since, since)
	r.Until = coalesce(h.Until, until)
}

func coalesce(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return strings.TrimSpace(def)
	}
	return s
}

func max0(i int64) int64 {
	if i < 0 {
		return 0
	}
	return i
}

func maxf(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
