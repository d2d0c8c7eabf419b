// Package packing generates a deduplicated, reason-annotated gear checklist
// for a trip from the park, the selected campground, and the weather window.
package packing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/blaketime/woodsmoke/internal/types"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify normalizes an item name for keying: lowercased, punctuation runs
// collapsed to hyphens, edges trimmed.
func slugify(name string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// Builder accumulates packing items during one generation pass, keyed by
// (category, normalized name) so the same item is never duplicated no matter
// how many rules add it. Each generation call owns its own Builder; instances
// are never shared or reused across calls.
type Builder struct {
	items map[string]*types.PackingItem
}

// NewBuilder creates an empty accumulator.
func NewBuilder() *Builder {
	return &Builder{items: make(map[string]*types.PackingItem)}
}

func itemID(category types.PackingCategory, name string) string {
	return string(category) + ":" + slugify(name)
}

// Add inserts an item, or merges a new reason into an existing one. Reasons
// concatenate with " + ", skipping reasons already present as a substring.
func (b *Builder) Add(name string, category types.PackingCategory, reason string) {
	id := itemID(category, name)
	existing, ok := b.items[id]
	if !ok {
		b.items[id] = &types.PackingItem{
			ID:       id,
			Name:     name,
			Category: category,
			Reason:   reason,
		}
		return
	}

	if reason == "" {
		return
	}
	if existing.Reason == "" {
		existing.Reason = reason
		return
	}
	if !strings.Contains(existing.Reason, reason) {
		existing.Reason = existing.Reason + " + " + reason
	}
}

// Remove deletes the keyed entry if present. Used by override rules, e.g.
// stripping open-flame items under high fire danger.
func (b *Builder) Remove(name string, category types.PackingCategory) {
	delete(b.items, itemID(category, name))
}

// Items returns the accumulated list sorted by the fixed category order,
// then reason-less base essentials before reasoned items, then name.
func (b *Builder) Items() []types.PackingItem {
	categoryRank := make(map[types.PackingCategory]int, len(types.CategoryOrder))
	for i, c := range types.CategoryOrder {
		categoryRank[c] = i
	}

	out := make([]types.PackingItem, 0, len(b.items))
	for _, item := range b.items {
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if categoryRank[a.Category] != categoryRank[b.Category] {
			return categoryRank[a.Category] < categoryRank[b.Category]
		}
		if (a.Reason == "") != (b.Reason == "") {
			return a.Reason == ""
		}
		return a.Name < b.Name
	})
	return out
}
