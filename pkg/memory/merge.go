package memory

import "strings"

// Caps applied by Merge. Older redundant items are dropped first: after
// deduplication the most recently added entries survive truncation.
const (
	maxFacts       = 10
	maxDecisions   = 5
	maxPreferences = 5
	maxEntities    = 10
)

// Merge combines a prior structured memory with a newly extracted one.
//
// Scalar lists are concatenated base-then-incoming, deduplicated by exact
// string equality preserving first-seen order, then truncated keeping the
// last N entries. Open questions are not merged: the incoming set replaces
// the base wholesale, since stale questions should not accumulate. Entities
// merge by case-insensitive name.
//
// A nil base returns incoming unchanged.
func Merge(base *StructuredMemory, incoming StructuredMemory) StructuredMemory {
	if base == nil {
		return incoming
	}

	return StructuredMemory{
		Facts:           mergeList(base.Facts, incoming.Facts, maxFacts),
		Decisions:       mergeList(base.Decisions, incoming.Decisions, maxDecisions),
		UserPreferences: mergeList(base.UserPreferences, incoming.UserPreferences, maxPreferences),
		OpenQuestions:   incoming.OpenQuestions,
		Entities:        mergeEntities(base.Entities, incoming.Entities),
	}
}

// mergeList deduplicates the concatenation of a and b in first-seen order,
// then keeps the trailing limit entries.
func mergeList(a, b []string, limit int) []string {
	combined := make([]string, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)

	seen := make(map[string]struct{}, len(combined))
	result := make([]string, 0, len(combined))
	for _, item := range combined {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}

	if len(result) > limit {
		result = result[len(result)-limit:]
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// mergeEntities merges two entity lists by case-insensitive name. For a name
// present in both, aliases are unioned and the incoming notes win when
// non-empty. Base survivors keep their position; new entities append after.
// The result is capped at maxEntities.
func mergeEntities(base, incoming []Entity) []Entity {
	if len(base) == 0 && len(incoming) == 0 {
		return nil
	}
	if len(base) == 0 {
		return capEntities(incoming)
	}
	if len(incoming) == 0 {
		return capEntities(base)
	}

	merged := make(map[string]Entity, len(base)+len(incoming))
	order := make([]string, 0, len(base)+len(incoming))

	for _, e := range base {
		key := strings.ToLower(e.Name)
		if _, ok := merged[key]; !ok {
			order = append(order, key)
		}
		merged[key] = e
	}

	for _, e := range incoming {
		key := strings.ToLower(e.Name)
		existing, ok := merged[key]
		if !ok {
			merged[key] = e
			order = append(order, key)
			continue
		}

		notes := e.Notes
		if notes == "" {
			notes = existing.Notes
		}
		merged[key] = Entity{
			Name:    e.Name,
			Aliases: unionAliases(existing.Aliases, e.Aliases),
			Notes:   notes,
		}
	}

	result := make([]Entity, 0, len(order))
	for _, key := range order {
		result = append(result, merged[key])
	}
	return capEntities(result)
}

// unionAliases deduplicates the concatenation of a and b, preserving
// first-seen order.
func unionAliases(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	var result []string
	for _, alias := range append(append([]string{}, a...), b...) {
		if _, ok := seen[alias]; ok {
			continue
		}
		seen[alias] = struct{}{}
		result = append(result, alias)
	}
	return result
}

func capEntities(entities []Entity) []Entity {
	if len(entities) > maxEntities {
		return entities[:maxEntities]
	}
	return entities
}
