// internal/engine/classify.go
// Package engine classifies, validates, and groups the metrics of a
// robustness-evaluation sweep and assembles the report model consumed by the
// renderers. It is a pure, single-threaded transformation over the parsed
// input document.
package engine

import "strings"

const (
	// frameworkSuffix marks internal framework metrics. The check is
	// case-sensitive: framework metrics follow one canonical convention.
	frameworkSuffix = "_"
	// cleanPrefix marks metrics computed on unperturbed input. The match is
	// case-insensitive; the remainder keeps its original casing.
	cleanPrefix = "clean_"
)

// Category says whether a metric is user-facing or framework bookkeeping.
type Category int

const (
	CategoryUser Category = iota
	CategoryFramework
)

func (c Category) String() string {
	if c == CategoryFramework {
		return "framework"
	}
	return "user"
}

// Classification is the tagged result of classifying one metric name. It is
// computed once per name and carried through grouping so the string
// predicates are never re-derived at the use sites.
type Classification struct {
	Category       Category
	CleanReference bool
	// BaseKey is the display name with both markers stripped.
	BaseKey string
}

// Classify derives a metric name's classification from naming convention
// alone. It never fails: unknown shapes come back as user, non-clean.
func Classify(name string) Classification {
	c := Classification{Category: CategoryUser}

	if strings.HasSuffix(name, frameworkSuffix) && len(name) > len(frameworkSuffix) {
		c.Category = CategoryFramework
	}

	base := name
	if hasCleanPrefix(name) {
		c.CleanReference = true
		base = name[len(cleanPrefix):]
	}
	if c.Category == CategoryFramework {
		base = strings.TrimSuffix(base, frameworkSuffix)
	}
	c.BaseKey = base
	return c
}

func hasCleanPrefix(name string) bool {
	return len(name) > len(cleanPrefix) &&
		strings.EqualFold(name[:len(cleanPrefix)], cleanPrefix)
}

// groupKey is the bucket identity for a metric name: the clean-prefix-
// stripped name, lowercased. The framework suffix stays in place, so a user
// metric and a framework metric only share a group through a clean-reference
// link, never just because their stripped names coincide.
func groupKey(name string) string {
	if hasCleanPrefix(name) {
		name = name[len(cleanPrefix):]
	}
	return strings.ToLower(name)
}
