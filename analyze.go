package realtype

import (
	"iter"
	"slices"

	"github.com/bearlytools/realtype/internal/shallow"
)

// ShallowOf returns the coarse type of v. Unlike Classify, it does not tell
// arrays from maps or boxed values from the values they hold.
func ShallowOf(v any) ShallowType {
	return shallow.Of(v, shallowCatalog)
}

// ClassifyAll classifies each value using Default.
func ClassifyAll(values []any) []Tag {
	return Default.ClassifyAll(values)
}

// AllSameShallowType reports if every value has the same ShallowType using Default.
func AllSameShallowType(values []any) bool {
	return Default.AllSameShallowType(values)
}

// AllUniqueTypes reports if no two values share a Tag using Default.
func AllUniqueTypes(values []any) bool {
	return Default.AllUniqueTypes(values)
}

// CountByType counts the values per Tag using Default.
func CountByType(values []any) []TypeCount {
	return Default.CountByType(values)
}

// Tags classifies the values yielded by seq using Default.
func Tags(seq iter.Seq[any]) iter.Seq[Tag] {
	return Default.Tags(seq)
}

// ClassifyAll returns the Tag of each value, in the same order. The result
// always has len(values) entries.
func (c *Classifier) ClassifyAll(values []any) []Tag {
	tags := make([]Tag, len(values))
	for i, v := range values {
		tags[i] = c.Classify(v)
	}
	return tags
}

// Tags is the lazy form of ClassifyAll.
func (c *Classifier) Tags(seq iter.Seq[any]) iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for v := range seq {
			if !yield(c.Classify(v)) {
				return
			}
		}
	}
}

// AllSameShallowType reports if all values share exactly one ShallowType.
// An empty list has no type at all and is reported as false.
// This is the coarse check, []any{} and map[string]any{} are the same here.
// The Classifier's catalog does not change ShallowTypes.
func (c *Classifier) AllSameShallowType(values []any) bool {
	seen := make(map[ShallowType]struct{}, 1)
	for _, v := range values {
		seen[ShallowOf(v)] = struct{}{}
		if len(seen) > 1 {
			return false
		}
	}
	return len(seen) == 1
}

// AllUniqueTypes reports if the number of distinct Tags equals the number of
// values. An empty list is unique.
func (c *Classifier) AllUniqueTypes(values []any) bool {
	seen := make(map[Tag]struct{}, len(values))
	for _, v := range values {
		t := c.Classify(v)
		if _, ok := seen[t]; ok {
			return false
		}
		seen[t] = struct{}{}
	}
	return true
}

// CountByType returns how many values have each Tag, sorted by Tag in
// ascending byte order. Tags that were not seen have no entry, so an empty
// list gives an empty result. The counts add up to len(values).
func (c *Classifier) CountByType(values []any) []TypeCount {
	tags := c.ClassifyAll(values)
	slices.Sort(tags)

	counts := make([]TypeCount, 0, len(tags))
	for _, t := range tags {
		if n := len(counts); n > 0 && counts[n-1].Tag == t {
			counts[n-1].Count++
			continue
		}
		counts = append(counts, TypeCount{Tag: t, Count: 1})
	}
	return counts
}
