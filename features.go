package viceverser

import (
	"slices"
	"strings"
)

// catchAll is the feature name collecting flags missing from the lookup.
const catchAll = "is"

// Separators describes how a FeatureSet is serialized. The defaults follow the
// Universal Dependencies FEATS convention used by spaCy: "Number=Plur|Tense=Pres".
type Separators struct {
	Field   string // between name and values
	Value   string // between values of one feature
	Feature string // between features
}

// DefaultSeparators are "=", "," and "|".
var DefaultSeparators = Separators{Field: "=", Value: ",", Feature: "|"}

// Feature is one feature name with its sorted values.
type Feature struct {
	Name   string
	Values []string
}

// FeatureSet is a morphological feature set, sorted by feature name, each
// value list sorted and without duplicates. The zero value is empty.
// Two sets with equal content always serialize identically.
type FeatureSet struct {
	feats []Feature
}

// FeatureLookup maps an inflection tag (the part after "is:") to the
// features it stands for, e.g. "pl" → {"Number": "Plur"}.
type FeatureLookup map[string]map[string]string

// NormalizeFeatures converts raw analyzer flags ("is:pl", "is:ipre") into a
// FeatureSet. Tags found in lookup contribute all their features; the others
// are collected verbatim under "is". Flags without the "is:" prefix are ignored.
func NormalizeFeatures(flags []string, lookup FeatureLookup) FeatureSet {
	acc := make(map[string][]string)
	for _, f := range flags {
		tag, ok := strings.CutPrefix(f, "is:")
		if !ok {
			continue
		}
		if feats, ok := lookup[tag]; ok {
			for name, value := range feats {
				acc[name] = append(acc[name], value)
			}
			continue
		}
		acc[catchAll] = append(acc[catchAll], tag)
	}
	return newFeatureSet(acc)
}

// newFeatureSet sorts and deduplicates acc into a FeatureSet.
func newFeatureSet(acc map[string][]string) FeatureSet {
	var fs FeatureSet
	for name, values := range acc {
		if len(values) == 0 {
			continue
		}
		values = slices.Clone(values)
		slices.Sort(values)
		fs.feats = append(fs.feats, Feature{Name: name, Values: slices.Compact(values)})
	}
	slices.SortFunc(fs.feats, func(a, b Feature) int {
		return strings.Compare(a.Name, b.Name)
	})
	return fs
}

// Merge returns the union of fs and others. Values of a feature present in
// several sets are merged.
func (fs FeatureSet) Merge(others ...FeatureSet) FeatureSet {
	acc := make(map[string][]string)
	for _, set := range append([]FeatureSet{fs}, others...) {
		for _, f := range set.feats {
			acc[f.Name] = append(acc[f.Name], f.Values...)
		}
	}
	return newFeatureSet(acc)
}

// Empty reports whether fs holds no feature.
func (fs FeatureSet) Empty() bool {
	return len(fs.feats) == 0
}

// Len returns the number of features.
func (fs FeatureSet) Len() int {
	return len(fs.feats)
}

// Get returns the values of feature name.
func (fs FeatureSet) Get(name string) []string {
	for _, f := range fs.feats {
		if f.Name == name {
			return slices.Clone(f.Values)
		}
	}
	return nil
}

// Features returns a copy of the features in name order.
func (fs FeatureSet) Features() []Feature {
	out := make([]Feature, len(fs.feats))
	for i, f := range fs.feats {
		out[i] = Feature{Name: f.Name, Values: slices.Clone(f.Values)}
	}
	return out
}

// Format serializes fs with the given separators.
func (fs FeatureSet) Format(sep Separators) string {
	var b strings.Builder
	for i, f := range fs.feats {
		if i > 0 {
			b.WriteString(sep.Feature)
		}
		b.WriteString(f.Name)
		b.WriteString(sep.Field)
		b.WriteString(strings.Join(f.Values, sep.Value))
	}
	return b.String()
}

// String serializes fs with DefaultSeparators.
func (fs FeatureSet) String() string {
	return fs.Format(DefaultSeparators)
}

// Equal reports whether fs and other hold the same features.
func (fs FeatureSet) Equal(other FeatureSet) bool {
	return slices.EqualFunc(fs.feats, other.feats, func(a, b Feature) bool {
		return a.Name == b.Name && slices.Equal(a.Values, b.Values)
	})
}
