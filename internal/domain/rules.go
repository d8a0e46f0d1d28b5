package domain

import (
	"fmt"
	"slices"
	"sort"
)

// Category is a destination bucket a file can be routed to
type Category string

const (
	CategoryDocuments Category = "documents"
	CategoryImages    Category = "images"
	CategoryVideos    Category = "videos"
	CategoryArchives  Category = "archives"
)

// TypeCategories is the fixed order in which extension routing is evaluated.
// The first category whose extension set contains the file's extension wins.
var TypeCategories = []Category{CategoryDocuments, CategoryImages, CategoryVideos}

// AllCategories lists every category a rule set may route to
var AllCategories = append(slices.Clone(TypeCategories), CategoryArchives)

// IsKnown reports whether c is one of the supported categories
func (c Category) IsKnown() bool {
	return slices.Contains(AllCategories, c)
}

func (c Category) String() string {
	return string(c)
}

// ExtensionSet is a set of file extensions. Extensions are case-sensitive
// and include the leading dot (".pdf").
type ExtensionSet map[string]struct{}

// NewExtensionSet builds a set from a list of extensions
func NewExtensionSet(exts ...string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, ext := range exts {
		set[ext] = struct{}{}
	}
	return set
}

// Contains reports whether ext is in the set
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s[ext]
	return ok
}

// Sorted returns the extensions in lexical order
func (s ExtensionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for ext := range s {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// RuleSet is the validated routing configuration for one cleanup run
type RuleSet struct {
	CategoryExtensions map[Category]ExtensionSet
	ExcludedExtensions ExtensionSet
	RetentionDays      int
	Destinations       map[Category]string
}

// Destination returns the directory files of category c are moved into
func (r RuleSet) Destination(c Category) (string, bool) {
	dir, ok := r.Destinations[c]
	return dir, ok && dir != ""
}

// DestinationDirs returns every destination directory in category order
func (r RuleSet) DestinationDirs() []string {
	dirs := make([]string, 0, len(r.Destinations))
	for _, c := range AllCategories {
		if dir, ok := r.Destination(c); ok {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// Check verifies the structural invariants of the rule set. Archives
// always needs a destination; other categories only once they list extensions.
func (r RuleSet) Check() error {
	if r.RetentionDays < 0 {
		return fmt.Errorf("retention days must be non-negative, got %d", r.RetentionDays)
	}
	if _, ok := r.Destination(CategoryArchives); !ok {
		return fmt.Errorf("missing destination for %s", CategoryArchives)
	}
	for c, exts := range r.CategoryExtensions {
		if !slices.Contains(TypeCategories, c) {
			return fmt.Errorf("unknown category: %s", c)
		}
		if len(exts) == 0 {
			continue
		}
		if _, ok := r.Destination(c); !ok {
			return fmt.Errorf("missing destination for %s", c)
		}
	}
	return nil
}
