package domain

import "time"

// Reason explains how a classification decision was reached
type Reason string

const (
	ReasonExcluded  Reason = "excluded"
	ReasonExpired   Reason = "expired"
	ReasonExtension Reason = "extension"
	ReasonUnmatched Reason = "unmatched"
)

// Decision is the outcome of classifying one file. An empty Category means
// the file is skipped.
type Decision struct {
	Category Category
	Reason   Reason
}

// Skip reports whether the file should stay where it is
func (d Decision) Skip() bool {
	return d.Category == ""
}

// Classify decides where a file belongs. Exclusion is checked first, then
// age: a file not accessed within the retention window is archived even if
// its extension maps to a category. Remaining files are routed by extension
// in TypeCategories order; anything unmatched is skipped.
func Classify(file FileRecord, rules RuleSet, now time.Time) Decision {
	if rules.ExcludedExtensions.Contains(file.Extension) {
		return Decision{Reason: ReasonExcluded}
	}

	if file.AgeDays(now) >= rules.RetentionDays {
		return Decision{Category: CategoryArchives, Reason: ReasonExpired}
	}

	for _, c := range TypeCategories {
		if rules.CategoryExtensions[c].Contains(file.Extension) {
			return Decision{Category: c, Reason: ReasonExtension}
		}
	}

	return Decision{Reason: ReasonUnmatched}
}
