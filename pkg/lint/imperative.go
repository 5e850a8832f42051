package lint

// nonImperativeForms is the closed lookup table for the imperative-mood
// heuristic: first words of titles that are past-tense, gerund, or
// third-person forms of verbs commonly seen in commit titles. The table is
// deliberately closed; suffix guessing would misfire on words like
// "address" or "string".
var nonImperativeForms = map[string]string{
	// Past tense.
	"added":       "past tense",
	"adjusted":    "past tense",
	"bumped":      "past tense",
	"changed":     "past tense",
	"cleaned":     "past tense",
	"corrected":   "past tense",
	"created":     "past tense",
	"deleted":     "past tense",
	"disabled":    "past tense",
	"documented":  "past tense",
	"enabled":     "past tense",
	"fixed":       "past tense",
	"implemented": "past tense",
	"improved":    "past tense",
	"introduced":  "past tense",
	"merged":      "past tense",
	"moved":       "past tense",
	"refactored":  "past tense",
	"released":    "past tense",
	"removed":     "past tense",
	"renamed":     "past tense",
	"replaced":    "past tense",
	"resolved":    "past tense",
	"reverted":    "past tense",
	"updated":     "past tense",
	"upgraded":    "past tense",
	"used":        "past tense",

	// Gerund.
	"adding":       "a gerund",
	"adjusting":    "a gerund",
	"bumping":      "a gerund",
	"changing":     "a gerund",
	"cleaning":     "a gerund",
	"correcting":   "a gerund",
	"creating":     "a gerund",
	"deleting":     "a gerund",
	"disabling":    "a gerund",
	"documenting":  "a gerund",
	"enabling":     "a gerund",
	"fixing":       "a gerund",
	"implementing": "a gerund",
	"improving":    "a gerund",
	"introducing":  "a gerund",
	"merging":      "a gerund",
	"moving":       "a gerund",
	"refactoring":  "a gerund",
	"releasing":    "a gerund",
	"removing":     "a gerund",
	"renaming":     "a gerund",
	"replacing":    "a gerund",
	"resolving":    "a gerund",
	"reverting":    "a gerund",
	"updating":     "a gerund",
	"upgrading":    "a gerund",
	"using":        "a gerund",

	// Third person.
	"adds":       "third person",
	"adjusts":    "third person",
	"bumps":      "third person",
	"changes":    "third person",
	"cleans":     "third person",
	"corrects":   "third person",
	"creates":    "third person",
	"deletes":    "third person",
	"disables":   "third person",
	"documents":  "third person",
	"enables":    "third person",
	"fixes":      "third person",
	"implements": "third person",
	"improves":   "third person",
	"introduces": "third person",
	"merges":     "third person",
	"moves":      "third person",
	"refactors":  "third person",
	"releases":   "third person",
	"removes":    "third person",
	"renames":    "third person",
	"replaces":   "third person",
	"resolves":   "third person",
	"reverts":    "third person",
	"updates":    "third person",
	"upgrades":   "third person",
	"uses":       "third person",
}
