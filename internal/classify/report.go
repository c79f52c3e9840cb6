package classify

import (
	"fmt"
	"strings"
)

// categoryLabels are the human-readable report headings, indexed by category.
var categoryLabels = map[Category]string{
	CategorySecurity:     "Security",
	CategoryFeatures:     "Features",
	CategoryFixes:        "Fixes",
	CategoryRefactors:    "Refactors",
	CategoryPerformance:  "Performance",
	CategoryComponents:   "Components",
	CategoryDependencies: "Dependencies",
	CategoryScripts:      "Scripts",
}

// Label returns the report heading for a category.
func Label(c Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// FormatReport renders a deterministic plain-text summary of an analysis:
// one line per non-empty category in fixed category order, then the line
// counts. Categories without matches are omitted.
func FormatReport(a Analysis) string {
	var b strings.Builder
	for _, c := range Categories() {
		kws := a.Keywords[c]
		if len(kws) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", Label(c), strings.Join(kws, ", "))
	}
	fmt.Fprintf(&b, "Lines added: %d\n", a.LinesAdded)
	fmt.Fprintf(&b, "Lines removed: %d\n", a.LinesRemoved)
	return b.String()
}
