package classify

import "strings"

// Scan classifies a unified diff against a keyword table. It is a pure,
// single-pass transformation: any input, including empty or binary-looking
// text, yields a well-defined Analysis and there are no error conditions.
//
// Lines starting with "+" or "-" are counted as additions or removals,
// excluding the "+++" and "---" file headers. Every keyword is searched
// case-insensitively over the whole diff; underscores and hyphens in the
// diff count as spaces so multi-word keywords like "password hash" match
// identifiers like password_hash.
func Scan(diffText string, table KeywordTable) Analysis {
	a := Analysis{Keywords: make(map[Category][]string, len(table))}

	for _, line := range strings.Split(diffText, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			a.LinesAdded++
		case strings.HasPrefix(line, "-"):
			a.LinesRemoved++
		}
	}

	lower := strings.ToLower(diffText)
	folded := strings.NewReplacer("_", " ", "-", " ").Replace(lower)

	for _, ck := range table {
		seen := make(map[string]bool, len(ck.Keywords))
		for _, kw := range ck.Keywords {
			needle := strings.ToLower(kw)
			if needle == "" || seen[kw] {
				continue
			}
			if strings.Contains(lower, needle) || strings.Contains(folded, needle) {
				seen[kw] = true
				a.Keywords[ck.Category] = append(a.Keywords[ck.Category], kw)
			}
		}
	}

	a.Files = scanFiles(diffText)
	return a
}
