package classify

import (
	"path"
	"strings"
)

// scanFiles derives FileFacts from the "+++ b/" headers of a diff.
func scanFiles(diffText string) FileFacts {
	var facts FileFacts
	seen := make(map[string]bool)
	for _, line := range strings.Split(diffText, "\n") {
		if !strings.HasPrefix(line, "+++ b/") {
			continue
		}
		f := strings.TrimPrefix(line, "+++ b/")
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		facts.Files = append(facts.Files, f)
		classifyFile(f, &facts)
	}
	facts.CommonDir = commonDir(facts.Files)
	return facts
}

func classifyFile(f string, facts *FileFacts) {
	lower := strings.ToLower(f)
	switch {
	case hasAnySuffix(lower, ".md", ".txt", ".rst", ".adoc"):
		facts.HasDocs = true
	case strings.Contains(path.Base(lower), "test"), strings.Contains(path.Base(lower), "spec"):
		facts.HasTests = true
	case hasAnySuffix(lower, ".css", ".scss", ".less", ".sass"):
		facts.HasStyles = true
	}

	parts := strings.Split(f, "/")
	for i, p := range parts {
		if (p == "components" || p == "modules") && i+1 < len(parts) {
			comp := parts[i+1]
			if i+1 == len(parts)-1 {
				comp = strings.TrimSuffix(comp, path.Ext(comp))
			}
			if comp != "" && !containsString(facts.Components, comp) {
				facts.Components = append(facts.Components, comp)
			}
			break
		}
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// commonDir returns the top-level directory shared by all files, or "" when
// files live at the root or span multiple top-level directories.
func commonDir(files []string) string {
	common := ""
	for _, f := range files {
		idx := strings.Index(f, "/")
		if idx < 0 {
			return ""
		}
		top := f[:idx]
		if common == "" {
			common = top
		} else if common != top {
			return ""
		}
	}
	return common
}
