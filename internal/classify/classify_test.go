package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_EmptyDiff(t *testing.T) {
	a := Scan("", DefaultTable())

	assert.Equal(t, 0, a.LinesAdded)
	assert.Equal(t, 0, a.LinesRemoved)
	assert.Empty(t, a.Keywords)
	assert.Empty(t, a.Files.Files)

	msg := Suggest(a)
	assert.Equal(t, "chore: update files", msg.String())
}

func TestScan_Deterministic(t *testing.T) {
	diff := "+++ b/auth/login.go\n+add auth token check\n-old password logic\n"
	table := DefaultTable()

	first := Scan(diff, table)
	second := Scan(diff, table)

	assert.Equal(t, first, second)
	assert.Equal(t, Suggest(first).String(), Suggest(second).String())
}

func TestScan_LineCounts(t *testing.T) {
	diff := strings.Join([]string{
		"diff --git a/main.go b/main.go",
		"--- a/main.go",
		"+++ b/main.go",
		"@@ -1,3 +1,4 @@",
		"+line one",
		"+line two",
		"-line gone",
		" context line",
		"+line three",
	}, "\n")

	a := Scan(diff, DefaultTable())

	assert.Equal(t, 3, a.LinesAdded, "+++ header must not count as an addition")
	assert.Equal(t, 1, a.LinesRemoved, "--- header must not count as a removal")
}

func TestScan_CaseInsensitive(t *testing.T) {
	a := Scan("+CHECK AUTH BEFORE WRITE\n", DefaultTable())
	assert.Equal(t, []string{"auth"}, a.Matched(CategorySecurity))
}

func TestScan_NoDuplicates(t *testing.T) {
	diff := "+fix the fix for the earlier fix\n"
	table := KeywordTable{
		{CategoryFixes, []string{"fix", "fix", "bug"}},
	}

	a := Scan(diff, table)
	assert.Equal(t, []string{"fix"}, a.Matched(CategoryFixes))
}

func TestScan_CategoryOrderFollowsTable(t *testing.T) {
	diff := "+optimize the auth cache\n"
	a := Scan(diff, DefaultTable())

	require.NotEmpty(t, a.Matched(CategorySecurity))
	require.NotEmpty(t, a.Matched(CategoryPerformance))
	assert.Equal(t, []string{"optimiz", "cache"}, a.Matched(CategoryPerformance))
}

func TestScan_SecurityFeatureDiff(t *testing.T) {
	diff := "+    def login_with_2fa():\n+password_hash = bcrypt(...)\n"
	table := KeywordTable{
		{CategorySecurity, []string{"password hash"}},
		{CategoryFeatures, []string{"2fa"}},
	}

	a := Scan(diff, table)

	assert.Equal(t, []string{"password hash"}, a.Matched(CategorySecurity))
	assert.Equal(t, []string{"2fa"}, a.Matched(CategoryFeatures))
	assert.Equal(t, 2, a.LinesAdded)
	assert.Equal(t, 0, a.LinesRemoved)

	msg := Suggest(a)
	assert.Equal(t, TypeSecurity, msg.Type, "security outranks features")
	assert.Equal(t, "security: password hash", msg.String())
}

func TestScan_BinaryLookingInput(t *testing.T) {
	diff := "\x00\x01\xffGIT binary patch\n+\x00garbage\n"
	a := Scan(diff, DefaultTable())

	assert.Equal(t, 1, a.LinesAdded)
	assert.True(t, Suggest(a).Type.Valid())
}

func TestScan_NoMatches(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "+x := y + z")
	}
	a := Scan(strings.Join(lines, "\n")+"\n", DefaultTable())

	assert.Empty(t, a.Keywords)
	assert.Equal(t, 10, a.LinesAdded)
	assert.Equal(t, 0, a.LinesRemoved)
	assert.Equal(t, "chore: update files", Suggest(a).String())

	report := FormatReport(a)
	assert.Equal(t, "Lines added: 10\nLines removed: 0\n", report)
}
