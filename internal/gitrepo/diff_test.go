package gitrepo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoFileDiff = `diff --git a/main.go b/main.go
--- a/main.go
+++ b/main.go
@@ -1,3 +1,4 @@
+import "fmt"
diff --git a/util.go b/util.go
--- a/util.go
+++ b/util.go
@@ -5,3 +5,4 @@
+func helper() {}
`

func TestSplitDiffTwoFiles(t *testing.T) {
	chunks := SplitDiff(twoFileDiff)
	require.Len(t, chunks, 2)
	assert.True(t, strings.HasPrefix(chunks[0], "diff --git a/main.go"))
	assert.True(t, strings.HasPrefix(chunks[1], "diff --git a/util.go"))
	assert.Contains(t, chunks[0], `+import "fmt"`)
	assert.Contains(t, chunks[1], "+func helper() {}")
	assert.NotContains(t, chunks[0], "util.go")
}

func TestSplitDiffDropsPreamble(t *testing.T) {
	diff := "warning: something odd\n" + twoFileDiff
	chunks := SplitDiff(diff)
	require.Len(t, chunks, 2)
	assert.True(t, strings.HasPrefix(chunks[0], diffHeader))
	assert.NotContains(t, chunks[0], "warning:")
}

func TestSplitDiffPreservesTrailingChunk(t *testing.T) {
	diff := `diff --git a/only.go b/only.go
--- a/only.go
+++ b/only.go
@@ -1 +1,2 @@
+last line`
	chunks := SplitDiff(diff)
	require.Len(t, chunks, 1)
	assert.True(t, strings.HasSuffix(chunks[0], "+last line"))
}

func TestSplitDiffEmpty(t *testing.T) {
	assert.Empty(t, SplitDiff(""))
	assert.Empty(t, SplitDiff("no headers here\njust text\n"))
}

func TestBaseCandidateOrder(t *testing.T) {
	// The fallback contract: main is always tried before master.
	require.Equal(t, []string{"main", "master"}, BaseCandidates)
}
