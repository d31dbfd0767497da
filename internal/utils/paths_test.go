package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasHiddenSegment(t *testing.T) {
	assert.False(t, HasHiddenSegment("/repo/src/main.go"))
	assert.False(t, HasHiddenSegment("relative/path/file.txt"))
	assert.True(t, HasHiddenSegment("/repo/.git/HEAD"))
	assert.True(t, HasHiddenSegment("/repo/.idea/workspace.xml"))
	assert.True(t, HasHiddenSegment("/repo/src/.env"))
	assert.True(t, HasHiddenSegment(".hidden/file.txt"))

	// Parent references are not hidden segments
	assert.False(t, HasHiddenSegment("../src/main.go"))

	// A bare dot segment is stripped by Clean
	assert.False(t, HasHiddenSegment("./src/main.go"))
}

func TestDedupeStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, DedupeStrings([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, DedupeStrings(nil))
}

func TestRemoveString(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, RemoveString([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, []string{"a", "c"}, RemoveString([]string{"a", "c"}, "missing"))
}

func TestTruncateList(t *testing.T) {
	full := []string{"a", "b", "c", "d"}

	kept, cut := TruncateList(full, 2)
	assert.Equal(t, []string{"a", "b"}, kept)
	assert.Equal(t, 2, cut)

	kept, cut = TruncateList(full, 10)
	assert.Equal(t, full, kept)
	assert.Zero(t, cut)

	kept, cut = TruncateList(full, 0)
	assert.Equal(t, full, kept)
	assert.Zero(t, cut)
}
