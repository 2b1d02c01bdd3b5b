package recipe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeExcludesDeduplicatesInFirstSeenOrder(t *testing.T) {
	persisted := []string{"A", "B", "C"}
	recent := []string{"B", "D", "A", "E"}

	merged := MergeExcludes(persisted, recent)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, merged)
}

func TestMergeExcludesSkipsEmptyTitles(t *testing.T) {
	merged := MergeExcludes([]string{"", "A"}, []string{"", "B"})
	assert.Equal(t, []string{"A", "B"}, merged)
}

func TestMergeExcludesCapsAtLimit(t *testing.T) {
	persisted := make([]string, maxExcludedTitles)
	for i := range persisted {
		persisted[i] = fmt.Sprintf("recipe-%d", i)
	}

	merged := MergeExcludes(persisted, []string{"overflow"})
	assert.Len(t, merged, maxExcludedTitles)
	assert.NotContains(t, merged, "overflow")
}

func TestMergeExcludesEmptyInputs(t *testing.T) {
	assert.Empty(t, MergeExcludes(nil, nil))
}
