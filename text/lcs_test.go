package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTable(t *testing.T) {
	a := []string{"a", "b", "c", "b"}
	b := []string{"b", "c", "b", "a"}

	table := buildTable(len(a), len(b), func(i, j int) bool { return a[i] == b[j] })

	assert.Equal(t, 3, table.length(), "LCS length")
	assert.Equal(t, 0, table.at(0, 4), "empty original prefix")
	assert.Equal(t, 0, table.at(4, 0), "empty revised prefix")
	assert.Equal(t, 1, table.at(2, 1), "LCS of ab and b")
}

func TestPrefersRevised(t *testing.T) {
	a := []string{"x"}
	b := []string{"y"}
	table := buildTable(len(a), len(b), func(i, j int) bool { return a[i] == b[j] })

	assert.True(t, table.prefersRevised(1, 1), "tie goes to revised side")
	assert.False(t, table.prefersRevised(1, 0), "revised side exhausted")
	assert.True(t, table.prefersRevised(0, 1), "original side exhausted")

	a = []string{"y", "z"}
	b = []string{"x", "y"}
	table = buildTable(len(a), len(b), func(i, j int) bool { return a[i] == b[j] })
	// table[1][2] = 1 (y matched) beats table[2][1] = 0
	assert.False(t, table.prefersRevised(2, 2), "larger original-side neighbor wins")
}

func TestWordStep(t *testing.T) {
	tests := []struct {
		name             string
		revisedPreferred bool
		matched          bool
		expected         Step
	}{
		{"match wins over preference", true, true, StepMatch},
		{"match without preference", false, true, StepMatch},
		{"insert when revised preferred", true, false, StepInsert},
		{"delete otherwise", false, false, StepDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WordStep(tt.revisedPreferred, tt.matched))
		})
	}
}

func TestLineStep(t *testing.T) {
	tests := []struct {
		name             string
		revisedPreferred bool
		originalLeft     bool
		matched          bool
		related          bool
		expected         Step
	}{
		{"trimmed match", true, true, true, false, StepMatch},
		{"related pair with revised preferred", true, true, false, true, StepModify},
		{"related pair but original preferred", false, true, false, true, StepDelete},
		{"unrelated with revised preferred", true, true, false, false, StepInsert},
		{"original exhausted", true, false, false, true, StepInsert},
		{"unrelated with original preferred", false, true, false, false, StepDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineStep(tt.revisedPreferred, tt.originalLeft, tt.matched, tt.related)
			assert.Equal(t, tt.expected, got, "step %s", got)
		})
	}
}
