package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"APPLIED", "Applied"},
		{"PENDING_VERIFICATION", "Pending Verification"},
		{"ASSESSMENT_IN_PROGRESS", "Assessment In Progress"},
		{"MCQ", "Mcq"},
		{"PRACTICAL_UPLOAD", "Practical Upload"},
		{"SOME_NEW_STATUS", "Some New Status"}, // not in the table, falls back
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.in))
		})
	}
}

func TestLabelSecondPassSplitsOnSpaces(t *testing.T) {
	// Re-formatting a label is a no-op only because the first pass
	// removed the underscores; the words are already title-cased.
	first := Label("AGREEMENT_SIGNED")
	assert.Equal(t, "Agreement Signed", first)
	assert.Equal(t, "Agreement signed", Label(first))
}

func TestStateKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PENDING_VERIFICATION", "pending-verification"},
		{"ACTIVE", "active"},
		{"ASSESSMENT_IN_PROGRESS", "assessment-in-progress"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StateKey(tt.in))
		// Pure: same input, same output.
		assert.Equal(t, StateKey(tt.in), StateKey(tt.in))
		assert.NotContains(t, StateKey(tt.in), "_")
	}
}

func TestProgressOrderIsMonotonic(t *testing.T) {
	for i := 1; i < len(ApplicationProgress); i++ {
		prev, cur := ApplicationProgress[i-1], ApplicationProgress[i]
		assert.Less(t, ProgressIndex(prev), ProgressIndex(cur),
			"%s must order before %s", prev, cur)
	}
}

func TestProgressIndexTerminalAndUnknown(t *testing.T) {
	assert.Equal(t, -1, ProgressIndex(ApplicationRejected))
	assert.Equal(t, -1, ProgressIndex(ApplicationCancelled))
	assert.Equal(t, -1, ProgressIndex(ApplicationStatus("WHATEVER")))
}

func TestHasReached(t *testing.T) {
	// Reflexive on the ordered subset.
	for _, s := range ApplicationProgress {
		assert.True(t, HasReached(s, s), "hasReached(%s, %s)", s, s)
	}

	// Forward progress.
	assert.True(t, HasReached(PendingVerification, Eligible))
	assert.True(t, HasReached(ApplicationActive, Applied))
	assert.False(t, HasReached(Eligible, ApplicationActive))

	// Terminal statuses reach nothing but themselves.
	assert.False(t, HasReached(ApplicationRejected, Applied))
	assert.False(t, HasReached(ApplicationCancelled, ApplicationCompleted))
	assert.True(t, HasReached(ApplicationRejected, ApplicationRejected))
}
