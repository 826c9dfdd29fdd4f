package agegate_test

import (
	"testing"
	"time"

	"github.com/litlifesoftware/lit-ui-kit/internal/agegate"
	"github.com/litlifesoftware/lit-ui-kit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// fixedNow is the reference "today" for the gate scenarios: June 15th, 2025.
var fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestGate(requirement int) *agegate.Gate {
	g := agegate.NewGate(requirement)
	g.Clock = MockClock{CurrentTime: fixedNow}
	return g
}

func TestGate_Defaults(t *testing.T) {
	g := agegate.NewGate(0)
	assert.Equal(t, config.DefaultMinimumAge, g.Requirement(),
		"Non-positive requirement must fall back to the default")

	_, set := g.BirthDate()
	assert.False(t, set, "A fresh gate has no date selected")

	res := g.Result()
	assert.Equal(t, 0, res.AgeYears)
	assert.False(t, res.Valid)
}

// TestGate_Submit_Valid covers the scenario: requirement 13, born exactly 13
// years ago. Submit must fire the success callback and nothing else.
func TestGate_Submit_Valid(t *testing.T) {
	g := newTestGate(13)

	validCalls := 0
	invalidCalls := 0
	g.OnValidSubmit = func() { validCalls++ }
	g.OnInvalidSubmit = func(agegate.Result) { invalidCalls++ }

	res := g.SetDate(time.Date(2012, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 13, res.AgeYears)
	assert.True(t, res.Valid)

	out := g.Submit()
	assert.Equal(t, agegate.OutcomeSuccess, out.Kind)
	assert.Equal(t, res, out.Result)
	assert.Equal(t, 1, validCalls)
	assert.Equal(t, 0, invalidCalls, "Success must never trigger the warning path")
}

// TestGate_Submit_Underage covers: requirement 13, born 10 years ago.
// Submit must fire the warning callback and never the success one.
func TestGate_Submit_Underage(t *testing.T) {
	g := newTestGate(13)

	validCalls := 0
	var rejected agegate.Result
	g.OnValidSubmit = func() { validCalls++ }
	g.OnInvalidSubmit = func(r agegate.Result) { rejected = r }

	res := g.SetDate(time.Date(2015, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 10, res.AgeYears)
	assert.False(t, res.Valid)

	out := g.Submit()
	assert.Equal(t, agegate.OutcomeRejectedInvalidAge, out.Kind)
	assert.Equal(t, 0, validCalls, "Success callback must never fire while invalid")
	assert.Equal(t, 10, rejected.AgeYears, "Warning callback receives the rejected result")

	// Rejection performs no state change: the date is still selected.
	d, set := g.BirthDate()
	require.True(t, set)
	assert.Equal(t, 2015, d.Year())
}

// TestGate_Submit_NoDate covers: no birth date set, submit attempted.
func TestGate_Submit_NoDate(t *testing.T) {
	g := newTestGate(13)

	invalidCalls := 0
	g.OnInvalidSubmit = func(r agegate.Result) {
		invalidCalls++
		assert.Equal(t, 0, r.AgeYears)
		assert.False(t, r.Valid)
	}

	out := g.Submit()
	assert.Equal(t, agegate.OutcomeRejectedInvalidAge, out.Kind)
	assert.Equal(t, 1, invalidCalls)
}

// TestGate_Submit_NilCallbacks ensures the outcome alone is enough: hosts
// that branch on the return value may leave both callbacks unset.
func TestGate_Submit_NilCallbacks(t *testing.T) {
	g := newTestGate(13)

	assert.NotPanics(t, func() {
		out := g.Submit()
		assert.Equal(t, agegate.OutcomeRejectedInvalidAge, out.Kind)
	})

	g.SetDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.NotPanics(t, func() {
		out := g.Submit()
		assert.Equal(t, agegate.OutcomeSuccess, out.Kind)
	})
}

// TestGate_SetDate_Idempotent verifies that setting the same date twice
// yields the same result both times, with no memoized stale validity.
func TestGate_SetDate_Idempotent(t *testing.T) {
	g := newTestGate(13)
	d := time.Date(2010, 3, 3, 0, 0, 0, 0, time.UTC)

	first := g.SetDate(d)
	second := g.SetDate(d)
	assert.Equal(t, first, second)
}

// TestGate_Reenterable verifies the transition table: any state accepts a
// new date and recomputes validity from scratch.
func TestGate_Reenterable(t *testing.T) {
	g := newTestGate(13)

	res := g.SetDate(time.Date(2015, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.False(t, res.Valid, "10 years old")

	res = g.SetDate(time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.True(t, res.Valid, "25 years old")

	res = g.SetDate(time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.False(t, res.Valid, "Back to invalid; no hysteresis")
}

// TestGate_Clear models screen re-entry: the transient date is dropped and
// the gate returns to the no-date-selected state.
func TestGate_Clear(t *testing.T) {
	g := newTestGate(13)
	g.SetDate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

	g.Clear()

	_, set := g.BirthDate()
	assert.False(t, set)

	res := g.Result()
	assert.Equal(t, 0, res.AgeYears)
	assert.False(t, res.Valid)
}

// TestGate_ResultInvariant spot-checks the derived-state invariant across
// requirements: Valid always equals AgeYears >= requirement.
func TestGate_ResultInvariant(t *testing.T) {
	for _, req := range []int{1, 13, 18, 21, 99} {
		g := newTestGate(req)
		g.SetDate(time.Date(2007, 6, 15, 0, 0, 0, 0, time.UTC)) // 18 years old

		res := g.Result()
		assert.Equal(t, res.AgeYears >= req, res.Valid, "requirement %d", req)
	}
}
