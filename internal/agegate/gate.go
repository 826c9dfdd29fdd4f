package agegate

import (
	"log/slog"
	"time"

	"github.com/litlifesoftware/lit-ui-kit/internal/config"
)

// OutcomeKind classifies the result of a submission attempt.
type OutcomeKind int

const (
	// OutcomeSuccess means the selected birth date met the requirement.
	OutcomeSuccess OutcomeKind = iota

	// OutcomeRejectedInvalidAge means no date was selected or the computed
	// age fell short of the requirement. The gate state is unchanged.
	OutcomeRejectedInvalidAge
)

// Outcome is the explicit result of Gate.Submit. Hosts decide how to
// surface a rejection (dialog, banner, notification); the gate does not
// bake in a presentation mechanism.
type Outcome struct {
	Kind   OutcomeKind
	Result Result
}

// Gate holds the transient per-screen validation state: the selected birth
// date (unset until the user picks one) and the immutable minimum-age
// requirement supplied at creation.
//
// The gate is re-enterable: SetDate may be invoked any number of times and
// always recomputes validity from scratch. There is no terminal state.
type Gate struct {
	// Clock supplies "now" for age derivation. Defaults to RealClock.
	Clock Clock

	// OnValidSubmit is invoked by Submit when the selection is valid.
	OnValidSubmit func()

	// OnInvalidSubmit is invoked by Submit when the selection is missing
	// or below the requirement. It receives the rejected result so hosts
	// can word their warning.
	OnInvalidSubmit func(Result)

	requirement int
	birth       time.Time // zero value = no date selected
}

// NewGate creates a submission gate for the given minimum-age requirement.
// A non-positive requirement falls back to config.DefaultMinimumAge.
func NewGate(requirement int) *Gate {
	if requirement <= 0 {
		requirement = config.DefaultMinimumAge
	}
	return &Gate{
		Clock:       RealClock{},
		requirement: requirement,
	}
}

// Requirement returns the minimum age in whole years.
func (g *Gate) Requirement() int {
	return g.requirement
}

// BirthDate returns the selected date and whether one has been set.
func (g *Gate) BirthDate() (time.Time, bool) {
	return g.birth, !g.birth.IsZero()
}

// SetDate records the confirmed birth date and returns the freshly derived
// result. It is the inbound hook for an external date-picker collaborator.
func (g *Gate) SetDate(d time.Time) Result {
	g.birth = d
	res := g.Result()

	slog.Debug(config.MsgDateSet,
		config.LogKeyComponent, config.CompAgeGate,
		config.LogKeyDOB, d.Format(config.DateFormatDisplay),
		config.LogKeyAge, res.AgeYears,
		config.LogKeyValid, res.Valid,
	)
	return res
}

// Clear resets the gate to the no-date-selected state. Screens call this on
// re-entry; the birth date is session state and is never persisted.
func (g *Gate) Clear() {
	g.birth = time.Time{}
	slog.Debug(config.MsgDateCleared, config.LogKeyComponent, config.CompAgeGate)
}

// Result derives the current validation state. AgeYears is 0 whenever no
// date is selected, and Valid always equals AgeYears >= requirement.
func (g *Gate) Result() Result {
	age := AgeYears(g.birth, g.now())
	return Result{
		AgeYears: age,
		Valid:    IsValid(age, g.requirement),
	}
}

// Submit attempts to pass the gate. While valid it fires OnValidSubmit;
// otherwise it fires OnInvalidSubmit and leaves the state untouched. The
// explicit Outcome is returned either way so callback-less hosts can branch
// on it directly.
func (g *Gate) Submit() Outcome {
	res := g.Result()

	if !res.Valid {
		slog.Info(config.MsgSubmitDenied,
			config.LogKeyComponent, config.CompAgeGate,
			config.LogKeyAge, res.AgeYears,
			config.LogKeyMinAge, g.requirement,
		)
		if g.OnInvalidSubmit != nil {
			g.OnInvalidSubmit(res)
		}
		return Outcome{Kind: OutcomeRejectedInvalidAge, Result: res}
	}

	slog.Info(config.MsgSubmitOK,
		config.LogKeyComponent, config.CompAgeGate,
		config.LogKeyAge, res.AgeYears,
		config.LogKeyMinAge, g.requirement,
	)
	if g.OnValidSubmit != nil {
		g.OnValidSubmit()
	}
	return Outcome{Kind: OutcomeSuccess, Result: res}
}

func (g *Gate) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock.Now()
}
