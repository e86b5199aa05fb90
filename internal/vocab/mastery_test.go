package vocab

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestNextMastery(t *testing.T) {
	tests := []struct {
		name    string
		current int
		correct bool
		want    int
	}{
		{name: "correct from zero", current: 0, correct: true, want: 10},
		{name: "correct saturates at max", current: 95, correct: true, want: 100},
		{name: "correct at max", current: 100, correct: true, want: 100},
		{name: "wrong from middle", current: 50, correct: false, want: 45},
		{name: "wrong saturates at min", current: 3, correct: false, want: 0},
		{name: "wrong at zero", current: 0, correct: false, want: 0},
		{name: "out of range is clamped first", current: 150, correct: false, want: 95},
		{name: "negative is clamped first", current: -20, correct: true, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextMastery(tt.current, tt.correct))
		})
	}
}

func TestNextMastery_Bounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("mastery stays within bounds after any answers", prop.ForAll(
		func(start int, answers []bool) bool {
			mastery := start
			for _, correct := range answers {
				mastery = NextMastery(mastery, correct)
				if mastery < MinMastery || mastery > MaxMastery {
					t.Logf("mastery out of bounds: %d", mastery)
					return false
				}
			}
			return true
		},
		gen.IntRange(MinMastery, MaxMastery),
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("a correct answer never lowers mastery", prop.ForAll(
		func(mastery int) bool {
			return NextMastery(mastery, true) >= mastery && NextMastery(mastery, false) <= mastery
		},
		gen.IntRange(MinMastery, MaxMastery),
	))

	properties.TestingRun(t)
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		mastery int
		want    Tier
	}{
		{mastery: 100, want: TierMastered},
		{mastery: 80, want: TierMastered},
		{mastery: 79, want: TierLearning},
		{mastery: 30, want: TierLearning},
		{mastery: 29, want: TierNew},
		{mastery: 0, want: TierNew},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, TierOf(tt.mastery))
		})
	}
}
