package vocab

const (
	MinMastery = 0
	MaxMastery = 100

	// CorrectAnswerGain is added to mastery on a correct answer.
	CorrectAnswerGain = 10
	// WrongAnswerPenalty is subtracted from mastery on a wrong answer.
	WrongAnswerPenalty = 5
)

// NextMastery returns the mastery after a graded answer, saturating at both bounds.
func NextMastery(current int, correct bool) int {
	current = clampMastery(current)
	if correct {
		return min(MaxMastery, current+CorrectAnswerGain)
	}
	return max(MinMastery, current-WrongAnswerPenalty)
}

func clampMastery(mastery int) int {
	return min(MaxMastery, max(MinMastery, mastery))
}

// Tier buckets records by mastery.
type Tier string

const (
	TierMastered Tier = "mastered"
	TierLearning Tier = "learning"
	TierNew      Tier = "new"
)

const (
	masteredThreshold = 80
	learningThreshold = 30
)

// TierOf returns the tier of a mastery value.
func TierOf(mastery int) Tier {
	switch {
	case mastery >= masteredThreshold:
		return TierMastered
	case mastery >= learningThreshold:
		return TierLearning
	default:
		return TierNew
	}
}
