package model

type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
)

const (
	MinOccurrences = 2
	MaxOccurrences = 12
)

// CyclicTask marks a task as a recurring template. Its existence is the
// sole signal that a task is cyclic; occurrences are materialized by an
// external scheduler, not here.
type CyclicTask struct {
	CyclicID         string    `bson:"_id,omitempty" json:"id"`
	TaskID           string    `bson:"task_id" json:"task_id"`
	Frequency        Frequency `bson:"frequency" json:"frequency"`
	OccurrencesCount int       `bson:"occurrences_count" json:"occurrences_count"`
}

func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly:
		return true
	}
	return false
}

// ClampOccurrences coerces any requested count into [2,12].
func ClampOccurrences(n int) int {
	if n < MinOccurrences {
		return MinOccurrences
	}
	if n > MaxOccurrences {
		return MaxOccurrences
	}
	return n
}
