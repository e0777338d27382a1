package risk

// Class is the ordinal risk bucket derived from a continuous score
type Class string

const (
	ClassLow      Class = "low"
	ClassMedium   Class = "medium"
	ClassHigh     Class = "high"
	ClassCritical Class = "critical"
)

// Rank orders classes for scheduling; critical ranks highest.
func (c Class) Rank() int {
	switch c {
	case ClassCritical:
		return 3
	case ClassHigh:
		return 2
	case ClassMedium:
		return 1
	default:
		return 0
	}
}

// Classify buckets a score into a class.
func Classify(score float64) Class {
	switch {
	case score < 0.25:
		return ClassLow
	case score < 0.5:
		return ClassMedium
	case score < 0.75:
		return ClassHigh
	default:
		return ClassCritical
	}
}

// Factor is one labeled component of a risk score.
type Factor struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// Assessment is the derived completion risk of a single assignment. It is
// never persisted.
type Assessment struct {
	AssignmentID int64    `json:"assignment_id"`
	Score        float64  `json:"score"`
	Class        Class    `json:"class"`
	Factors      []Factor `json:"factors"`
	Overdue      bool     `json:"overdue"`
}
