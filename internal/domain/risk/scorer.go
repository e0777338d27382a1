package risk

import (
	"fmt"
	"math"
	"time"

	"github.com/acortes/studytrack/internal/domain/assignment"
)

// Scorer turns an assignment snapshot into a risk assessment. The weighted
// formula below is the default strategy; a learned model can substitute
// behind the same interface without touching the scheduler.
type Scorer interface {
	Assess(a assignment.Assignment, now time.Time) (Assessment, error)
}

// Weights are the factor weights of the weighted scorer.
type Weights struct {
	Urgency  float64
	Workload float64
	Priority float64
}

// DefaultWeights are the stock factor weights.
var DefaultWeights = Weights{Urgency: 0.5, Workload: 0.3, Priority: 0.2}

// DefaultHorizonHours is the stock planning horizon: one week.
const DefaultHorizonHours = 168

// WeightedScorer computes a deterministic, explainable risk score from
// urgency, workload pressure, and priority. It holds no mutable state and
// never modifies the assignments it reads.
type WeightedScorer struct {
	horizonHours float64
	weights      Weights
}

// NewWeightedScorer creates a scorer with the given horizon and weights.
func NewWeightedScorer(horizonHours int, weights Weights) (*WeightedScorer, error) {
	if horizonHours <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, horizonHours)
	}
	if weights.Urgency < 0 || weights.Workload < 0 || weights.Priority < 0 {
		return nil, ErrInvalidWeights
	}
	if sum := weights.Urgency + weights.Workload + weights.Priority; math.Abs(sum-1.0) > 1e-9 {
		return nil, fmt.Errorf("%w: got sum %g", ErrInvalidWeights, sum)
	}
	return &WeightedScorer{
		horizonHours: float64(horizonHours),
		weights:      weights,
	}, nil
}

// Assess scores a single assignment against the current time.
//
// Urgency grows as the deadline approaches within the horizon; workload is
// the ratio of estimated effort to remaining time (maximal once the deadline
// has passed); priority normalizes the 1..5 ordinal scale. The combined score
// is clamped to [0, 1]. An assignment past due and not completed classifies
// at least critical regardless of the computed score.
func (s *WeightedScorer) Assess(a assignment.Assignment, now time.Time) (Assessment, error) {
	if a.DueDate.IsZero() {
		return Assessment{}, fmt.Errorf("%w: due date is required", ErrInvalidInput)
	}
	if a.EstimatedHours < 0 {
		return Assessment{}, fmt.Errorf("%w: estimated hours must be non-negative", ErrInvalidInput)
	}

	dt := a.HoursUntilDue(now)

	urgency := clamp(1-dt/s.horizonHours, 0, 1)
	workload := 1.0
	if dt > 0 {
		workload = clamp(a.EstimatedHours/dt, 0, 1)
	}
	priority := clamp(float64(a.Priority)/assignment.MaxPriority, 0, 1)

	score := s.weights.Urgency*urgency + s.weights.Workload*workload + s.weights.Priority*priority
	score = clamp(score, 0, 1)

	class := Classify(score)
	overdue := dt <= 0 && a.Status != assignment.StatusCompleted
	if overdue && class.Rank() < ClassCritical.Rank() {
		class = ClassCritical
	}

	return Assessment{
		AssignmentID: a.ID,
		Score:        score,
		Class:        class,
		Overdue:      overdue,
		Factors: []Factor{
			{Name: "urgency", Value: urgency, Weight: s.weights.Urgency},
			{Name: "workload", Value: workload, Weight: s.weights.Workload},
			{Name: "priority", Value: priority, Weight: s.weights.Priority},
		},
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
