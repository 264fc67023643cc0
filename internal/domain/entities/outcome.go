package entities

const (
	OutcomeSourceModel    = "model"
	OutcomeSourceFallback = "fallback"
)

// Outcome carries a value that is always usable, plus whether it came from the
// language model or from the deterministic fallback. Reason is set when Degraded.
type Outcome[T any] struct {
	Value    T
	Degraded bool
	Reason   error
}

func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

func Degrade[T any](v T, reason error) Outcome[T] {
	return Outcome[T]{Value: v, Degraded: true, Reason: reason}
}

func (o Outcome[T]) Source() string {
	if o.Degraded {
		return OutcomeSourceFallback
	}
	return OutcomeSourceModel
}
