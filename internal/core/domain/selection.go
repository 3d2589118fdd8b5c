package domain

// SelectionState is the uniform outcome of a zero/one/many candidate lookup.
type SelectionState int

const (
	// SelectionAbsent means no candidate matched.
	SelectionAbsent SelectionState = iota
	// SelectionUnique means exactly one candidate matched.
	SelectionUnique
	// SelectionAmbiguous means several candidates matched where exactly one
	// was required.
	SelectionAmbiguous
)

// Selection holds the candidates of a lookup together with its state.
type Selection[T any] struct {
	Candidates []T
}

// NewSelection classifies a candidate slice.
func NewSelection[T any](candidates []T) Selection[T] {
	return Selection[T]{Candidates: candidates}
}

// State returns the zero/one/many classification.
func (s Selection[T]) State() SelectionState {
	switch len(s.Candidates) {
	case 0:
		return SelectionAbsent
	case 1:
		return SelectionUnique
	default:
		return SelectionAmbiguous
	}
}

// One returns the unique candidate. It must only be called when State is
// SelectionUnique.
func (s Selection[T]) One() T {
	return s.Candidates[0]
}
