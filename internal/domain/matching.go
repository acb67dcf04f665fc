package domain

// Choice is the outcome of a disambiguation call. Modeling it as a tagged
// value keeps "matched candidate 0" distinguishable from "no confident
// match"; callers resolve the latter to the first candidate.
type Choice struct {
	Index   int
	Matched bool
}

// MatchedChoice builds a confident choice of the candidate at index
func MatchedChoice(index int) Choice {
	return Choice{Index: index, Matched: true}
}

// NoMatch is the explicit "backend declined to choose" outcome
var NoMatch = Choice{}
