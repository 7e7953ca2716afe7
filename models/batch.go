package models

// BatchResult reports the outcome of a bulk workflow operation applied to
// several cases. The batch is deliberately not atomic: each case's mutation
// is an independent request, and a failure on one case leaves the others
// transitioned.
type BatchResult struct {
	Succeeded []CaseRef
	Failed    []BatchItemError
}

type BatchItemError struct {
	Ref   CaseRef
	Error string
}

func (r BatchResult) HasFailures() bool {
	return len(r.Failed) > 0
}
