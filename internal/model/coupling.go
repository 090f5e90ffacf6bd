package model

// CouplingResult is the cross-version correspondence of the functions that
// use a parameter.
type CouplingResult struct {
	Param string
	// Main holds the pairs of functions that directly use Param.
	Main PairSet
	// OnlyOld holds users of Param that have no counterpart in the new module.
	OnlyOld NameSet
	// OnlyNew holds users of Param that have no counterpart in the old module.
	OnlyNew NameSet
}

// NewCouplingResult returns an empty result for param.
func NewCouplingResult(param string) CouplingResult {
	return CouplingResult{
		Param:   param,
		Main:    PairSet{},
		OnlyOld: NameSet{},
		OnlyNew: NameSet{},
	}
}
