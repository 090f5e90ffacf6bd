package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CheckName identifies one of the ordered checks of a scenario.
type CheckName string

const (
	// CheckCouplings verifies the resolver output against the declared pairs.
	CheckCouplings CheckName = "couplings"
	// CheckSimplification verifies that simplification succeeds.
	CheckSimplification CheckName = "simplification"
	// CheckComparison verifies observed classifications against the declared ones.
	CheckComparison CheckName = "comparison"
)

// Checks lists the scenario checks in execution order.
var Checks = []CheckName{CheckCouplings, CheckSimplification, CheckComparison}

// CheckStatus represents the status of a scenario check.
type CheckStatus int

const (
	// Passed indicates the check met every expectation.
	Passed CheckStatus = iota
	// Failed indicates the check found a divergence or could not run.
	Failed
)

func (s CheckStatus) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalYAML implements yaml.Marshaler.
func (s CheckStatus) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *CheckStatus) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "passed":
		*s = Passed
	case "failed":
		*s = Failed
	default:
		return fmt.Errorf("line %d: unknown check status %q", value.Line, value.Value)
	}

	return nil
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Name    CheckName   `yaml:"name"`
	Status  CheckStatus `yaml:"status"`
	Message string      `yaml:"message,omitempty"`
	// Details holds multi-line supporting output such as a diff.
	Details string      `yaml:"details,omitempty"`
}

// ScenarioReport represents the result of running one scenario.
type ScenarioReport struct {
	ID       string        `yaml:"id"`
	Module   string        `yaml:"module"`
	Param    string        `yaml:"param"`
	SpecFile Path          `yaml:"spec_file"`
	Checks   []CheckResult `yaml:"checks"`
}

// Passed reports whether every check of the scenario passed.
func (r ScenarioReport) Passed() bool {
	for _, c := range r.Checks {
		if c.Status != Passed {
			return false
		}
	}

	return true
}

// Check returns the result of the named check.
func (r ScenarioReport) Check(name CheckName) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}

	return CheckResult{}, false
}

// NewCheckResult builds a check result from an error; nil means passed.
func NewCheckResult(name CheckName, err error) CheckResult {
	if err == nil {
		return CheckResult{Name: name, Status: Passed}
	}

	return CheckResult{Name: name, Status: Failed, Message: err.Error()}
}
