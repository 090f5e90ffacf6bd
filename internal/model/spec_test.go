package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpectation(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  Expectation
	}{
		{"equal lower", "equal", Expectation{Kind: ExpectClassification, Classification: Equal}},
		{"equal upper", "EQUAL", Expectation{Kind: ExpectClassification, Classification: Equal}},
		{"not equal underscore", "not_equal", Expectation{Kind: ExpectClassification, Classification: NotEqual}},
		{"not equal dash", "Not-Equal", Expectation{Kind: ExpectClassification, Classification: NotEqual}},
		{"timeout", "timeout", Expectation{Kind: ExpectClassification, Classification: Timeout}},
		{"unknown", "unknown", Expectation{Kind: ExpectClassification, Classification: Unknown}},
		{"only old", "only_old", Expectation{Kind: ExpectOnlyOld}},
		{"only new", "ONLY_NEW", Expectation{Kind: ExpectOnlyNew}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExpectation(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExpectation_UnrecognizedLabel(t *testing.T) {
	for _, label := range []string{"", "equals", "only-old", "error"} {
		_, err := ParseExpectation(label)
		require.Error(t, err, label)

		var labelErr *LabelError
		require.True(t, errors.As(err, &labelErr))
		assert.Equal(t, label, labelErr.Label)
	}
}

func TestClassificationString(t *testing.T) {
	assert.Equal(t, "EQUAL", Equal.String())
	assert.Equal(t, "NOT_EQUAL", NotEqual.String())
	assert.Equal(t, "TIMEOUT", Timeout.String())
	assert.Equal(t, "UNKNOWN", Unknown.String())
	assert.Equal(t, "Classification(42)", Classification(42).String())
}

func TestPairSet_Minus(t *testing.T) {
	a := NewPairSet(SamePair("foo"), FunctionPair{Old: "bar", New: "bar2"})
	b := NewPairSet(SamePair("foo"), SamePair("baz"))

	assert.Equal(t, []FunctionPair{{Old: "bar", New: "bar2"}}, a.Minus(b))
	assert.Equal(t, []FunctionPair{SamePair("baz")}, b.Minus(a))
	assert.Empty(t, a.Minus(a))
}

func TestNameSet_Minus(t *testing.T) {
	a := NewNameSet("x", "y", "z")
	b := NewNameSet("y")

	assert.Equal(t, []string{"x", "z"}, a.Minus(b))
	assert.Empty(t, b.Minus(a))
}

func TestFunctionPairString(t *testing.T) {
	assert.Equal(t, "foo", SamePair("foo").String())
	assert.Equal(t, "foo_old -> foo_new", FunctionPair{Old: "foo_old", New: "foo_new"}.String())
}
