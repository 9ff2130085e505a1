package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseKind verifies string-to-kind conversion, including case
// normalization, the grid_ref alias, and error cases.
func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		hasError bool
	}{
		{"gridref", KindGridRef, false},
		{"grid_ref", KindGridRef, false}, // alias used by the input table
		{"xy", KindXY, false},
		{"latlon", KindLatLon, false},
		{"LatLon", KindLatLon, false}, // case insensitive
		{" XY ", KindXY, false},       // surrounding space
		{"utm", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseKind(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestKind_IsValid checks that only defined kinds pass validation.
func TestKind_IsValid(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, Kind("grid_ref").IsValid())
	assert.False(t, Kind("").IsValid())
}

// TestCoordinate_String verifies the canonical text form of each value type.
func TestCoordinate_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Coordinate
		kind     Kind
		expected string
	}{
		{"grid reference", GridReference{Letter: "V", Easting: "92315", Northing: "85538"}, KindGridRef, "V 92315 85538"},
		{"grid xy", GridXY{Easting: 92315, Northing: 85538}, KindXY, "92315 85538"},
		{"negative xy", GridXY{Easting: -12, Northing: 5}, KindXY, "-12 5"},
		{"lat lon", LatLon{Lat: 52.01, Lon: -9.57}, KindLatLon, "52.01, -9.57"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

// TestConversionError_Is verifies that a ConversionError matches the
// sentinel for its kind, wrapped or not, and nothing else.
func TestConversionError_Is(t *testing.T) {
	err := NewConversionError(ErrKindInvalidGridLetter, StageDecode, "I 12345 67890", "letter %q is not a grid square", "I")

	assert.True(t, errors.Is(err, ErrInvalidGridLetter))
	assert.False(t, errors.Is(err, ErrOutOfRange))

	wrapped := fmt.Errorf("row 3: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidGridLetter))

	other := &ConversionError{Kind: ErrKindInvalidGridLetter, Stage: StageParse}
	assert.True(t, errors.Is(err, other), "same kind at a different stage should match")
}

// TestConversionError_Error checks the message layout with and without input.
func TestConversionError_Error(t *testing.T) {
	withInput := NewConversionError(ErrKindMalformedInput, StageParse, "Z1234", "expected 3 fields, got %d", 1)
	assert.Equal(t, `parse: expected 3 fields, got 1 (malformed_input): "Z1234"`, withInput.Error())

	withoutInput := NewConversionError(ErrKindOutOfRange, StageProject, "", "non-finite result")
	assert.Equal(t, "project: non-finite result (out_of_range)", withoutInput.Error())
}

// TestAsConversionError verifies that foreign errors are classified as
// malformed input while typed errors pass through unchanged.
func TestAsConversionError(t *testing.T) {
	assert.Nil(t, AsConversionError(nil, StageParse))

	typed := NewConversionError(ErrKindOutOfRange, StageEncode, "", "too many digits")
	assert.Same(t, typed, AsConversionError(fmt.Errorf("wrap: %w", typed), StageParse))

	foreign := AsConversionError(errors.New("boom"), StageUnproject)
	require.NotNil(t, foreign)
	assert.Equal(t, ErrKindMalformedInput, foreign.Kind)
	assert.Equal(t, StageUnproject, foreign.Stage)
	assert.Equal(t, "boom", foreign.Message)
}

// TestResult verifies the success/failure constructors.
func TestResult(t *testing.T) {
	ok := Ok(GridXY{Easting: 1, Northing: 2})
	assert.True(t, ok.OK())
	assert.Equal(t, GridXY{Easting: 1, Northing: 2}, ok.Value)

	failed := Fail(NewConversionError(ErrKindOutOfRange, StageEncode, "", "x"))
	assert.False(t, failed.OK())
	assert.Nil(t, failed.Value)
}

// TestCLIError verifies exit-code carrying errors and their unwrapping.
func TestCLIError(t *testing.T) {
	base := errors.New("underlying")
	err := WrapCLIError(ExitConfigError, "failed to load config", base)

	assert.Equal(t, "failed to load config: underlying", err.Error())
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, ExitConfigError, err.Code)

	plain := NewCLIError(ExitInvalidInput, "no rows")
	assert.Equal(t, "no rows", plain.Error())
	assert.Nil(t, plain.Unwrap())
}

// TestParseFormat verifies string-to-format conversion.
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		hasError bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"csv", FormatCSV, false},
		{"GeoJSON", FormatGeoJSON, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
				assert.Equal(t, tt.expected.String(), result.String())
			}
		})
	}
}
