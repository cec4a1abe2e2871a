package application

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "name",
			value:     "design",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "name",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "ref",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var valErr *ValidationError
			require.True(t, errors.As(err, &valErr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.fieldName, valErr.Field)
		})
	}
}

func TestValidateLabelName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr string
	}{
		{name: "simple", value: "work"},
		{name: "unicode", value: "café ☕"},
		{name: "max length", value: strings.Repeat("é", MaxLabelNameLength)},
		{name: "empty", value: "", wantErr: "name is required"},
		{name: "blank", value: "  ", wantErr: "name is required"},
		{name: "too long", value: strings.Repeat("a", MaxLabelNameLength+1), wantErr: "at most 255"},
		{name: "slash", value: "work/design", wantErr: "cannot contain slashes"},
		{name: "leading hash", value: "#urgent", wantErr: "cannot start with #"},
		{name: "leading hash after blanks", value: "  #urgent", wantErr: "cannot start with #"},
		{name: "inner hash", value: "c#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabelName("name", tt.value)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateLabelPath(t *testing.T) {
	require.NoError(t, ValidateLabelPath("path", "school/winter26/math"))
	require.NoError(t, ValidateLabelPath("path", "/school//math/"))
	require.Error(t, ValidateLabelPath("path", "school/#math"))
	require.Error(t, ValidateLabelPath("path", "//"))
	require.Error(t, ValidateLabelPath("path", "school/"+strings.Repeat("x", MaxLabelNameLength+1)))
}

func TestValidateColorHex(t *testing.T) {
	for _, ok := range []string{"#FF8800", "ff8800", "#ff8800CC"} {
		assert.NoError(t, ValidateColorHex("colorHex", ok), ok)
	}
	for _, bad := range []string{"#FF88", "red", "#GG8800", "#FF8800C"} {
		err := ValidateColorHex("colorHex", bad)
		var valErr *ValidationError
		assert.True(t, errors.As(err, &valErr), bad)
	}
}
