package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "ok", input: "12 Oak Street", want: "12 Oak Street"},
		{name: "collapses whitespace", input: "  12   Oak\n Street ", want: "12 Oak Street"},
		{name: "blank", input: "   ", wantErr: "too short"},
		{name: "too short", input: "12", wantErr: "too short"},
		{name: "too long", input: strings.Repeat("a", AddressMaxLength+1), wantErr: "too long"},
		{name: "counts runes", input: strings.Repeat("ж", AddressMaxLength), want: strings.Repeat("ж", AddressMaxLength)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateAddress(tc.input)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
