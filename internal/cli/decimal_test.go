package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	testCases := []struct {
		in        string
		want      int
		expectErr bool
	}{
		{in: "16", want: 16},
		{in: "+24", want: 24},
		{in: "-8", want: -8},
		{in: "0", want: 0},
		{in: "1_024", want: 1024},
		{in: "010", want: 10},
		{in: "", expectErr: true},
		{in: "_16", expectErr: true},
		{in: "16_", expectErr: true},
		{in: "1__6", expectErr: true},
		{in: "0x18", expectErr: true},
		{in: "0b1000", expectErr: true},
		{in: "16.0", expectErr: true},
		{in: " 16", expectErr: true},
		{in: "99999999999999999999999", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseDecimal(tc.in)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecimalValue(t *testing.T) {
	var n int
	v := newDecimalValue(16, &n)
	assert.Equal(t, 16, n)
	assert.Equal(t, "16", v.String())
	assert.Equal(t, "int", v.Type())

	require.NoError(t, v.Set("32"))
	assert.Equal(t, 32, n)

	require.Error(t, v.Set("abc"))
	assert.Equal(t, 32, n, "a failed Set must keep the previous value")
}
