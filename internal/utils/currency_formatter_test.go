package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{45000, "45,000"},
		{1500000, "1,500,000"},
		{-45000, "-45,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.amount))
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+400", FormatSigned(400))
	assert.Equal(t, "+0", FormatSigned(0))
	assert.Equal(t, "-1,500", FormatSigned(-1500))
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("45,000")
	require.NoError(t, err)
	assert.Equal(t, int64(45_000), got)

	got, err = ParseAmount(" 1500000 ")
	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000), got)

	for _, bad := range []string{"", "   ", ",,,", "45.5", "-500", "45000 VND", "abc"} {
		_, err := ParseAmount(bad)
		assert.Error(t, err, bad)
	}
}
