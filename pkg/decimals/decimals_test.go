package decimals

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	testcases := []struct {
		decimals uint8
		value    uint128.Uint128
		expected string
	}{
		{0, uint128.From64(1), "1"},
		{1, uint128.From64(1), "0.1"},
		{6, uint128.From64(1_500_000), "1.5"},
		{18, uint128.From64(1), "0.000000000000000001"},
		{0, uint128.Max, "340282366920938463463374607431768211455"},
		{18, uint128.Max, "340282366920938463463.374607431768211455"},
		{36, uint128.Max, "340.282366920938463463374607431768211455"},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("%d_%s", tc.decimals, tc.value), func(t *testing.T) {
			assert.Equal(t, tc.expected, ToDecimal(tc.value, tc.decimals).String())
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.001000", FormatAmount(uint128.From64(1000), 6))
	assert.Equal(t, "1000", FormatAmount(uint128.From64(1000), 0))
	assert.Equal(t, "0.00", FormatAmount(uint128.Zero, 2))
}

func TestParseAmount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		testcases := []struct {
			input    string
			decimals uint8
			expected uint128.Uint128
		}{
			{"1.5", 6, uint128.From64(1_500_000)},
			{"0.000001", 6, uint128.From64(1)},
			{"1000", 0, uint128.From64(1000)},
			{"340282366920938463463374607431768211455", 0, uint128.Max},
		}
		for _, tc := range testcases {
			t.Run(tc.input, func(t *testing.T) {
				actual, err := ParseAmount(tc.input, tc.decimals)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, actual)
			})
		}
	})
	t.Run("invalid", func(t *testing.T) {
		testcases := []struct {
			input    string
			decimals uint8
			kind     error
		}{
			{"abc", 6, errs.InvalidArgument},
			{"-1", 6, errs.InvalidArgument},
			{"0.0000001", 6, errs.InvalidArgument},
			{"1", 37, errs.InvalidArgument},
			{"340282366920938463463374607431768211456", 0, errs.OverflowUint128},
		}
		for _, tc := range testcases {
			t.Run(tc.input, func(t *testing.T) {
				_, err := ParseAmount(tc.input, tc.decimals)
				assert.True(t, errors.Is(err, tc.kind), "got %v", err)
			})
		}
	})
}

func TestPowerOfTen(t *testing.T) {
	assert.Equal(t, "0.001", PowerOfTen(-3).String())
	assert.Equal(t, "1000", PowerOfTen(3).String())
}
