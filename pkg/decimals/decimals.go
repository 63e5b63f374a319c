package decimals

import (
	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/realpay-receipts/common/errs"
	"github.com/gaze-network/uint128"
	"github.com/shopspring/decimal"
)

// MaxDecimals is the largest supported number of fractional digits.
const MaxDecimals = 36

// MustFromString converts s to decimal.Decimal. Panics on invalid input.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// PowerOfTen returns 10^n.
func PowerOfTen(n int32) decimal.Decimal {
	return decimal.New(1, n)
}

// ToDecimal converts a raw base-unit amount to its display value, e.g. 1500000 with 6 decimals is 1.5.
func ToDecimal(amount uint128.Uint128, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(amount.Big(), -int32(decimals))
}

// FormatAmount renders amount with exactly decimals fractional digits.
func FormatAmount(amount uint128.Uint128, decimals uint8) string {
	return ToDecimal(amount, decimals).StringFixed(int32(decimals))
}

// ParseAmount converts a display value to raw base units.
// Negative values, more than decimals fractional digits, and values above 2^128-1 are rejected.
func ParseAmount(s string, decimals uint8) (uint128.Uint128, error) {
	if decimals > MaxDecimals {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "decimals %d exceeds %d", decimals, MaxDecimals)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "invalid amount %q", s)
	}
	if d.IsNegative() {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "negative amount %q", s)
	}
	raw := d.Mul(PowerOfTen(int32(decimals)))
	if !raw.Equal(raw.Truncate(0)) {
		return uint128.Zero, errors.Wrapf(errs.InvalidArgument, "amount %q has more than %d fractional digits", s, decimals)
	}
	u, err := uint128.FromBig(raw.BigInt())
	if err != nil {
		return uint128.Zero, errors.Wrapf(errs.OverflowUint128, "amount %q", s)
	}
	return u, nil
}
