package sol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	Decimals       = 9
	LamportsPerSol = 1_000_000_000
)

// StrToLamports converts a string representation of SOL to lamports.
//
// An error is returned if the value string is invalid, or it cannot be
// accurately represented as lamports.
func StrToLamports(val string) (uint64, error) {
	return StrToBaseUnits(val, Decimals)
}

// MustStrToLamports calls StrToLamports, panicking if there's an error.
//
// This should only be used if you know for sure this will not panic.
func MustStrToLamports(val string) uint64 {
	result, err := StrToLamports(val)
	if err != nil {
		panic(err)
	}

	return result
}

// StrFromLamports converts an amount of lamports to the string representation
// of SOL.
func StrFromLamports(amount uint64) string {
	return StrFromBaseUnits(amount, Decimals)
}

// StrToBaseUnits converts a decimal string to the base units of a token with
// the provided number of decimals, e.g. 6 for USDC.
func StrToBaseUnits(val string, decimals uint8) (uint64, error) {
	if decimals > 18 {
		return 0, errors.New("too many decimals")
	}

	parts := strings.Split(val, ".")
	if len(parts) > 2 {
		return 0, errors.New("invalid value")
	}

	whole, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "invalid whole component")
	}

	var fractional uint64
	if len(parts) == 2 {
		if len(parts[1]) == 0 || len(parts[1]) > int(decimals) {
			return 0, errors.New("value cannot be represented")
		}

		padded := parts[1] + strings.Repeat("0", int(decimals)-len(parts[1]))
		fractional, err = strconv.ParseUint(padded, 10, 64)
		if err != nil {
			return 0, errors.Wrap(err, "invalid decimal component")
		}
	}

	multiplier := pow10(decimals)
	if whole > (^uint64(0)-fractional)/multiplier {
		return 0, errors.New("value cannot be represented")
	}

	return whole*multiplier + fractional, nil
}

// StrFromBaseUnits converts base units of a token with the provided number of
// decimals to its decimal string representation.
func StrFromBaseUnits(amount uint64, decimals uint8) string {
	if decimals == 0 {
		return strconv.FormatUint(amount, 10)
	}

	multiplier := pow10(decimals)
	return fmt.Sprintf("%d.%0*d", amount/multiplier, int(decimals), amount%multiplier)
}

func pow10(n uint8) uint64 {
	v := uint64(1)
	for i := uint8(0); i < n; i++ {
		v *= 10
	}
	return v
}
