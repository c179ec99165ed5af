package ledger

import (
	"math"
	"strconv"

	"github.com/algorand/go-algorand-sdk/v2/types"
)

// MicroUnitsPerUnit is the number of microAlgos in one Algo
const MicroUnitsPerUnit = 1_000_000

// FormatAddress keeps the first and last visible characters of an address
func FormatAddress(address string, visible int) string {
	if address == "" {
		return ""
	}
	if visible < 0 {
		visible = 0
	}
	n := len(address)
	return address[:min(visible, n)] + "..." + address[max(0, n-visible):]
}

// IsValidAddress reports whether address decodes with a valid checksum
func IsValidAddress(address string) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()
	_, err := types.DecodeAddress(address)
	return err == nil
}

// ToBaseUnits converts Algos to microAlgos, rounding to the nearest unit
func ToBaseUnits(algos float64) uint64 {
	if algos <= 0 {
		return 0
	}
	return uint64(math.Round(algos * MicroUnitsPerUnit))
}

// ToDisplayUnits converts microAlgos to Algos
func ToDisplayUnits(micro uint64) float64 {
	return float64(micro) / MicroUnitsPerUnit
}

// FormatAmount renders an amount of Algos without trailing zeros
func FormatAmount(algos float64) string {
	return strconv.FormatFloat(algos, 'f', -1, 64) + " ALGO"
}
