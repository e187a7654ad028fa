package admission

import "math/big"

// FlatFeeUobx is the flat fee charged on transfers at or below the flat
// fee threshold.
const FlatFeeUobx uint64 = 10

// flatFeeThreshold is the largest amount still charged the flat fee;
// above it the fee switches to a 1% (ceiling-divided) rate.
const flatFeeThreshold uint64 = 1000

const feePercentDen uint64 = 100

// FeeIntUobx computes the required fee for a transfer of amount
// micro-OBX: a flat fee below/at the threshold, and ceil(amount/100)
// above it.
func FeeIntUobx(amount *big.Int) *big.Int {
	threshold := new(big.Int).SetUint64(flatFeeThreshold)
	if amount.Cmp(threshold) <= 0 {
		return new(big.Int).SetUint64(FlatFeeUobx)
	}
	den := new(big.Int).SetUint64(feePercentDen)
	num := new(big.Int).Add(amount, new(big.Int).SetUint64(feePercentDen-1))
	return new(big.Int).Div(num, den)
}
