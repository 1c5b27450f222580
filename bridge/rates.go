// Package bridge holds the cross-chain transfer logic: translating observed
// lock events into release submissions on the target chain, with the
// persistence and idempotency rules that make replays and crashes safe.
package bridge

import (
	"fmt"
	"math/big"
	"strings"

	"gotokenbridge/types"

	"github.com/ethereum/go-ethereum/common"
)

// Rate is a conversion factor held as an exact numerator/denominator pair.
// Amounts are big integers in token base units, so the factor must never
// round before the final division.
type Rate struct {
	num   *big.Int
	denom *big.Int
}

// ParseRate reads a decimal string such as "1", "0.0005" or "1.5" into an
// exact fraction.
func ParseRate(s string) (Rate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rate{}, fmt.Errorf("empty conversion rate")
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)

	num, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok || num.Sign() < 0 {
		return Rate{}, fmt.Errorf("malformed conversion rate %q", s)
	}
	if num.Sign() == 0 {
		return Rate{}, fmt.Errorf("zero conversion rate %q", s)
	}
	return Rate{num: num, denom: denom}, nil
}

// Apply converts a source amount into the target-chain amount, truncating
// toward zero as the contract's integer math would.
func (r Rate) Apply(amount *big.Int) *big.Int {
	out := new(big.Int).Mul(amount, r.num)
	return out.Quo(out, r.denom)
}

// String renders the fraction for logs.
func (r Rate) String() string {
	return fmt.Sprintf("%s/%s", r.num, r.denom)
}

// RateTable resolves the configured factor for a token pair. Keys are
// lowercased "sourceToken:targetToken" hex addresses.
type RateTable map[string]string

// Lookup returns the exact rate for the pair, or types.ErrNoConversionRate
// when the pair is not configured.
func (t RateTable) Lookup(sourceToken, targetToken common.Address) (Rate, error) {
	key := strings.ToLower(sourceToken.Hex()) + ":" + strings.ToLower(targetToken.Hex())
	raw, ok := t[key]
	if !ok {
		return Rate{}, fmt.Errorf("%w: %s", types.ErrNoConversionRate, key)
	}
	return ParseRate(raw)
}
