package bridge

import (
	"math/big"
	"testing"

	"gotokenbridge/types"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRate(t *testing.T) {
	cases := []struct {
		in      string
		amount  string
		want    string
		wantErr bool
	}{
		{in: "1", amount: "1000000000000000000", want: "1000000000000000000"},
		{in: "0.0005", amount: "100000000000000000000", want: "50000000000000000"},
		{in: "1.5", amount: "1000000", want: "1500000"},
		{in: "2000", amount: "50000000000000000", want: "100000000000000000000"},
		{in: ".5", amount: "10", want: "5"},
		{in: "", wantErr: true},
		{in: "0", wantErr: true},
		{in: "0.000", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-1", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			rate, err := ParseRate(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			amount, ok := new(big.Int).SetString(tc.amount, 10)
			require.True(t, ok)
			assert.Equal(t, tc.want, rate.Apply(amount).String())
		})
	}
}

func TestApplyTruncatesTowardZero(t *testing.T) {
	rate, err := ParseRate("0.0005")
	require.NoError(t, err)
	// 1999 * 5 / 10000 = 0.9995, truncates to 0
	assert.Equal(t, "0", rate.Apply(big.NewInt(1999)).String())
	assert.Equal(t, "1", rate.Apply(big.NewInt(2000)).String())
}

func TestRateTableLookup(t *testing.T) {
	src := common.HexToAddress("0x6206072722b2b6B4f0E07fa43eB1A4942009615a")
	dst := common.HexToAddress("0x22DD04E9a1922e9b6310035bD9b4800c17Bb77b7")
	table := RateTable{
		"0x6206072722b2b6b4f0e07fa43eb1a4942009615a:0x22dd04e9a1922e9b6310035bd9b4800c17bb77b7": "0.0005",
	}

	rate, err := table.Lookup(src, dst)
	require.NoError(t, err)
	assert.Equal(t, "50000000000000000",
		rate.Apply(mustBig(t, "100000000000000000000")).String())

	_, err = table.Lookup(dst, src)
	require.ErrorIs(t, err, types.ErrNoConversionRate)
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}
