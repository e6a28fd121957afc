package network

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestRecommendGasPrice(t *testing.T) {
	cases := []struct {
		name        string
		current     *big.Int
		recommended int64
		pct         string
	}{
		{"five percent off", big.NewInt(20_000_000_000), 19_000_000_000, "5"},
		{"floored at one gwei", big.NewInt(1_000_000_000), 1_000_000_000, "0"},
		{"below floor", big.NewInt(500_000_000), 1_000_000_000, "-100"},
		{"zero price", big.NewInt(0), 1_000_000_000, "0"},
		{"rounds down", big.NewInt(1_000_000_011), 1_000_000_000, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := RecommendGasPrice(tc.current)
			if rec.Recommended.Int64() != tc.recommended {
				t.Fatalf("expected %d, got %s", tc.recommended, rec.Recommended)
			}
			if rec.SavingsPct.String() != tc.pct {
				t.Fatalf("expected %s%%, got %s", tc.pct, rec.SavingsPct)
			}
		})
	}
}

func TestComputeBatchSavings_ClampsAtZero(t *testing.T) {
	// 0.7 * 21000 + 21000 = 35700 > 21000
	s, err := ComputeBatchSavings([]uint64{21000})
	if err != nil {
		t.Fatalf("ComputeBatchSavings: %v", err)
	}
	if s.Savings.Sign() != 0 || !s.SavingsPct.IsZero() {
		t.Fatalf("expected zero savings, got %+v", s)
	}
	if s.BatchTotal.Int64() != 35700 {
		t.Fatalf("expected batch total 35700, got %s", s.BatchTotal)
	}
}

func TestComputeBatchSavings_FloorsBatchGas(t *testing.T) {
	s, err := ComputeBatchSavings([]uint64{33333, 33333, 33334})
	if err != nil {
		t.Fatalf("ComputeBatchSavings: %v", err)
	}
	if s.IndividualTotal.Int64() != 100000 || s.BatchTotal.Int64() != 91000 {
		t.Fatalf("unexpected totals %+v", s)
	}
}

func TestTransferRequest(t *testing.T) {
	from := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	to := common.HexToAddress("0x00000000000000000000000000000000000000b2")
	token := common.HexToAddress("0x00000000000000000000000000000000000000c3")

	native, err := TransferRequest(from, to, big.NewInt(7), nil)
	if err != nil {
		t.Fatalf("native: %v", err)
	}
	if *native.To != to || native.Value.Int64() != 7 || len(native.Data) != 0 {
		t.Fatalf("unexpected native request %+v", native)
	}

	erc20, err := TransferRequest(from, to, big.NewInt(7), &token)
	if err != nil {
		t.Fatalf("erc20: %v", err)
	}
	if *erc20.To != token || erc20.Value.Sign() != 0 {
		t.Fatalf("unexpected token request %+v", erc20)
	}
	// selector(4) + address(32) + uint256(32)
	if len(erc20.Data) != 68 || common.Bytes2Hex(erc20.Data[:4]) != "a9059cbb" {
		t.Fatalf("unexpected calldata %x", erc20.Data)
	}
}
