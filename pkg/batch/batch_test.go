package batch

import (
	"encoding/json"
	"errors"
	"math/big"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusPending, StatusScheduled}:   true,
		{StatusPending, StatusExecuting}:   true,
		{StatusScheduled, StatusExecuting}: true,
		{StatusExecuting, StatusCompleted}: true,
		{StatusExecuting, StatusFailed}:    true,
	}
	all := []Status{StatusPending, StatusScheduled, StatusExecuting, StatusCompleted, StatusFailed}

	for _, from := range all {
		for _, to := range all {
			want := allowed[[2]Status{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatusesHaveNoExit(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusFailed} {
		if !s.IsTerminal() {
			t.Fatalf("%s should be terminal", s)
		}
		if len(transitions[s]) != 0 {
			t.Fatalf("%s must not have outgoing transitions", s)
		}
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("1000000000000000000")
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000", got.String())

	huge := "123456789012345678901234567890123456789"
	got, err = ParseAmount(huge)
	require.NoError(t, err)
	require.Equal(t, huge, got.String())

	maxUint256 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	got, err = ParseAmount(maxUint256.String())
	require.NoError(t, err)
	require.Equal(t, 0, got.Cmp(maxUint256))

	overflow := new(big.Int).Lsh(big.NewInt(1), 256).String()
	for _, bad := range []string{"", "0", "-1", "1.5", "abc", "  ", "1e80", "1e20000000", "1E3", overflow} {
		_, err := ParseAmount(bad)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("ParseAmount(%q): expected ErrInvalidAmount, got %v", bad, err)
		}
	}
}

func TestParseQuantity_AllowsZeroAndBoundsLength(t *testing.T) {
	got, err := ParseQuantity("0")
	require.NoError(t, err)
	require.Zero(t, got.Sign())

	_, err = ParseQuantity(strings.Repeat("9", 200))
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewBatchID_FormatAndUniqueness(t *testing.T) {
	pattern := regexp.MustCompile(`^batch_\d+_[0-9a-f]{12}$`)
	now := time.Now()
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewBatchID(now)
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected id format %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestFrequency_NextOccurrence(t *testing.T) {
	base := time.Date(2026, time.January, 31, 10, 0, 0, 0, time.UTC)

	next, ok := FrequencyDaily.NextOccurrence(base)
	require.True(t, ok)
	require.Equal(t, base.Add(24*time.Hour), next)

	next, ok = FrequencyWeekly.NextOccurrence(base)
	require.True(t, ok)
	require.Equal(t, base.AddDate(0, 0, 7), next)

	next, ok = FrequencyMonthly.NextOccurrence(base)
	require.True(t, ok)
	require.Equal(t, base.AddDate(0, 1, 0), next)

	_, ok = FrequencyOnce.NextOccurrence(base)
	require.False(t, ok)
}

func TestParseFrequency(t *testing.T) {
	f, err := ParseFrequency(" Weekly ")
	require.NoError(t, err)
	require.Equal(t, FrequencyWeekly, f)

	_, err = ParseFrequency("hourly")
	require.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestGasSavedFor(t *testing.T) {
	require.Equal(t, "6300", GasSavedFor(big.NewInt(21000)).String())
	require.Equal(t, "3", GasSavedFor(big.NewInt(11)).String())
	require.Equal(t, "0", GasSavedFor(nil).String())
}

func TestAverageBatchSize(t *testing.T) {
	require.True(t, AverageBatchSize(0, 0).IsZero())
	require.Equal(t, "2.5", AverageBatchSize(5, 2).String())
	require.Equal(t, "3.3333", AverageBatchSize(10, 3).String())
}

func TestAmountString_AcceptsStringAndNumber(t *testing.T) {
	var req EnqueueRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"1000000000000000000"}`), &req))
	require.Equal(t, AmountString("1000000000000000000"), req.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount":1000000000000000000000}`), &req))
	require.Equal(t, AmountString("1000000000000000000000"), req.Amount)
}

func TestTransactionView_PreservesAmount(t *testing.T) {
	amount, _ := new(big.Int).SetString("1000000000000000000", 10)
	view := NewTransactionView(&Transaction{
		BatchID:     "batch_1_abc",
		Amount:      amount,
		GasEstimate: big.NewInt(DefaultGasEstimate),
		Status:      StatusPending,
	})

	raw, err := json.Marshal(view)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "1000000000000000000", decoded["amount"])
	require.Equal(t, "21000", decoded["gasEstimate"])
	require.Nil(t, decoded["tokenAddress"])
}
