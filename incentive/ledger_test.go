package incentive_test

import (
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/transmuter-engine/incentive"
)

func i(v int64) osmomath.Int { return osmomath.NewInt(v) }

func TestLedgerAddAndRemoveTokens(t *testing.T) {
	l := incentive.NewLedger()
	l.AddTokens("uusdc", i(100))
	require.True(t, l.PoolBalance("uusdc").Equal(i(100)))

	require.Error(t, l.RemoveTokens("uusdc", i(200)))
	require.NoError(t, l.RemoveTokens("uusdc", i(100)))
	require.True(t, l.PoolBalance("uusdc").IsZero())
	require.Empty(t, l.PoolBalances())
}

func TestLedgerCreditUserCapsAtPoolValue(t *testing.T) {
	l := incentive.NewLedger()

	credited := l.CreditUser("alice", i(50), i(100))
	require.True(t, credited.Equal(i(50)))
	require.True(t, l.UserCredit("alice").Equal(i(50)))

	credited = l.CreditUser("bob", i(80), i(100))
	require.True(t, credited.Equal(i(50)))
	require.True(t, l.TotalCredits().Equal(i(100)))

	credited = l.CreditUser("carol", i(1), i(100))
	require.True(t, credited.IsZero())
}

func TestLedgerRedeem(t *testing.T) {
	l := incentive.NewLedger()
	l.AddTokens("uusdc", i(100))
	l.CreditUser("alice", i(40), i(100))

	err := l.Redeem("alice", []incentive.Redemption{
		{Denom: "uusdc", Amount: i(40), NormalizedValue: i(40)},
	})
	require.NoError(t, err)
	require.True(t, l.UserCredit("alice").IsZero())
	require.True(t, l.PoolBalance("uusdc").Equal(i(60)))
}

func TestLedgerRedeemInsufficientCredit(t *testing.T) {
	l := incentive.NewLedger()
	l.AddTokens("uusdc", i(100))
	l.CreditUser("alice", i(10), i(100))

	err := l.Redeem("alice", []incentive.Redemption{
		{Denom: "uusdc", Amount: i(40), NormalizedValue: i(40)},
	})
	require.Error(t, err)
	require.True(t, l.PoolBalance("uusdc").Equal(i(100)))
}

func TestLedgerRedeemInsufficientPoolLeavesStateUntouched(t *testing.T) {
	l := incentive.NewLedger()
	l.AddTokens("uusdc", i(10))
	l.CreditUser("alice", i(40), i(100))

	err := l.Redeem("alice", []incentive.Redemption{
		{Denom: "uusdc", Amount: i(40), NormalizedValue: i(40)},
	})
	require.Error(t, err)
	require.True(t, l.UserCredit("alice").Equal(i(40)))
	require.True(t, l.PoolBalance("uusdc").Equal(i(10)))
}
