package corrupted_test

import (
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/transmuter-engine/corrupted"
	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/pool"
	"github.com/osmosis-labs/transmuter-engine/scope"
)

func i(v int64) osmomath.Int { return osmomath.NewInt(v) }

func newGuardTestPool(t *testing.T) *pool.Pool {
	t.Helper()
	a1, err := pool.NewAsset("asset1", i(99999999), i(1))
	require.NoError(t, err)
	a2, err := pool.NewAsset("asset2", i(100000000), i(1))
	require.NoError(t, err)

	p, err := pool.NewPool("share", []pool.Asset{a1, a2})
	require.NoError(t, err)
	require.NoError(t, p.MarkCorrupted(scope.Denom("asset1")))
	return p
}

func TestGuardNoCorruptedScopesRunsUnchecked(t *testing.T) {
	a1, err := pool.NewAsset("asset1", i(100), i(1))
	require.NoError(t, err)
	a2, err := pool.NewAsset("asset2", i(100), i(1))
	require.NoError(t, err)
	p, err := pool.NewPool("share", []pool.Asset{a1, a2})
	require.NoError(t, err)

	_, err = corrupted.Guard(p, func(p *pool.Pool) (struct{}, error) {
		return struct{}{}, p.Increase("asset1", i(1))
	})
	require.NoError(t, err)
}

func TestGuardRejectsDirectAmountIncrease(t *testing.T) {
	p := newGuardTestPool(t)

	_, err := corrupted.Guard(p, func(p *pool.Pool) (struct{}, error) {
		return struct{}{}, p.Increase("asset1", i(1))
	})
	require.ErrorAs(t, err, &domain.CorruptedScopeRelativelyIncreasedError{})
}

func TestGuardRejectsWeightIncreaseFromOtherAssetDecrease(t *testing.T) {
	p := newGuardTestPool(t)

	_, err := corrupted.Guard(p, func(p *pool.Pool) (struct{}, error) {
		return struct{}{}, p.Decrease("asset2", i(1))
	})
	require.Error(t, err)
}

func TestGuardAllowsSufficientCorruptedDecrease(t *testing.T) {
	p := newGuardTestPool(t)

	_, err := corrupted.Guard(p, func(p *pool.Pool) (struct{}, error) {
		if err := p.Decrease("asset1", i(2)); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, p.Decrease("asset2", i(1))
	})
	require.NoError(t, err)
}

func TestGuardGroupScope(t *testing.T) {
	a1, err := pool.NewAsset("asset1", i(100), i(1))
	require.NoError(t, err)
	a2, err := pool.NewAsset("asset2", i(200), i(1))
	require.NoError(t, err)
	a3, err := pool.NewAsset("asset3", i(300), i(1))
	require.NoError(t, err)

	p, err := pool.NewPool("share", []pool.Asset{a1, a2, a3})
	require.NoError(t, err)
	require.NoError(t, p.CreateAssetGroup("group1", []string{"asset2", "asset3"}))
	require.NoError(t, p.MarkCorrupted(scope.AssetGroup("group1")))

	_, err = corrupted.Guard(p, func(p *pool.Pool) (struct{}, error) {
		return struct{}{}, p.Increase("asset2", i(1))
	})
	require.Error(t, err)

	_, err = corrupted.Guard(p, func(p *pool.Pool) (struct{}, error) {
		return struct{}{}, p.Decrease("asset2", i(1))
	})
	require.NoError(t, err)
}

// Marking a group corrupted leaves each member's own denom scope
// uncorrupted: an intra-group shift that leaves the group's aggregate
// amount and weight unchanged must pass, even though one member's own
// amount increased.
func TestGuardGroupScopeAllowsIntraGroupShift(t *testing.T) {
	a1, err := pool.NewAsset("asset1", i(100), i(1))
	require.NoError(t, err)
	a2, err := pool.NewAsset("asset2", i(200), i(1))
	require.NoError(t, err)
	a3, err := pool.NewAsset("asset3", i(300), i(1))
	require.NoError(t, err)

	p, err := pool.NewPool("share", []pool.Asset{a1, a2, a3})
	require.NoError(t, err)
	require.NoError(t, p.CreateAssetGroup("group1", []string{"asset2", "asset3"}))
	require.NoError(t, p.MarkCorrupted(scope.AssetGroup("group1")))

	_, err = corrupted.Guard(p, func(p *pool.Pool) (struct{}, error) {
		if err := p.Increase("asset2", i(1)); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, p.Decrease("asset3", i(1))
	})
	require.NoError(t, err)
}
