package engine

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/osmosis-labs/transmuter-engine/corrupted"
	"github.com/osmosis-labs/transmuter-engine/domain"
	"github.com/osmosis-labs/transmuter-engine/pool"
)

// SwapExactAmountIn converts tokenInAmount of tokenInDenom into
// tokenOutDenom at the pool's 1:1 normalized rate, rounded down, failing
// if the result is below tokenOutMin. When tokenInDenom carries a
// rebalancing config (on its own scope or an asset group it belongs to),
// the resulting weight shift is priced: a debalancing move collects a
// fee into the incentive pool (reducing the convertible amount), a
// rebalancing move credits the caller's incentive balance. Either side
// may be the alloyed share denom, substituting burn/mint for that leg.
func (e *Engine) SwapExactAmountIn(user, tokenInDenom string, tokenInAmount osmomath.Int, tokenOutDenom string, tokenOutMin osmomath.Int) (osmomath.Int, error) {
	if tokenInDenom == tokenOutDenom {
		return osmomath.Int{}, domain.InvalidTransmuteDenomError{Denom: tokenOutDenom}
	}

	factorIn, inAlloyed, err := e.transmuteFactor(tokenInDenom)
	if err != nil {
		return osmomath.Int{}, err
	}
	factorOut, outAlloyed, err := e.transmuteFactor(tokenOutDenom)
	if err != nil {
		return osmomath.Int{}, err
	}

	fee := osmomath.ZeroInt()
	incentiveNormalized := osmomath.ZeroInt()
	effectiveIn := tokenInAmount

	if !inAlloyed {
		adjustment, err := e.adjustmentFor(tokenInDenom, tokenInAmount)
		if err != nil {
			return osmomath.Int{}, err
		}
		switch {
		case adjustment.IsNegative():
			fee = adjustment.Neg()
			effectiveIn = tokenInAmount.Sub(fee)
			if effectiveIn.IsNegative() {
				effectiveIn = osmomath.ZeroInt()
			}
		case adjustment.IsPositive():
			standardFactor, err := e.pool.StandardFactor()
			if err != nil {
				return osmomath.Int{}, err
			}
			incentiveNormalized, err = pool.ConvertAmount(adjustment, factorIn, standardFactor, pool.RoundDown)
			if err != nil {
				return osmomath.Int{}, err
			}
		}
	}

	amountOut, err := pool.ConvertAmount(effectiveIn, factorIn, factorOut, pool.RoundDown)
	if err != nil {
		return osmomath.Int{}, err
	}
	if amountOut.LT(tokenOutMin) {
		return osmomath.Int{}, domain.InsufficientTokenOutError{TokenOutMin: tokenOutMin, TokenOutActual: amountOut}
	}

	if inAlloyed {
		available := e.userShareBalance(user)
		if available.LT(tokenInAmount) {
			return osmomath.Int{}, domain.InsufficientSharesError{Required: tokenInAmount, Available: available}
		}
	}
	if !outAlloyed {
		asset, err := e.pool.GetAsset(tokenOutDenom)
		if err != nil {
			return osmomath.Int{}, err
		}
		if asset.Amount.LT(amountOut) {
			return osmomath.Int{}, domain.InsufficientPoolAssetError{Denom: tokenOutDenom, Required: amountOut, Available: asset.Amount}
		}
	}

	preWeights, err := e.snapshotConfiguredWeights()
	if err != nil {
		return osmomath.Int{}, err
	}

	netIn := tokenInAmount.Sub(fee)
	rollback := func() {
		if !outAlloyed {
			e.pool.Increase(tokenOutDenom, amountOut)
		}
		if !inAlloyed && netIn.IsPositive() {
			_ = e.pool.Decrease(tokenInDenom, netIn)
		}
	}

	_, err = corrupted.Guard(e.pool, func(p *pool.Pool) (struct{}, error) {
		if !inAlloyed && netIn.IsPositive() {
			if err := p.Increase(tokenInDenom, netIn); err != nil {
				return struct{}{}, err
			}
		}
		if !outAlloyed {
			if err := p.Decrease(tokenOutDenom, amountOut); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		rollback()
		return osmomath.Int{}, err
	}

	if err := e.checkLimits(preWeights); err != nil {
		rollback()
		return osmomath.Int{}, err
	}

	if fee.IsPositive() {
		e.ledger.AddTokens(tokenInDenom, fee)
	}
	if incentiveNormalized.IsPositive() {
		incentivePoolValue, err := e.incentivePoolNormalizedValue()
		if err != nil {
			return osmomath.Int{}, err
		}
		e.ledger.CreditUser(user, incentiveNormalized, incentivePoolValue)
	}
	if inAlloyed {
		_ = e.burnShares(user, tokenInAmount) // sufficiency already checked above
	}
	if outAlloyed {
		e.mintShares(user, amountOut)
	}

	e.persist()
	return amountOut, nil
}

// SwapExactAmountOut converts enough of tokenInDenom into exactly
// tokenOutAmount of tokenOutDenom, failing if the required input exceeds
// tokenInMax. Fee/incentive pricing mirrors SwapExactAmountIn.
func (e *Engine) SwapExactAmountOut(user, tokenInDenom string, tokenInMax osmomath.Int, tokenOutDenom string, tokenOutAmount osmomath.Int) (osmomath.Int, error) {
	if tokenInDenom == tokenOutDenom {
		return osmomath.Int{}, domain.InvalidTransmuteDenomError{Denom: tokenOutDenom}
	}

	factorIn, inAlloyed, err := e.transmuteFactor(tokenInDenom)
	if err != nil {
		return osmomath.Int{}, err
	}
	factorOut, outAlloyed, err := e.transmuteFactor(tokenOutDenom)
	if err != nil {
		return osmomath.Int{}, err
	}

	baseIn, err := pool.ConvertAmount(tokenOutAmount, factorOut, factorIn, pool.RoundUp)
	if err != nil {
		return osmomath.Int{}, err
	}

	fee := osmomath.ZeroInt()
	incentiveNormalized := osmomath.ZeroInt()
	requiredIn := baseIn

	if !inAlloyed {
		adjustment, err := e.adjustmentFor(tokenInDenom, baseIn)
		if err != nil {
			return osmomath.Int{}, err
		}
		switch {
		case adjustment.IsNegative():
			fee = adjustment.Neg()
			requiredIn = baseIn.Add(fee)
		case adjustment.IsPositive():
			standardFactor, err := e.pool.StandardFactor()
			if err != nil {
				return osmomath.Int{}, err
			}
			incentiveNormalized, err = pool.ConvertAmount(adjustment, factorIn, standardFactor, pool.RoundDown)
			if err != nil {
				return osmomath.Int{}, err
			}
		}
	}

	if requiredIn.GT(tokenInMax) {
		return osmomath.Int{}, domain.ExcessiveRequiredTokenInError{TokenInMax: tokenInMax, TokenInActual: requiredIn}
	}

	if inAlloyed {
		available := e.userShareBalance(user)
		if available.LT(requiredIn) {
			return osmomath.Int{}, domain.InsufficientSharesError{Required: requiredIn, Available: available}
		}
	}
	if !outAlloyed {
		asset, err := e.pool.GetAsset(tokenOutDenom)
		if err != nil {
			return osmomath.Int{}, err
		}
		if asset.Amount.LT(tokenOutAmount) {
			return osmomath.Int{}, domain.InsufficientPoolAssetError{Denom: tokenOutDenom, Required: tokenOutAmount, Available: asset.Amount}
		}
	}

	preWeights, err := e.snapshotConfiguredWeights()
	if err != nil {
		return osmomath.Int{}, err
	}

	rollback := func() {
		if !outAlloyed {
			e.pool.Increase(tokenOutDenom, tokenOutAmount)
		}
		if !inAlloyed && baseIn.IsPositive() {
			_ = e.pool.Decrease(tokenInDenom, baseIn)
		}
	}

	_, err = corrupted.Guard(e.pool, func(p *pool.Pool) (struct{}, error) {
		if !inAlloyed && baseIn.IsPositive() {
			if err := p.Increase(tokenInDenom, baseIn); err != nil {
				return struct{}{}, err
			}
		}
		if !outAlloyed {
			if err := p.Decrease(tokenOutDenom, tokenOutAmount); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		rollback()
		return osmomath.Int{}, err
	}

	if err := e.checkLimits(preWeights); err != nil {
		rollback()
		return osmomath.Int{}, err
	}

	if fee.IsPositive() {
		e.ledger.AddTokens(tokenInDenom, fee)
	}
	if incentiveNormalized.IsPositive() {
		incentivePoolValue, err := e.incentivePoolNormalizedValue()
		if err != nil {
			return osmomath.Int{}, err
		}
		e.ledger.CreditUser(user, incentiveNormalized, incentivePoolValue)
	}
	if inAlloyed {
		_ = e.burnShares(user, requiredIn) // sufficiency already checked above
	}
	if outAlloyed {
		e.mintShares(user, tokenOutAmount)
	}

	e.persist()
	return requiredIn, nil
}
