package engine

import "github.com/osmosis-labs/osmosis/osmomath"

// Coin is one exact amount of a denom, used for join deposits, exit
// withdrawals and incentive redemptions.
type Coin struct {
	Denom  string
	Amount osmomath.Int
}

// AssetInput seeds one new pool asset for AddNewAssets.
type AssetInput struct {
	Denom               string
	Amount              osmomath.Int
	NormalizationFactor osmomath.Int
}
