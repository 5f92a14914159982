package snapshot

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"puck-staking/goutils/datamodel"
)

var hundred = decimal.NewFromInt(100)

// decimal places kept for stake percentages, wide enough that a one wei stake against a large total stays nonzero
const percentagePrecision int32 = 48

// Build aggregates the raw reads of one refresh cycle into an AccountSnapshot.
// It performs no I/O and is deterministic for equal inputs.
func Build(catalogue []datamodel.TokenDescriptor, reads []datamodel.RawTokenRead, rewards datamodel.Rewards, account string) datamodel.AccountSnapshot {
	byToken := make(map[common.Address]datamodel.RawTokenRead, len(reads))
	for _, read := range reads {
		byToken[read.TokenID] = read
	}

	snapshot := datamodel.AccountSnapshot{
		Account:        account,
		Balances:       make([]datamodel.TokenBalance, 0, len(catalogue)),
		StakedBalances: make([]datamodel.StakedBalance, 0),
		TotalStaked:    decimal.Zero,
	}

	rewardScale := datamodel.DefaultDecimals

	for _, token := range catalogue {
		token = WithDefaults(token)
		if token.Reward {
			rewardScale = token.Scale()
		}

		read := byToken[token.ID]

		snapshot.Balances = append(snapshot.Balances, datamodel.TokenBalance{
			Token:  token,
			Amount: ToDecimal(read.RawBalance, token.Scale()),
		})

		staked := ToDecimal(read.RawStakedBalance, token.Scale())
		if staked.IsZero() {
			continue
		}

		snapshot.TotalStaked = snapshot.TotalStaked.Add(staked)
		snapshot.StakedBalances = append(snapshot.StakedBalances, datamodel.StakedBalance{
			Token:  token,
			Amount: staked,
		})
	}

	for i := range snapshot.StakedBalances {
		snapshot.StakedBalances[i].PercentageOfTotalStake = Percentage(snapshot.StakedBalances[i].Amount, snapshot.TotalStaked)
	}

	snapshot.TotalRewardsEarned = ToDecimal(rewards.Total, rewardScale)
	snapshot.AvailableRewards = ToDecimal(rewards.Available, rewardScale)

	return snapshot
}

// WithDefaults fills the display metadata a catalogue entry is missing.
func WithDefaults(token datamodel.TokenDescriptor) datamodel.TokenDescriptor {
	if token.DisplayName == "" {
		token.DisplayName = token.ID.Hex()
	}

	if token.ImageRef == "" {
		token.ImageRef = datamodel.PlaceholderImage
	}

	if token.Decimals == nil {
		scale := datamodel.DefaultDecimals
		token.Decimals = &scale
	}

	return token
}

// ToDecimal converts a base unit amount into whole units. A nil amount is zero.
func ToDecimal(raw *big.Int, scale int32) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(raw, -scale)
}

// ToBaseUnits converts a whole unit amount into base units, truncating digits beyond the token scale.
func ToBaseUnits(amount decimal.Decimal, scale int32) *big.Int {
	return amount.Shift(scale).Truncate(0).BigInt()
}

// Percentage returns part/total*100, or zero when total is zero.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return part.Mul(hundred).DivRound(total, percentagePrecision)
}

// FormatAmount renders an amount with a fixed number of decimal places.
func FormatAmount(amount decimal.Decimal, places int32) string {
	return amount.StringFixed(places)
}
