package snapshot

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puck-staking/goutils/datamodel"
)

const testAccount = "0x1000000000000000000000000000000000000001"

var (
	detroit = datamodel.TokenDescriptor{ID: common.HexToAddress("0xa1"), DisplayName: "Detroit", ImageRef: "detroit.png"}
	boston  = datamodel.TokenDescriptor{ID: common.HexToAddress("0xa2"), DisplayName: "Boston", ImageRef: "boston.png"}
	puck    = datamodel.TokenDescriptor{ID: common.HexToAddress("0xa3"), DisplayName: "PUCK", ImageRef: "puck.png", Reward: true}
)

func wei(n int64) *big.Int {
	return big.NewInt(n)
}

func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

func zeroReads(catalogue []datamodel.TokenDescriptor) []datamodel.RawTokenRead {
	reads := make([]datamodel.RawTokenRead, 0, len(catalogue))
	for _, token := range catalogue {
		reads = append(reads, datamodel.RawTokenRead{TokenID: token.ID, RawBalance: wei(0), RawStakedBalance: wei(0)})
	}

	return reads
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()

	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

func TestBuildZeroState(t *testing.T) {
	catalogue := []datamodel.TokenDescriptor{detroit, boston, puck}

	snapshot := Build(catalogue, zeroReads(catalogue), datamodel.Rewards{Total: wei(0), Available: wei(0)}, testAccount)

	assert.Equal(t, testAccount, snapshot.Account)
	require.Len(t, snapshot.Balances, 3)
	assert.Empty(t, snapshot.StakedBalances)
	assert.True(t, snapshot.TotalStaked.IsZero())
	assert.True(t, snapshot.TotalRewardsEarned.IsZero())
	assert.True(t, snapshot.AvailableRewards.IsZero())

	for i, balance := range snapshot.Balances {
		assert.Equal(t, catalogue[i].ID, balance.Token.ID)
		assert.True(t, balance.Amount.IsZero())
	}
}

func TestBuildSingleStake(t *testing.T) {
	catalogue := []datamodel.TokenDescriptor{detroit, boston}
	reads := []datamodel.RawTokenRead{
		{TokenID: detroit.ID, RawBalance: wei(0), RawStakedBalance: wei(500)},
		{TokenID: boston.ID, RawBalance: ether(3), RawStakedBalance: wei(0)},
	}

	snapshot := Build(catalogue, reads, datamodel.Rewards{Total: wei(0), Available: wei(0)}, testAccount)

	require.Len(t, snapshot.StakedBalances, 1)
	assert.Equal(t, detroit.ID, snapshot.StakedBalances[0].Token.ID)
	assert.Equal(t, "0.0000000000000005", snapshot.StakedBalances[0].Amount.String())
	assertDecimal(t, "100", snapshot.StakedBalances[0].PercentageOfTotalStake)
	assert.Equal(t, "0.0000000000000005", snapshot.TotalStaked.String())

	bostonBalance, ok := snapshot.Balance(boston.ID)
	require.True(t, ok)
	assertDecimal(t, "3", bostonBalance)

	_, staked := snapshot.Staked(boston.ID)
	assert.False(t, staked)
}

func TestBuildPercentages(t *testing.T) {
	catalogue := []datamodel.TokenDescriptor{detroit, boston}
	reads := []datamodel.RawTokenRead{
		{TokenID: detroit.ID, RawBalance: wei(0), RawStakedBalance: ether(300)},
		{TokenID: boston.ID, RawBalance: wei(0), RawStakedBalance: ether(700)},
	}

	snapshot := Build(catalogue, reads, datamodel.Rewards{Total: wei(0), Available: wei(0)}, testAccount)

	require.Len(t, snapshot.StakedBalances, 2)
	assertDecimal(t, "1000", snapshot.TotalStaked)
	assertDecimal(t, "30", snapshot.StakedBalances[0].PercentageOfTotalStake)
	assertDecimal(t, "70", snapshot.StakedBalances[1].PercentageOfTotalStake)
}

func TestBuildInvariants(t *testing.T) {
	third := datamodel.TokenDescriptor{ID: common.HexToAddress("0xa4"), DisplayName: "Denver"}
	catalogue := []datamodel.TokenDescriptor{detroit, boston, third, puck}
	reads := []datamodel.RawTokenRead{
		{TokenID: detroit.ID, RawBalance: ether(1), RawStakedBalance: ether(1)},
		{TokenID: boston.ID, RawBalance: ether(2), RawStakedBalance: ether(1)},
		{TokenID: third.ID, RawBalance: ether(3), RawStakedBalance: ether(1)},
		{TokenID: puck.ID, RawBalance: ether(4), RawStakedBalance: wei(0)},
	}

	snapshot := Build(catalogue, reads, datamodel.Rewards{Total: ether(5), Available: ether(2)}, testAccount)

	sum := decimal.Zero
	percentages := decimal.Zero

	for _, staked := range snapshot.StakedBalances {
		sum = sum.Add(staked.Amount)
		percentages = percentages.Add(staked.PercentageOfTotalStake)
	}

	assert.True(t, sum.Equal(snapshot.TotalStaked))
	assert.True(t, percentages.Sub(decimal.NewFromInt(100)).Abs().LessThan(decimal.RequireFromString("0.000001")))
	assertDecimal(t, "5", snapshot.TotalRewardsEarned)
	assertDecimal(t, "2", snapshot.AvailableRewards)
}

func TestBuildIsDeterministic(t *testing.T) {
	catalogue := []datamodel.TokenDescriptor{detroit, boston}
	reads := []datamodel.RawTokenRead{
		{TokenID: detroit.ID, RawBalance: wei(10), RawStakedBalance: wei(20)},
		{TokenID: boston.ID, RawBalance: wei(30), RawStakedBalance: wei(40)},
	}
	rewards := datamodel.Rewards{Total: wei(1), Available: wei(1)}

	assert.Equal(t, Build(catalogue, reads, rewards, testAccount), Build(catalogue, reads, rewards, testAccount))
}

func TestBuildMissingMetadata(t *testing.T) {
	bare := datamodel.TokenDescriptor{ID: common.HexToAddress("0xb1")}

	snapshot := Build([]datamodel.TokenDescriptor{bare}, []datamodel.RawTokenRead{
		{TokenID: bare.ID, RawBalance: ether(1), RawStakedBalance: wei(0)},
	}, datamodel.Rewards{}, testAccount)

	require.Len(t, snapshot.Balances, 1)

	token := snapshot.Balances[0].Token
	assert.Equal(t, bare.ID.Hex(), token.DisplayName)
	assert.Equal(t, datamodel.PlaceholderImage, token.ImageRef)
	assert.Equal(t, datamodel.DefaultDecimals, token.Scale())
	assertDecimal(t, "1", snapshot.Balances[0].Amount)
	assert.True(t, snapshot.TotalRewardsEarned.IsZero())
	assert.Nil(t, bare.Decimals)
}

func TestBuildUsesTokenDecimals(t *testing.T) {
	six := int32(6)
	usdLike := datamodel.TokenDescriptor{ID: common.HexToAddress("0xc1"), DisplayName: "Six", Decimals: &six}
	rewardToken := datamodel.TokenDescriptor{ID: common.HexToAddress("0xc2"), DisplayName: "PUCK", Decimals: &six, Reward: true}

	snapshot := Build([]datamodel.TokenDescriptor{usdLike, rewardToken}, []datamodel.RawTokenRead{
		{TokenID: usdLike.ID, RawBalance: wei(2500000), RawStakedBalance: wei(1000000)},
		{TokenID: rewardToken.ID, RawBalance: wei(0), RawStakedBalance: wei(0)},
	}, datamodel.Rewards{Total: wei(1500000), Available: wei(500000)}, testAccount)

	assertDecimal(t, "2.5", snapshot.Balances[0].Amount)
	assertDecimal(t, "1", snapshot.TotalStaked)
	assertDecimal(t, "1.5", snapshot.TotalRewardsEarned)
	assertDecimal(t, "0.5", snapshot.AvailableRewards)
}

func TestBuildTreatsMissingReadAsZero(t *testing.T) {
	snapshot := Build([]datamodel.TokenDescriptor{detroit}, nil, datamodel.Rewards{}, testAccount)

	require.Len(t, snapshot.Balances, 1)
	assert.True(t, snapshot.Balances[0].Amount.IsZero())
	assert.Empty(t, snapshot.StakedBalances)
}

func TestUnitConversions(t *testing.T) {
	assert.Equal(t, ether(2), ToBaseUnits(decimal.NewFromInt(2), 18))
	assert.Equal(t, big.NewInt(1234567), ToBaseUnits(decimal.RequireFromString("1.2345678"), 6))
	assertDecimal(t, "0", Percentage(decimal.NewFromInt(5), decimal.Zero))
	assertDecimal(t, "25", Percentage(decimal.NewFromInt(1), decimal.NewFromInt(4)))
}

func TestPercentageOfTinyStakeIsNotZero(t *testing.T) {
	total := ToDecimal(new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil), 18)
	part := ToDecimal(big.NewInt(1000), 18)

	pct := Percentage(part, total)
	assert.True(t, pct.IsPositive(), "expected a positive percentage, got %s", pct.String())
	assertDecimal(t, "0.0000000000000000000000001", pct)

	catalogue := []datamodel.TokenDescriptor{detroit, boston}
	snapshot := Build(catalogue, []datamodel.RawTokenRead{
		{TokenID: detroit.ID, RawBalance: wei(0), RawStakedBalance: wei(1000)},
		{TokenID: boston.ID, RawBalance: wei(0), RawStakedBalance: new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)},
	}, datamodel.Rewards{}, testAccount)

	require.Len(t, snapshot.StakedBalances, 2)
	assert.True(t, snapshot.StakedBalances[0].PercentageOfTotalStake.IsPositive())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "0", expected: "0.00"},
		{amount: "1.005", expected: "1.01"},
		{amount: "12.3", expected: "12.30"},
		{amount: "0.0000000000000005", expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(decimal.RequireFromString(tt.amount), 2))
		})
	}
}
