package datamodel

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// DefaultDecimals is the unit scale used when a token does not declare one.
const DefaultDecimals int32 = 18

// PlaceholderImage is rendered for tokens without an image reference.
const PlaceholderImage string = "placeholder.png"

// TokenDescriptor is one entry of the static token catalogue.
type TokenDescriptor struct {
	ID          common.Address `json:"address" validate:"required"`
	DisplayName string         `json:"name"`
	ImageRef    string         `json:"image"`
	Symbol      string         `json:"symbol,omitempty"`
	Decimals    *int32         `json:"decimals,omitempty" validate:"omitempty,min=0,max=77"`
	Reward      bool           `json:"reward,omitempty"`
}

// Scale returns the declared decimals of the token or DefaultDecimals.
func (t TokenDescriptor) Scale() int32 {
	if t.Decimals == nil {
		return DefaultDecimals
	}

	return *t.Decimals
}

// RawTokenRead holds the base-unit amounts read for one token during a refresh cycle.
type RawTokenRead struct {
	TokenID          common.Address
	RawBalance       *big.Int
	RawStakedBalance *big.Int
}

// Rewards holds the reward figures of an account in base units of the reward token.
type Rewards struct {
	Total     *big.Int
	Available *big.Int
}

type TokenBalance struct {
	Token  TokenDescriptor `json:"token"`
	Amount decimal.Decimal `json:"amount"`
}

type StakedBalance struct {
	Token                  TokenDescriptor `json:"token"`
	Amount                 decimal.Decimal `json:"amount"`
	PercentageOfTotalStake decimal.Decimal `json:"percentageOfTotalStake"`
}

// AccountSnapshot is the read model of one account at one point in time.
// Balances lists every catalogue token in catalogue order, StakedBalances only the tokens with a nonzero stake.
type AccountSnapshot struct {
	Account            string          `json:"account"`
	Balances           []TokenBalance  `json:"balances"`
	StakedBalances     []StakedBalance `json:"stakedBalances"`
	TotalStaked        decimal.Decimal `json:"totalStaked"`
	TotalRewardsEarned decimal.Decimal `json:"totalRewardsEarned"`
	AvailableRewards   decimal.Decimal `json:"availableRewards"`
}

// Balance returns the wallet balance of the given token.
func (s *AccountSnapshot) Balance(tokenID common.Address) (decimal.Decimal, bool) {
	for _, b := range s.Balances {
		if b.Token.ID == tokenID {
			return b.Amount, true
		}
	}

	return decimal.Zero, false
}

// Staked returns the staked balance of the given token, false when nothing is staked.
func (s *AccountSnapshot) Staked(tokenID common.Address) (StakedBalance, bool) {
	for _, b := range s.StakedBalances {
		if b.Token.ID == tokenID {
			return b, true
		}
	}

	return StakedBalance{}, false
}

type ActionKind string

const (
	ActionStake   ActionKind = "stake"
	ActionUnstake ActionKind = "unstake"
	ActionClaim   ActionKind = "claim"
)

// PendingAction is a user submitted state change, owned by the controller until it resolves.
// Stake and unstake address the token by TokenID or, when TokenID is zero, by its display name.
type PendingAction struct {
	Kind    ActionKind      `json:"kind" validate:"required,oneof=stake unstake claim"`
	TokenID common.Address  `json:"tokenId"`
	Token   string          `json:"token,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
}

type ActionOutcome string

const (
	OutcomeSucceeded ActionOutcome = "SUCCEEDED"
	OutcomeFailed    ActionOutcome = "FAILED"
	OutcomeBusy      ActionOutcome = "BUSY"
	OutcomeRejected  ActionOutcome = "REJECTED" // user declined signing
	OutcomeTimedOut  ActionOutcome = "TIMED_OUT"
	OutcomeInvalid   ActionOutcome = "INVALID"
)

// ActionResult is emitted to the renderer once an action reaches a terminal state.
type ActionResult struct {
	Action        PendingAction `json:"action"`
	Outcome       ActionOutcome `json:"outcome"`
	Reason        string        `json:"reason,omitempty"`
	TxHash        string        `json:"txHash,omitempty"`
	ApproveTxHash string        `json:"approveTxHash,omitempty"`
	Timestamp     int64         `json:"timestamp"`
}

// Issue is the payload sent to the issue reporting endpoints.
type Issue struct {
	InstanceID      string `json:"instanceID"`
	IssueType       string `json:"issueType"`
	Account         string `json:"account"`
	TimeOfReporting string `json:"timeOfReporting"`
	Extra           string `json:"extra"`
}
