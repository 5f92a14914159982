package mock

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type GatewayMock struct {
	AccountValue             common.Address
	SpenderValue             common.Address
	ReadBalanceMock          func(ctx context.Context, tokenID, account common.Address) (*big.Int, error)
	ReadStakedBalanceMock    func(ctx context.Context, tokenID, account common.Address) (*big.Int, error)
	ReadTotalRewardsMock     func(ctx context.Context, account common.Address) (*big.Int, error)
	ReadAvailableRewardsMock func(ctx context.Context, account common.Address) (*big.Int, error)
	ReadAllowanceMock        func(ctx context.Context, owner, spender, tokenID common.Address) (*big.Int, error)
	ApproveMock              func(ctx context.Context, tokenID, spender common.Address, amount *big.Int) (*types.Transaction, error)
	StakeMock                func(ctx context.Context, tokenID common.Address, amount *big.Int) (*types.Transaction, error)
	UnstakeMock              func(ctx context.Context, tokenID common.Address, amount *big.Int) (*types.Transaction, error)
	ClaimMock                func(ctx context.Context) (*types.Transaction, error)
	WaitConfirmedMock        func(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

func (m *GatewayMock) Account() common.Address {
	return m.AccountValue
}

func (m *GatewayMock) Spender() common.Address {
	return m.SpenderValue
}

func (m *GatewayMock) ReadBalance(ctx context.Context, tokenID, account common.Address) (*big.Int, error) {
	return m.ReadBalanceMock(ctx, tokenID, account)
}

func (m *GatewayMock) ReadStakedBalance(ctx context.Context, tokenID, account common.Address) (*big.Int, error) {
	return m.ReadStakedBalanceMock(ctx, tokenID, account)
}

func (m *GatewayMock) ReadTotalRewards(ctx context.Context, account common.Address) (*big.Int, error) {
	return m.ReadTotalRewardsMock(ctx, account)
}

func (m *GatewayMock) ReadAvailableRewards(ctx context.Context, account common.Address) (*big.Int, error) {
	return m.ReadAvailableRewardsMock(ctx, account)
}

func (m *GatewayMock) ReadAllowance(ctx context.Context, owner, spender, tokenID common.Address) (*big.Int, error) {
	return m.ReadAllowanceMock(ctx, owner, spender, tokenID)
}

func (m *GatewayMock) Approve(ctx context.Context, tokenID, spender common.Address, amount *big.Int) (*types.Transaction, error) {
	return m.ApproveMock(ctx, tokenID, spender, amount)
}

func (m *GatewayMock) Stake(ctx context.Context, tokenID common.Address, amount *big.Int) (*types.Transaction, error) {
	return m.StakeMock(ctx, tokenID, amount)
}

func (m *GatewayMock) Unstake(ctx context.Context, tokenID common.Address, amount *big.Int) (*types.Transaction, error) {
	return m.UnstakeMock(ctx, tokenID, amount)
}

func (m *GatewayMock) Claim(ctx context.Context) (*types.Transaction, error) {
	return m.ClaimMock(ctx)
}

func (m *GatewayMock) WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return m.WaitConfirmedMock(ctx, tx)
}
