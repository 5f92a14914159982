package mock

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type SmartContractAPIMock struct {
	AddressValue            common.Address
	BalanceOfMock           func(ctx context.Context, token, account common.Address) (*big.Int, error)
	StakedBalanceMock       func(ctx context.Context, token, account common.Address) (*big.Int, error)
	GetRewardsMock          func(ctx context.Context, account common.Address) (*big.Int, error)
	GetAvailableRewardsMock func(ctx context.Context, account common.Address) (*big.Int, error)
	AllowanceMock           func(ctx context.Context, owner, spender, token common.Address) (*big.Int, error)
	ApproveMock             func(opts *bind.TransactOpts, spender, token common.Address, amount *big.Int) (*types.Transaction, error)
	StakeMock               func(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error)
	UnstakeMock             func(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error)
	ClaimMock               func(opts *bind.TransactOpts) (*types.Transaction, error)
}

func (m SmartContractAPIMock) Address() common.Address {
	return m.AddressValue
}

func (m SmartContractAPIMock) BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error) {
	return m.BalanceOfMock(ctx, token, account)
}

func (m SmartContractAPIMock) StakedBalance(ctx context.Context, token, account common.Address) (*big.Int, error) {
	return m.StakedBalanceMock(ctx, token, account)
}

func (m SmartContractAPIMock) GetRewards(ctx context.Context, account common.Address) (*big.Int, error) {
	return m.GetRewardsMock(ctx, account)
}

func (m SmartContractAPIMock) GetAvailableRewards(ctx context.Context, account common.Address) (*big.Int, error) {
	return m.GetAvailableRewardsMock(ctx, account)
}

func (m SmartContractAPIMock) Allowance(ctx context.Context, owner, spender, token common.Address) (*big.Int, error) {
	return m.AllowanceMock(ctx, owner, spender, token)
}

func (m SmartContractAPIMock) Approve(opts *bind.TransactOpts, spender, token common.Address, amount *big.Int) (*types.Transaction, error) {
	return m.ApproveMock(opts, spender, token, amount)
}

func (m SmartContractAPIMock) Stake(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error) {
	return m.StakeMock(opts, token, amount)
}

func (m SmartContractAPIMock) Unstake(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error) {
	return m.UnstakeMock(opts, token, amount)
}

func (m SmartContractAPIMock) Claim(opts *bind.TransactOpts) (*types.Transaction, error) {
	return m.ClaimMock(opts)
}
