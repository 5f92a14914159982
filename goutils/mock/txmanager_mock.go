package mock

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type TxManagerMock struct {
	AccountValue      common.Address
	SendMock          func(ctx context.Context, submit func(opts *bind.TransactOpts) (*types.Transaction, error)) (*types.Transaction, error)
	WaitConfirmedMock func(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

func (m TxManagerMock) Send(ctx context.Context, submit func(opts *bind.TransactOpts) (*types.Transaction, error)) (*types.Transaction, error) {
	return m.SendMock(ctx, submit)
}

func (m TxManagerMock) WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return m.WaitConfirmedMock(ctx, tx)
}

func (m TxManagerMock) Account() common.Address {
	return m.AccountValue
}
