package mock

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type EthServiceMock struct {
	ChainIDMock            func(ctx context.Context) (*big.Int, error)
	PendingNonceAtMock     func(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPriceMock    func(ctx context.Context) (*big.Int, error)
	BlockNumberMock        func(ctx context.Context) (uint64, error)
	TransactionReceiptMock func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CodeAtMock             func(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
	CallContractMock       func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

func (m EthServiceMock) ChainID(ctx context.Context) (*big.Int, error) {
	return m.ChainIDMock(ctx)
}

func (m EthServiceMock) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return m.PendingNonceAtMock(ctx, account)
}

func (m EthServiceMock) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return m.SuggestGasPriceMock(ctx)
}

func (m EthServiceMock) BlockNumber(ctx context.Context) (uint64, error) {
	return m.BlockNumberMock(ctx)
}

func (m EthServiceMock) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return m.TransactionReceiptMock(ctx, txHash)
}

func (m EthServiceMock) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return m.CodeAtMock(ctx, contract, blockNumber)
}

func (m EthServiceMock) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return m.CallContractMock(ctx, msg, blockNumber)
}
