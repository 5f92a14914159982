package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"puck-staking/goutils/settings"
	"puck-staking/goutils/smartcontract"
	"puck-staking/goutils/smartcontract/transactions"
)

// Gateway is the typed boundary to the external staking contract.
// Reads are retried once on network failure, writes are never retried.
type Gateway interface {
	ReadBalance(ctx context.Context, tokenID, account common.Address) (*big.Int, error)
	ReadStakedBalance(ctx context.Context, tokenID, account common.Address) (*big.Int, error)
	ReadTotalRewards(ctx context.Context, account common.Address) (*big.Int, error)
	ReadAvailableRewards(ctx context.Context, account common.Address) (*big.Int, error)
	ReadAllowance(ctx context.Context, owner, spender, tokenID common.Address) (*big.Int, error)
	Approve(ctx context.Context, tokenID, spender common.Address, amount *big.Int) (*types.Transaction, error)
	Stake(ctx context.Context, tokenID common.Address, amount *big.Int) (*types.Transaction, error)
	Unstake(ctx context.Context, tokenID common.Address, amount *big.Int) (*types.Transaction, error)
	Claim(ctx context.Context) (*types.Transaction, error)
	WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	Account() common.Address
	Spender() common.Address
}

type ContractGateway struct {
	contract       smartcontract.Service
	txMgr          transactions.Service
	limiter        *rate.Limiter
	retryDelay     time.Duration
	confirmTimeout time.Duration
}

var _ Gateway = (*ContractGateway)(nil)

func NewContractGateway(settingsObj *settings.SettingsObj, contract smartcontract.Service, txMgr transactions.Service) *ContractGateway {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if rl := settingsObj.RPCRateLimiter; rl != nil && rl.RequestsPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSec), rl.Burst)
	}

	return &ContractGateway{
		contract:       contract,
		txMgr:          txMgr,
		limiter:        limiter,
		retryDelay:     time.Duration(settingsObj.RetryDelayMillis) * time.Millisecond,
		confirmTimeout: time.Duration(settingsObj.ConfirmationTimeoutSecs) * time.Second,
	}
}

func (g *ContractGateway) Account() common.Address {
	return g.txMgr.Account()
}

func (g *ContractGateway) Spender() common.Address {
	return g.contract.Address()
}

func (g *ContractGateway) ReadBalance(ctx context.Context, tokenID, account common.Address) (*big.Int, error) {
	return g.read(ctx, "balanceOf", func(ctx context.Context) (*big.Int, error) {
		return g.contract.BalanceOf(ctx, tokenID, account)
	})
}

func (g *ContractGateway) ReadStakedBalance(ctx context.Context, tokenID, account common.Address) (*big.Int, error) {
	return g.read(ctx, "stakedBalance", func(ctx context.Context) (*big.Int, error) {
		return g.contract.StakedBalance(ctx, tokenID, account)
	})
}

func (g *ContractGateway) ReadTotalRewards(ctx context.Context, account common.Address) (*big.Int, error) {
	return g.read(ctx, "getRewards", func(ctx context.Context) (*big.Int, error) {
		return g.contract.GetRewards(ctx, account)
	})
}

func (g *ContractGateway) ReadAvailableRewards(ctx context.Context, account common.Address) (*big.Int, error) {
	return g.read(ctx, "getAvailableRewards", func(ctx context.Context) (*big.Int, error) {
		return g.contract.GetAvailableRewards(ctx, account)
	})
}

func (g *ContractGateway) ReadAllowance(ctx context.Context, owner, spender, tokenID common.Address) (*big.Int, error) {
	return g.read(ctx, "allowance", func(ctx context.Context) (*big.Int, error) {
		return g.contract.Allowance(ctx, owner, spender, tokenID)
	})
}

func (g *ContractGateway) read(ctx context.Context, method string, call func(ctx context.Context) (*big.Int, error)) (*big.Int, error) {
	var value *big.Int

	operation := func() error {
		if err := g.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		result, err := call(ctx)
		if err != nil {
			classified := classifyError(err)
			if errors.Is(classified, ErrNetworkUnavailable) {
				log.WithError(err).WithField("method", method).Warn("contract read failed, retrying")

				return classified
			}

			return backoff.Permanent(classified)
		}

		if result == nil || result.Sign() < 0 {
			return backoff.Permanent(fmt.Errorf("%w: %s returned %v", ErrInvalidRead, method, result))
		}

		value = result

		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(g.retryDelay), 1), ctx))
	if err != nil {
		log.WithError(err).WithField("method", method).Error("failed to read from staking contract")

		return nil, err
	}

	return value, nil
}

func (g *ContractGateway) Approve(ctx context.Context, tokenID, spender common.Address, amount *big.Int) (*types.Transaction, error) {
	return g.write(ctx, "approve", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return g.contract.Approve(opts, spender, tokenID, amount)
	})
}

func (g *ContractGateway) Stake(ctx context.Context, tokenID common.Address, amount *big.Int) (*types.Transaction, error) {
	return g.write(ctx, "stake", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return g.contract.Stake(opts, tokenID, amount)
	})
}

func (g *ContractGateway) Unstake(ctx context.Context, tokenID common.Address, amount *big.Int) (*types.Transaction, error) {
	return g.write(ctx, "unstake", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return g.contract.Unstake(opts, tokenID, amount)
	})
}

func (g *ContractGateway) Claim(ctx context.Context) (*types.Transaction, error) {
	return g.write(ctx, "claim", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return g.contract.Claim(opts)
	})
}

func (g *ContractGateway) write(ctx context.Context, method string, submit transactions.SubmitFunc) (*types.Transaction, error) {
	tx, err := g.txMgr.Send(ctx, submit)
	if err != nil {
		log.WithError(err).WithField("method", method).Error("failed to submit transaction to staking contract")

		return nil, classifyError(err)
	}

	return tx, nil
}

// WaitConfirmed waits for the transaction receipt for at most the configured confirmation timeout.
// Running out of time yields ErrTransactionTimedOut, the transaction may still be mined later.
func (g *ContractGateway) WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	waitCtx := ctx
	if g.confirmTimeout > 0 {
		var cancel context.CancelFunc

		waitCtx, cancel = context.WithTimeout(ctx, g.confirmTimeout)
		defer cancel()
	}

	receipt, err := g.txMgr.WaitConfirmed(waitCtx, tx)
	if err == nil {
		return receipt, nil
	}

	if ctx.Err() == nil && errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
		log.WithField("txHash", tx.Hash().Hex()).Warn("transaction not confirmed in time")

		return nil, fmt.Errorf("%w: %s", ErrTransactionTimedOut, tx.Hash().Hex())
	}

	if errors.Is(err, transactions.ErrTransactionFailed) {
		return receipt, &RevertError{Err: err}
	}

	return receipt, classifyError(err)
}
