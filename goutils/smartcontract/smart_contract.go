package smartcontract

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"

	contractApi "puck-staking/goutils/smartcontract/api"
)

// Service is the staking contract surface used by the ledger gateway.
type Service interface {
	BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error)
	StakedBalance(ctx context.Context, token, account common.Address) (*big.Int, error)
	GetRewards(ctx context.Context, account common.Address) (*big.Int, error)
	GetAvailableRewards(ctx context.Context, account common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender, token common.Address) (*big.Int, error)
	Approve(opts *bind.TransactOpts, spender, token common.Address, amount *big.Int) (*types.Transaction, error)
	Stake(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error)
	Unstake(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error)
	Claim(opts *bind.TransactOpts) (*types.Transaction, error)
	Address() common.Address
}

type ContractApi struct {
	address common.Address
	conn    *contractApi.PuckCityStaking
}

var _ Service = (*ContractApi)(nil)

func InitContractAPI(contractAddress string, backend bind.ContractBackend) Service {
	address := common.HexToAddress(contractAddress)

	apiConn, err := contractApi.NewPuckCityStaking(address, backend)
	if err != nil {
		log.WithError(err).Fatal("failed to init api connection")
	}

	return &ContractApi{
		address: address,
		conn:    apiConn,
	}
}

func (c *ContractApi) Address() common.Address {
	return c.address
}

func (c *ContractApi) BalanceOf(ctx context.Context, token, account common.Address) (*big.Int, error) {
	return c.conn.BalanceOf(&bind.CallOpts{Context: ctx}, token, account)
}

func (c *ContractApi) StakedBalance(ctx context.Context, token, account common.Address) (*big.Int, error) {
	return c.conn.StakedBalance(&bind.CallOpts{Context: ctx}, token, account)
}

func (c *ContractApi) GetRewards(ctx context.Context, account common.Address) (*big.Int, error) {
	return c.conn.GetRewards(&bind.CallOpts{Context: ctx}, account)
}

func (c *ContractApi) GetAvailableRewards(ctx context.Context, account common.Address) (*big.Int, error) {
	return c.conn.GetAvailableRewards(&bind.CallOpts{Context: ctx}, account)
}

func (c *ContractApi) Allowance(ctx context.Context, owner, spender, token common.Address) (*big.Int, error) {
	return c.conn.Allowance(&bind.CallOpts{Context: ctx, From: owner}, owner, spender, token)
}

func (c *ContractApi) Approve(opts *bind.TransactOpts, spender, token common.Address, amount *big.Int) (*types.Transaction, error) {
	return c.conn.Approve(opts, spender, token, amount)
}

func (c *ContractApi) Stake(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error) {
	return c.conn.Stake(opts, token, amount)
}

func (c *ContractApi) Unstake(opts *bind.TransactOpts, token common.Address, amount *big.Int) (*types.Transaction, error) {
	return c.conn.Unstake(opts, token, amount)
}

func (c *ContractApi) Claim(opts *bind.TransactOpts) (*types.Transaction, error) {
	return c.conn.Claim(opts)
}
