package ethclient

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	log "github.com/sirupsen/logrus"

	"puck-staking/goutils/httpclient"
	"puck-staking/goutils/settings"
)

// Service is the subset of the json-rpc api used for transaction bookkeeping.
// It also satisfies bind.DeployBackend so it can be handed to bind.WaitMined.
type Service interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type Client struct {
	client *ethclient.Client
}

var _ Service = (*Client)(nil)

func NewClient(settingsObj *settings.SettingsObj) (Service, *ethclient.Client) {
	httpClient := httpclient.GetRawHTTPClient(settingsObj.HttpClient)

	rpClient, err := rpc.DialOptions(context.Background(), settingsObj.AnchorChainRPCURL, rpc.WithHTTPClient(httpClient))
	if err != nil {
		log.WithError(err).Fatal("failed to init rpc client")
	}

	ethClient := ethclient.NewClient(rpClient)

	return &Client{client: ethClient}, ethClient
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	blockNumber, err := c.client.BlockNumber(ctx)
	if err != nil {
		log.WithError(err).Error("failed to get block number")
	}

	return blockNumber, err
}

func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		log.WithError(err).Error("failed to get gas price")
	}

	return gasPrice, err
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	chainId, err := c.client.ChainID(ctx)
	if err != nil {
		log.WithError(err).Error("failed to get chain id")
	}

	return chainId, err
}

func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := c.client.PendingNonceAt(ctx, account)
	if err != nil {
		log.WithError(err).Error("failed to get nonce")
	}

	return nonce, err
}

// TransactionReceipt does not log ethereum.NotFound, bind.WaitMined polls it until the tx is mined.
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	receipt, err := c.client.TransactionReceipt(ctx, txHash)
	if err != nil && err != ethereum.NotFound {
		log.WithError(err).WithField("txHash", txHash.Hex()).Error("failed to get transaction receipt")
	}

	return receipt, err
}

func (c *Client) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	code, err := c.client.CodeAt(ctx, contract, blockNumber)
	if err != nil {
		log.WithError(err).Error("failed to get contract code")
	}

	return code, err
}

func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return c.client.CallContract(ctx, msg, blockNumber)
}
