package transactions

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	log "github.com/sirupsen/logrus"

	"puck-staking/goutils/ethclient"
	"puck-staking/goutils/settings"
)

// ErrTransactionFailed is returned for a mined transaction with a failed status whose revert
// reason could not be recovered.
var ErrTransactionFailed = errors.New("transaction failed on chain")

// SubmitFunc sends one contract call with the prepared transact options.
type SubmitFunc = func(opts *bind.TransactOpts) (*types.Transaction, error)

type Service interface {
	Send(ctx context.Context, submit SubmitFunc) (*types.Transaction, error)
	WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
	Account() common.Address
}

type TxManager struct {
	mu         sync.Mutex
	nonce      uint64
	chainID    *big.Int
	gasPrice   *big.Int
	gasLimit   uint64
	account    common.Address
	privKey    *ecdsa.PrivateKey
	ethService ethclient.Service
}

var _ Service = (*TxManager)(nil)

func NewTxManager(settingsObj *settings.SettingsObj, ethService ethclient.Service) *TxManager {
	privKey, err := GetPrivateKey(settingsObj.Signer.PrivateKey)
	if err != nil {
		log.WithError(err).Fatal("failed to parse signer private key")
	}

	account := common.HexToAddress(settingsObj.Signer.AccountAddress)
	if derived := crypto.PubkeyToAddress(privKey.PublicKey); derived != account {
		log.WithField("configured", account.Hex()).WithField("derived", derived.Hex()).
			Fatal("signer private key does not match the account address")
	}

	var chainID *big.Int

	err = backoff.Retry(func() error {
		chainID, err = ethService.ChainID(context.Background())

		return err
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3))
	if err != nil {
		log.WithError(err).Fatal("failed to get chain id")
	}

	gasPrice, err := ethService.SuggestGasPrice(context.Background())
	if err != nil {
		gasPrice = big.NewInt(10000000)
	}

	txMgr := &TxManager{
		chainID:    chainID,
		gasPrice:   gasPrice,
		gasLimit:   settingsObj.Signer.GasLimit,
		account:    account,
		privKey:    privKey,
		ethService: ethService,
	}

	txMgr.nonce, err = ethService.PendingNonceAt(context.Background(), account)
	if err != nil {
		log.WithError(err).Fatal("failed to get nonce")
	}

	return txMgr
}

// GetPrivateKey parses a hex encoded private key, with or without the 0x prefix.
func GetPrivateKey(privateKey string) (*ecdsa.PrivateKey, error) {
	return crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
}

func (t *TxManager) Account() common.Address {
	return t.account
}

// Send signs and submits one transaction with the next nonce.
// The nonce is only consumed when the node accepted the transaction, otherwise it is resynced from the chain.
func (t *TxManager) Send(ctx context.Context, submit SubmitFunc) (*types.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	opts, err := bind.NewKeyedTransactorWithChainID(t.privKey, t.chainID)
	if err != nil {
		log.WithError(err).Error("failed to create transactor")

		return nil, err
	}

	if gasPrice, err := t.ethService.SuggestGasPrice(ctx); err == nil {
		t.gasPrice = gasPrice
	}

	opts.Context = ctx
	opts.Nonce = new(big.Int).SetUint64(t.nonce)
	opts.GasPrice = t.gasPrice
	opts.GasLimit = t.gasLimit
	opts.Value = big.NewInt(0)

	signedTx, err := submit(opts)
	if err != nil {
		log.WithError(err).WithField("nonce", t.nonce).Error("failed to submit transaction")

		t.resyncNonce(ctx)

		return nil, err
	}

	t.nonce++

	log.WithField("txHash", signedTx.Hash().Hex()).WithField("nonce", signedTx.Nonce()).Info("transaction submitted")

	return signedTx, nil
}

func (t *TxManager) resyncNonce(ctx context.Context) {
	nonce, err := t.ethService.PendingNonceAt(ctx, t.account)
	if err != nil {
		log.WithError(err).Warn("failed to resync nonce, keeping local value")

		return
	}

	t.nonce = nonce
}

// WaitConfirmed blocks until the transaction is mined or ctx is done.
// A failed receipt is replayed with eth_call at its block so the node reports the revert reason.
func (t *TxManager) WaitConfirmed(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, t.ethService, tx)
	if err != nil {
		return nil, err
	}

	if receipt.Status == types.ReceiptStatusSuccessful {
		log.WithField("txHash", tx.Hash().Hex()).WithField("block", receipt.BlockNumber).Info("transaction confirmed")

		return receipt, nil
	}

	msg := ethereum.CallMsg{
		From:     t.account,
		To:       tx.To(),
		Gas:      tx.Gas(),
		GasPrice: tx.GasPrice(),
		Value:    tx.Value(),
		Data:     tx.Data(),
	}

	_, err = t.ethService.CallContract(ctx, msg, receipt.BlockNumber)
	if err != nil {
		log.WithError(err).WithField("txHash", tx.Hash().Hex()).Error("transaction reverted")

		return receipt, err
	}

	log.WithField("txHash", tx.Hash().Hex()).Error("transaction failed without revert reason")

	return receipt, ErrTransactionFailed
}
