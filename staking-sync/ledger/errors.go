package ledger

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

var (
	ErrNetworkUnavailable  = errors.New("network unavailable")
	ErrTransactionRejected = errors.New("transaction rejected by signer")
	ErrTransactionTimedOut = errors.New("transaction confirmation timed out")
	ErrInvalidRead         = errors.New("invalid value returned by contract")
)

// rejectedCode is the EIP-1193 code for a signing request declined by the user.
const rejectedCode = 4001

// RevertError carries the revert reason reported by the contract, verbatim.
type RevertError struct {
	Reason string
	Err    error
}

func (e *RevertError) Error() string {
	if e.Reason == "" {
		return "contract call reverted"
	}

	return "contract call reverted: " + e.Reason
}

func (e *RevertError) Unwrap() error {
	return e.Err
}

// classifiedError tags an error with one of the ledger sentinels and keeps the original in the chain.
type classifiedError struct {
	kind error
	err  error
}

func (e *classifiedError) Error() string {
	return e.kind.Error() + ": " + e.err.Error()
}

func (e *classifiedError) Is(target error) bool {
	return target == e.kind
}

func (e *classifiedError) Unwrap() error {
	return e.err
}

// classifyError maps a node or signer error onto the ledger taxonomy, keeping the original error wrapped.
// Errors that match no category are returned untouched.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if isClassified(err) {
		return err
	}

	if revertErr := asRevert(err); revertErr != nil {
		return revertErr
	}

	if isRejected(err) {
		return &classifiedError{kind: ErrTransactionRejected, err: err}
	}

	if isNetwork(err) {
		return &classifiedError{kind: ErrNetworkUnavailable, err: err}
	}

	return err
}

func isClassified(err error) bool {
	var revertErr *RevertError

	return errors.As(err, &revertErr) ||
		errors.Is(err, ErrNetworkUnavailable) ||
		errors.Is(err, ErrTransactionRejected) ||
		errors.Is(err, ErrTransactionTimedOut) ||
		errors.Is(err, ErrInvalidRead)
}

func asRevert(err error) *RevertError {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := decodeRevertData(dataErr.ErrorData()); ok {
			return &RevertError{Reason: reason, Err: err}
		}
	}

	msg := err.Error()

	idx := strings.Index(msg, "execution reverted")
	if idx < 0 {
		return nil
	}

	reason := strings.TrimPrefix(msg[idx:], "execution reverted")
	reason = strings.TrimSpace(strings.TrimPrefix(reason, ":"))

	return &RevertError{Reason: reason, Err: err}
}

func decodeRevertData(data interface{}) (string, bool) {
	hexData, ok := data.(string)
	if !ok {
		return "", false
	}

	raw, err := hexutil.Decode(hexData)
	if err != nil {
		return "", false
	}

	reason, err := abi.UnpackRevert(raw)
	if err != nil {
		return "", false
	}

	return reason, true
}

func isRejected(err error) bool {
	if errors.Is(err, bind.ErrNotAuthorized) {
		return true
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == rejectedCode {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "user rejected") || strings.Contains(msg, "user denied")
}

func isNetwork(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500 || httpErr.StatusCode == 429
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded)
}
