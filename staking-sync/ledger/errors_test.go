package ledger

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nodeError struct {
	msg  string
	code int
	data interface{}
}

func (e nodeError) Error() string          { return e.msg }
func (e nodeError) ErrorCode() int         { return e.code }
func (e nodeError) ErrorData() interface{} { return e.data }

func revertData(t *testing.T, reason string) string {
	t.Helper()

	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)

	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	require.NoError(t, err)

	return hexutil.Encode(append([]byte{0x08, 0xc3, 0x79, 0xa0}, packed...))
}

func TestClassifyError(t *testing.T) {
	plain := errors.New("something else")

	tests := []struct {
		name     string
		err      error
		sentinel error
		reason   string
		revert   bool
	}{
		{
			name:     "connection refused",
			err:      &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
			sentinel: ErrNetworkUnavailable,
		},
		{
			name:     "bad gateway",
			err:      rpc.HTTPError{StatusCode: 502, Status: "502 Bad Gateway"},
			sentinel: ErrNetworkUnavailable,
		},
		{
			name: "client error status is not a network failure",
			err:  rpc.HTTPError{StatusCode: 400, Status: "400 Bad Request"},
		},
		{
			name:     "signer not authorized",
			err:      fmt.Errorf("sign: %w", bind.ErrNotAuthorized),
			sentinel: ErrTransactionRejected,
		},
		{
			name:     "user rejected code",
			err:      nodeError{msg: "request declined", code: rejectedCode},
			sentinel: ErrTransactionRejected,
		},
		{
			name:     "user denied message",
			err:      errors.New("MetaMask Tx Signature: User denied transaction signature."),
			sentinel: ErrTransactionRejected,
		},
		{
			name:   "revert data is decoded",
			err:    nodeError{msg: "execution reverted", code: 3, data: revertData(t, "insufficient balance")},
			revert: true,
			reason: "insufficient balance",
		},
		{
			name:   "revert reason from message",
			err:    errors.New("execution reverted: nothing to claim"),
			revert: true,
			reason: "nothing to claim",
		},
		{
			name:   "revert without reason",
			err:    errors.New("execution reverted"),
			revert: true,
		},
		{
			name: "unknown error is untouched",
			err:  plain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classifyError(tt.err)

			var httpErr rpc.HTTPError
			if errors.As(tt.err, &httpErr) {
				assert.True(t, errors.As(classified, &httpErr))
			} else {
				assert.ErrorIs(t, classified, tt.err)
			}

			if tt.revert {
				var revertErr *RevertError
				require.True(t, errors.As(classified, &revertErr))
				assert.Equal(t, tt.reason, revertErr.Reason)

				return
			}

			if tt.sentinel == nil {
				assert.Equal(t, tt.err, classified)

				return
			}

			assert.ErrorIs(t, classified, tt.sentinel)
		})
	}
}

func TestClassifyErrorIsIdempotent(t *testing.T) {
	once := classifyError(&net.OpError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET})
	twice := classifyError(once)

	assert.Equal(t, once, twice)
	assert.Nil(t, classifyError(nil))
}

func TestRevertErrorMessage(t *testing.T) {
	assert.Equal(t, "contract call reverted: not enough staked", (&RevertError{Reason: "not enough staked"}).Error())
	assert.Equal(t, "contract call reverted", (&RevertError{}).Error())
}
