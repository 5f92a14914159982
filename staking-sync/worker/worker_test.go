package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puck-staking/goutils/datamodel"
	"puck-staking/goutils/mock"
	"puck-staking/goutils/taskmgr"
	workerInterface "puck-staking/goutils/taskmgr/worker"
)

type submitterFunc func(ctx context.Context, action datamodel.PendingAction) (*datamodel.ActionResult, error)

func (f submitterFunc) Submit(ctx context.Context, action datamodel.PendingAction) (*datamodel.ActionResult, error) {
	return f(ctx, action)
}

// newTask returns a task that reports "ack" or "nack requeue=<bool>" on events.
func newTask(body string, events chan<- string) taskmgr.TaskHandler {
	return mock.TaskHandlerMock{
		GetBodyMock:  func() []byte { return []byte(body) },
		GetTopicMock: func() string { return "staking.action" },
		AckMock: func() error {
			events <- "ack"

			return nil
		},
		NackMock: func(requeue bool) error {
			events <- fmt.Sprintf("nack requeue=%t", requeue)

			return nil
		},
	}
}

func receive(t *testing.T, events <-chan string, n int) []string {
	t.Helper()

	received := make([]string, 0, n)

	for len(received) < n {
		select {
		case event := <-events:
			received = append(received, event)
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out after %d of %d events", len(received), n)
		}
	}

	return received
}

func TestConsumeTask(t *testing.T) {
	events := make(chan string, 10)

	tasks := []taskmgr.TaskHandler{
		newTask(`{"kind": "stake", "tokenId": "0x00000000000000000000000000000000000000a1", "amount": "1.5"}`, events),
		newTask(`{"kind": "stake",`, events),
		newTask(`{"kind": "burn"}`, events),
		newTask(`{"kind": "claim"}`, events),
	}

	var mu sync.Mutex
	var submitted []datamodel.PendingAction

	submitter := submitterFunc(func(ctx context.Context, action datamodel.PendingAction) (*datamodel.ActionResult, error) {
		mu.Lock()
		submitted = append(submitted, action)
		mu.Unlock()

		if action.Kind == datamodel.ActionClaim {
			return &datamodel.ActionResult{Action: action, Outcome: datamodel.OutcomeBusy}, errors.New("busy")
		}

		return &datamodel.ActionResult{Action: action, Outcome: datamodel.OutcomeSucceeded}, nil
	})

	mgr := mock.TaskManagerMock{
		ConsumeMock: func(ctx context.Context, workerType workerInterface.Type, msgChan chan taskmgr.TaskHandler, errChan chan error) error {
			assert.Equal(t, workerInterface.TypeStakingActionWorker, workerType)

			for _, task := range tasks {
				msgChan <- task
			}

			<-ctx.Done()

			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)

	go func() {
		done <- NewWorker(submitter, mgr).ConsumeTask(ctx)
	}()

	assert.Equal(t, []string{"ack", "nack requeue=false", "nack requeue=false", "ack"}, receive(t, events, 4))

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, submitted, 2)
	assert.Equal(t, datamodel.ActionStake, submitted[0].Kind)
	assert.Equal(t, common.HexToAddress("0xa1"), submitted[0].TokenID)
	assert.Equal(t, "1.5", submitted[0].Amount.String())
	assert.Equal(t, datamodel.ActionClaim, submitted[1].Kind)
}

func TestConsumeTaskReconnectsAfterChannelClose(t *testing.T) {
	events := make(chan string, 10)

	var calls atomic.Int32

	mgr := mock.TaskManagerMock{
		ConsumeMock: func(ctx context.Context, workerType workerInterface.Type, msgChan chan taskmgr.TaskHandler, errChan chan error) error {
			if calls.Add(1) == 1 {
				errChan <- errors.New("channel closed by broker")

				return nil
			}

			msgChan <- newTask(`{"kind": "claim"}`, events)

			<-ctx.Done()

			return nil
		},
	}

	submitter := submitterFunc(func(ctx context.Context, action datamodel.PendingAction) (*datamodel.ActionResult, error) {
		return &datamodel.ActionResult{Action: action, Outcome: datamodel.OutcomeSucceeded}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)

	go func() {
		done <- NewWorker(submitter, mgr).ConsumeTask(ctx)
	}()

	assert.Equal(t, []string{"ack"}, receive(t, events, 1))
	assert.Equal(t, int32(2), calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestConsumeTaskReturnsWhenConsumerCannotRegister(t *testing.T) {
	brokerErr := errors.New("broker unreachable")

	var calls atomic.Int32

	mgr := mock.TaskManagerMock{
		ConsumeMock: func(ctx context.Context, workerType workerInterface.Type, msgChan chan taskmgr.TaskHandler, errChan chan error) error {
			calls.Add(1)

			return brokerErr
		},
	}

	w := NewWorker(nil, mgr)
	w.newBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 2)
	}

	done := make(chan error)

	go func() {
		done <- w.ConsumeTask(context.Background())
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, brokerErr)
	case <-time.After(5 * time.Second):
		t.Fatal("ConsumeTask kept blocking after the consumer gave up")
	}

	assert.Equal(t, int32(3), calls.Load())
}

func TestShutdownWorker(t *testing.T) {
	shutdownErr := errors.New("connection already closed")

	w := NewWorker(nil, mock.TaskManagerMock{
		ShutdownMock: func(ctx context.Context) error {
			return shutdownErr
		},
	})

	assert.ErrorIs(t, w.ShutdownWorker(), shutdownErr)
}
