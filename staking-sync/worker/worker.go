package worker

import (
	"context"
	"encoding/json"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"puck-staking/goutils/datamodel"
	"puck-staking/goutils/taskmgr"
	workerInterface "puck-staking/goutils/taskmgr/worker"
)

// ActionSubmitter runs one staking action to its terminal outcome.
type ActionSubmitter interface {
	Submit(ctx context.Context, action datamodel.PendingAction) (*datamodel.ActionResult, error)
}

// Worker consumes staking actions from the action queue and runs them one at a time.
type Worker struct {
	submitter  ActionSubmitter
	taskmgr    taskmgr.TaskMgr
	validate   *validator.Validate
	newBackOff func() backoff.BackOff
}

var _ workerInterface.Worker = (*Worker)(nil)

func NewWorker(submitter ActionSubmitter, mgr taskmgr.TaskMgr) *Worker {
	return &Worker{
		submitter: submitter,
		taskmgr:   mgr,
		validate:  validator.New(),
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

// ConsumeTask blocks until ctx is done or the consumer cannot be registered anymore.
// Actions are processed one at a time.
func (w *Worker) ConsumeTask(ctx context.Context) error {
	taskChan := make(chan taskmgr.TaskHandler)
	errChan := make(chan error, 1)
	fatalChan := make(chan error, 1)

	go w.consume(ctx, taskChan, errChan, fatalChan)

	for {
		select {
		case <-ctx.Done():
			log.Info("staking action worker stopped")

			return nil
		case err := <-fatalChan:
			log.WithError(err).Error("failed to consume the messages after max retries")

			return err
		case taskHandler := <-taskChan:
			w.handle(ctx, taskHandler)
		}
	}
}

// consume keeps a consumer registered, reconnecting whenever the channel is closed by the broker.
func (w *Worker) consume(ctx context.Context, taskChan chan taskmgr.TaskHandler, errChan, fatalChan chan error) {
	for {
		err := backoff.Retry(func() error {
			err := w.taskmgr.Consume(ctx, workerInterface.TypeStakingActionWorker, taskChan, errChan)
			if err != nil {
				log.WithError(err).Error("failed to consume the message, retrying")

				return err
			}

			return nil
		}, backoff.WithContext(w.newBackOff(), ctx))
		if err != nil {
			if ctx.Err() == nil {
				fatalChan <- err
			}

			return
		}

		select {
		case <-ctx.Done():
			return
		case err = <-errChan:
			log.WithError(err).Warn("consumer channel closed, reconnecting")
		}
	}
}

func (w *Worker) handle(ctx context.Context, taskHandler taskmgr.TaskHandler) {
	log.Debug("received new staking action")

	action := new(datamodel.PendingAction)

	err := json.Unmarshal(taskHandler.GetBody(), action)
	if err == nil {
		err = w.validate.Struct(action)
	}

	if err != nil {
		log.WithError(err).Error("malformed staking action message, dead-lettering")

		err = backoff.Retry(func() error {
			return taskHandler.Nack(false)
		}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
		if err != nil {
			log.WithError(err).Error("failed to nack the message")
		}

		return
	}

	result, err := w.submitter.Submit(ctx, *action)
	if err != nil {
		log.WithError(err).
			WithField("kind", action.Kind).
			WithField("outcome", result.Outcome).
			Warn("staking action finished without success")
	}

	// every outcome is terminal, nothing is requeued
	err = backoff.Retry(func() error {
		return taskHandler.Ack()
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		log.WithError(err).Error("failed to ack the message")
	}
}

func (w *Worker) ShutdownWorker() error {
	err := w.taskmgr.Shutdown(context.Background())
	if err != nil {
		log.WithError(err).Error("failed to shutdown the worker")
	}

	return err
}
