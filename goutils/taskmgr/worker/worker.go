package worker

import "context"

type Worker interface {
	ConsumeTask(ctx context.Context) error
}

type Type string

const (
	TypeStakingActionWorker Type = "staking-action-worker"
)
