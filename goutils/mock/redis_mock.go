package mock

import (
	"context"

	"puck-staking/goutils/datamodel"
)

type RedisMock struct {
	StoreSnapshotMock    func(ctx context.Context, snapshot *datamodel.AccountSnapshot) error
	GetSnapshotMock      func(ctx context.Context, account string) (*datamodel.AccountSnapshot, error)
	AddActionResultMock  func(ctx context.Context, account string, result *datamodel.ActionResult) error
	GetActionResultsMock func(ctx context.Context, account string, limit int64) ([]*datamodel.ActionResult, error)
}

func (m RedisMock) StoreSnapshot(ctx context.Context, snapshot *datamodel.AccountSnapshot) error {
	return m.StoreSnapshotMock(ctx, snapshot)
}

func (m RedisMock) GetSnapshot(ctx context.Context, account string) (*datamodel.AccountSnapshot, error) {
	return m.GetSnapshotMock(ctx, account)
}

func (m RedisMock) AddActionResult(ctx context.Context, account string, result *datamodel.ActionResult) error {
	return m.AddActionResultMock(ctx, account, result)
}

func (m RedisMock) GetActionResults(ctx context.Context, account string, limit int64) ([]*datamodel.ActionResult, error) {
	return m.GetActionResultsMock(ctx, account, limit)
}
