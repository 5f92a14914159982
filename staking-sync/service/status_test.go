package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puck-staking/caching"
	"puck-staking/goutils/datamodel"
	"puck-staking/goutils/mock"
)

func TestStatusReader(t *testing.T) {
	controller, _, _ := refreshed(t, newGatewayMock())

	persisted := &datamodel.AccountSnapshot{Account: account.Hex()}
	history := []*datamodel.ActionResult{{Outcome: datamodel.OutcomeSucceeded, TxHash: "0xabc"}}

	cache := mock.RedisMock{
		GetSnapshotMock: func(ctx context.Context, acc string) (*datamodel.AccountSnapshot, error) {
			assert.Equal(t, account.Hex(), acc)

			return persisted, nil
		},
		GetActionResultsMock: func(ctx context.Context, acc string, limit int64) ([]*datamodel.ActionResult, error) {
			assert.Equal(t, int64(5), limit)

			return history, nil
		},
	}

	report := NewStatusReader(controller, cache, account.Hex(), 5).Read(context.Background())

	assert.Equal(t, RefreshReady, report.LastRefresh)
	assert.Equal(t, uint64(1), report.PublishedCycle)
	assert.Same(t, persisted, report.Snapshot)
	assert.Equal(t, history, report.RecentActions)

	body, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"lastRefresh":"READY"`)
	assert.Contains(t, string(body), `"recentActions":[`)
}

func TestStatusReaderToleratesReadModelErrors(t *testing.T) {
	controller, _, _ := newTestController(t, newGatewayMock())

	cache := mock.RedisMock{
		GetSnapshotMock: func(ctx context.Context, acc string) (*datamodel.AccountSnapshot, error) {
			return nil, caching.ErrNotFound
		},
		GetActionResultsMock: func(ctx context.Context, acc string, limit int64) ([]*datamodel.ActionResult, error) {
			assert.Equal(t, defaultRecentActions, limit)

			return nil, errors.New("redis down")
		},
	}

	details := NewStatusReader(controller, cache, account.Hex(), 0).Details(context.Background())

	report, ok := details.(*StatusReport)
	require.True(t, ok)
	assert.Nil(t, report.Snapshot)
	assert.Nil(t, report.RecentActions)
	assert.Equal(t, RefreshIdle, report.LastRefresh)
	assert.Equal(t, ActionIdle, report.Action)
}
