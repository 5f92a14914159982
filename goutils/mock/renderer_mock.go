package mock

import (
	"context"
	"sync"

	"puck-staking/goutils/datamodel"
)

// RendererMock records everything published to it.
type RendererMock struct {
	mu        sync.Mutex
	Snapshots []*datamodel.AccountSnapshot
	Results   []*datamodel.ActionResult

	PublishSnapshotErr     error
	PublishActionResultErr error
}

func (m *RendererMock) PublishSnapshot(ctx context.Context, snapshot *datamodel.AccountSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Snapshots = append(m.Snapshots, snapshot)

	return m.PublishSnapshotErr
}

func (m *RendererMock) PublishActionResult(ctx context.Context, result *datamodel.ActionResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Results = append(m.Results, result)

	return m.PublishActionResultErr
}

func (m *RendererMock) LastSnapshot() *datamodel.AccountSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Snapshots) == 0 {
		return nil
	}

	return m.Snapshots[len(m.Snapshots)-1]
}

func (m *RendererMock) SnapshotCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.Snapshots)
}

func (m *RendererMock) LastResult() *datamodel.ActionResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Results) == 0 {
		return nil
	}

	return m.Results[len(m.Results)-1]
}
