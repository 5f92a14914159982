package service

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"puck-staking/caching"
	"puck-staking/goutils/datamodel"
)

const defaultRecentActions int64 = 10

// StatusReport is served on the health endpoint.
// Snapshot and RecentActions come from the redis read model, which is what downstream consumers see.
type StatusReport struct {
	Status
	Snapshot      *datamodel.AccountSnapshot `json:"snapshot,omitempty"`
	RecentActions []*datamodel.ActionResult  `json:"recentActions,omitempty"`
}

type StatusReader struct {
	controller Service
	cache      caching.DbCache
	account    string
	limit      int64
}

func NewStatusReader(controller Service, cache caching.DbCache, account string, limit int64) *StatusReader {
	if limit <= 0 {
		limit = defaultRecentActions
	}

	return &StatusReader{
		controller: controller,
		cache:      cache,
		account:    account,
		limit:      limit,
	}
}

// Read never fails: read model errors are logged and the affected field is left out.
func (s *StatusReader) Read(ctx context.Context) *StatusReport {
	report := &StatusReport{Status: s.controller.Status()}

	snapshot, err := s.cache.GetSnapshot(ctx, s.account)
	switch {
	case err == nil:
		report.Snapshot = snapshot
	case !errors.Is(err, caching.ErrNotFound):
		log.WithError(err).Warn("failed to read persisted snapshot for status")
	}

	results, err := s.cache.GetActionResults(ctx, s.account, s.limit)
	if err != nil {
		log.WithError(err).Warn("failed to read recent action results for status")
	} else {
		report.RecentActions = results
	}

	return report
}

// Details adapts Read to the health endpoint.
func (s *StatusReader) Details(ctx context.Context) interface{} {
	return s.Read(ctx)
}
