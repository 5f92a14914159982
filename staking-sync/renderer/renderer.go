package renderer

import (
	"context"

	log "github.com/sirupsen/logrus"

	"puck-staking/goutils/datamodel"
)

// Renderer receives every published snapshot and every terminal action result.
type Renderer interface {
	PublishSnapshot(ctx context.Context, snapshot *datamodel.AccountSnapshot) error
	PublishActionResult(ctx context.Context, result *datamodel.ActionResult) error
}

// Multi forwards to every renderer, in order. A failing renderer does not stop the others,
// the first error is returned.
type Multi []Renderer

var _ Renderer = Multi(nil)

func (m Multi) PublishSnapshot(ctx context.Context, snapshot *datamodel.AccountSnapshot) error {
	var firstErr error

	for _, r := range m {
		err := r.PublishSnapshot(ctx, snapshot)
		if err != nil {
			log.WithError(err).Errorf("failed to publish snapshot to %T", r)

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func (m Multi) PublishActionResult(ctx context.Context, result *datamodel.ActionResult) error {
	var firstErr error

	for _, r := range m {
		err := r.PublishActionResult(ctx, result)
		if err != nil {
			log.WithError(err).Errorf("failed to publish action result to %T", r)

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
