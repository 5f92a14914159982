package renderer

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"puck-staking/goutils/datamodel"
	"puck-staking/goutils/settings"
	"puck-staking/goutils/taskmgr"
)

// EventRenderer publishes snapshots and action results as json events on the message bus.
type EventRenderer struct {
	publisher              taskmgr.TaskMgr
	snapshotRoutingKey     string
	actionResultRoutingKey string
}

var _ Renderer = (*EventRenderer)(nil)

func NewEventRenderer(settingsObj *settings.SettingsObj, publisher taskmgr.TaskMgr) *EventRenderer {
	return &EventRenderer{
		publisher:              publisher,
		snapshotRoutingKey:     settingsObj.Rabbitmq.Setup.Events.SnapshotRoutingKey,
		actionResultRoutingKey: settingsObj.Rabbitmq.Setup.Events.ActionResultRoutingKey,
	}
}

func (e *EventRenderer) PublishSnapshot(ctx context.Context, snapshot *datamodel.AccountSnapshot) error {
	return e.publish(ctx, e.snapshotRoutingKey, snapshot)
}

func (e *EventRenderer) PublishActionResult(ctx context.Context, result *datamodel.ActionResult) error {
	return e.publish(ctx, e.actionResultRoutingKey, result)
}

func (e *EventRenderer) publish(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		log.WithError(err).Error("failed to marshal event")

		return err
	}

	return e.publisher.Publish(ctx, routingKey, body)
}
