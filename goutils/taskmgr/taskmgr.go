package taskmgr

import (
	"context"
	"errors"

	"github.com/streadway/amqp"

	"puck-staking/goutils/taskmgr/worker"
)

var (
	ErrConsumerInitFailed  = errors.New("failed to initialize consumer")
	ErrPublisherInitFailed = errors.New("failed to initialize publisher")
)

type TaskMgr interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Consume(ctx context.Context, workerType worker.Type, msgChan chan TaskHandler, errChan chan error) error
	Shutdown(ctx context.Context) error
}

type TaskHandler interface {
	GetBody() []byte
	GetTopic() string
	Ack() error
	Nack(requeue bool) error
}

// Task wraps one delivered rabbitmq message.
type Task struct {
	Msg amqp.Delivery
}

var _ TaskHandler = (*Task)(nil)

func (t Task) GetBody() []byte {
	return t.Msg.Body
}

func (t Task) GetTopic() string {
	return t.Msg.RoutingKey
}

func (t Task) Ack() error {
	return t.Msg.Ack(false)
}

func (t Task) Nack(requeue bool) error {
	return t.Msg.Nack(false, requeue)
}
