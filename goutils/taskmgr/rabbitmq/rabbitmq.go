package rabbitmq

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"puck-staking/goutils/settings"
	"puck-staking/goutils/taskmgr"
	"puck-staking/goutils/taskmgr/worker"
)

type RabbitmqTaskMgr struct {
	conn     *amqp.Connection
	settings *settings.SettingsObj

	publishMu      sync.Mutex
	publishChannel *amqp.Channel
}

var _ taskmgr.TaskMgr = (*RabbitmqTaskMgr)(nil)

func NewRabbitmqTaskMgr(settings *settings.SettingsObj) *RabbitmqTaskMgr {
	return &RabbitmqTaskMgr{
		conn:     Dial(settings),
		settings: settings,
	}
}

// Publish sends a persistent json message to the events exchange.
func (r *RabbitmqTaskMgr) Publish(ctx context.Context, routingKey string, body []byte) error {
	r.publishMu.Lock()
	defer r.publishMu.Unlock()

	if r.publishChannel == nil {
		channel, err := r.getPublishChannel()
		if err != nil {
			return err
		}

		r.publishChannel = channel
	}

	err := r.publishChannel.Publish(r.settings.Rabbitmq.Setup.Events.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.WithError(err).WithField("routingKey", routingKey).Error("failed to publish message to rabbitmq")

		// channel is reopened on the next publish
		_ = r.publishChannel.Close()
		r.publishChannel = nil

		return err
	}

	return nil
}

func (r *RabbitmqTaskMgr) getPublishChannel() (*amqp.Channel, error) {
	channel, err := r.conn.Channel()
	if err != nil {
		log.Errorf("Failed to open a channel on rabbitmq: %v", err)

		return nil, taskmgr.ErrPublisherInitFailed
	}

	err = channel.ExchangeDeclare(r.settings.Rabbitmq.Setup.Events.Exchange, "topic", true, false, false, false, nil)
	if err != nil {
		log.Errorf("Failed to declare an exchange on rabbitmq: %v", err)

		return nil, taskmgr.ErrPublisherInitFailed
	}

	return channel, nil
}

// getChannel returns a channel from the connection
// this method is also used to create a new channel if channel is closed
func (r *RabbitmqTaskMgr) getChannel(workerType worker.Type) (*amqp.Channel, error) {
	channel, err := r.conn.Channel()
	if err != nil {
		log.Errorf("Failed to open a channel on rabbitmq: %v", err)

		return nil, taskmgr.ErrConsumerInitFailed
	}

	exchange := r.getExchange(workerType)
	err = channel.ExchangeDeclare(exchange, "direct", true, false, false, false, nil)
	if err != nil {
		log.Errorf("Failed to declare an exchange on rabbitmq: %v", err)

		return nil, taskmgr.ErrConsumerInitFailed
	}

	// dead letter exchange
	err = channel.ExchangeDeclare(r.settings.Rabbitmq.Setup.Core.DLX, "direct", true, false, false, false, nil)
	if err != nil {
		log.Errorf("Failed to declare an exchange on rabbitmq: %v", err)

		return nil, taskmgr.ErrConsumerInitFailed
	}

	queue, err := channel.QueueDeclare(r.getQueue(workerType), true, false, false, false, map[string]interface{}{
		"x-dead-letter-exchange":    r.settings.Rabbitmq.Setup.Core.DLX,
		"x-dead-letter-routing-key": r.getRoutingKey(workerType),
	})
	if err != nil {
		log.Errorf("Failed to declare a queue on rabbitmq: %v", err)

		return nil, taskmgr.ErrConsumerInitFailed
	}

	err = channel.QueueBind(queue.Name, r.getRoutingKey(workerType), exchange, false, nil)
	if err != nil {
		log.Errorf("Failed to bind a queue on rabbitmq: %v", err)

		return nil, taskmgr.ErrConsumerInitFailed
	}

	// one unacked action at a time
	err = channel.Qos(1, 0, false)
	if err != nil {
		log.Errorf("Failed to set qos on rabbitmq channel: %v", err)

		return nil, taskmgr.ErrConsumerInitFailed
	}

	return channel, nil
}

// Consume delivers messages of the worker queue on msgChan until the channel closes or ctx is done.
// A closed channel is reported on errChan so the caller can reconnect.
func (r *RabbitmqTaskMgr) Consume(ctx context.Context, workerType worker.Type, msgChan chan taskmgr.TaskHandler, errChan chan error) error {
	channel, err := r.getChannel(workerType)
	if err != nil {
		return err
	}

	defer func(channel *amqp.Channel) {
		err = channel.Close()
		if err != nil && err != amqp.ErrClosed {
			log.Errorf("Failed to close channel on rabbitmq: %v", err)
		}
	}(channel)

	queueName := r.getQueue(workerType)

	msgs, err := channel.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Errorf("Failed to register a consumer on rabbitmq: %v", err)

		return err
	}

	log.Infof("RabbitmqTaskMgr: consuming messages from queue %s", queueName)

	closed := channel.NotifyClose(make(chan *amqp.Error, 1))

	for {
		select {
		case <-ctx.Done():
			return nil
		case amqpErr := <-closed:
			log.Errorf("RabbitmqTaskMgr: channel closed while consuming messages from queue %s: %v", queueName, amqpErr)

			if amqpErr == nil {
				errChan <- amqp.ErrClosed
			} else {
				errChan <- amqpErr
			}

			return nil
		case msg, ok := <-msgs:
			if !ok {
				msgs = nil

				continue
			}

			log.Debug("received new message")

			select {
			case msgChan <- taskmgr.Task{Msg: msg}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (r *RabbitmqTaskMgr) Shutdown(ctx context.Context) error {
	r.publishMu.Lock()
	defer r.publishMu.Unlock()

	if r.publishChannel != nil {
		_ = r.publishChannel.Close()
		r.publishChannel = nil
	}

	err := r.conn.Close()
	if err != nil && err != amqp.ErrClosed {
		log.Errorf("Failed to close connection on rabbitmq: %v", err)

		return err
	}

	return nil
}

func Dial(config *settings.SettingsObj) *amqp.Connection {
	rabbitmqConfig := config.Rabbitmq

	url := fmt.Sprintf("amqp://%s:%s@%s/", rabbitmqConfig.User, rabbitmqConfig.Password, net.JoinHostPort(rabbitmqConfig.Host, strconv.Itoa(rabbitmqConfig.Port)))

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Panicf("Failed to connect to RabbitMQ: %v", err)
	}

	return conn
}

func (r *RabbitmqTaskMgr) getExchange(workerType worker.Type) string {
	switch workerType {
	case worker.TypeStakingActionWorker:
		return r.settings.Rabbitmq.Setup.Core.Exchange
	default:
		return ""
	}
}

func (r *RabbitmqTaskMgr) getQueue(workerType worker.Type) string {
	switch workerType {
	case worker.TypeStakingActionWorker:
		return r.settings.Rabbitmq.Setup.Queues.StakingActions.QueueName
	default:
		return ""
	}
}

func (r *RabbitmqTaskMgr) getRoutingKey(workerType worker.Type) string {
	switch workerType {
	case worker.TypeStakingActionWorker:
		return r.settings.Rabbitmq.Setup.Queues.StakingActions.RoutingKey
	default:
		return ""
	}
}
