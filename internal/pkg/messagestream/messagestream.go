package messagestream

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	amqp "github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/message/router/plugin"

	"travel-booking-service/config"
)

type MessageStream interface {
	NewSubscriber() (message.Subscriber, error)
	NewPublisher() (message.Publisher, error)
}

type ampq struct {
	cfg    *config.MessageStreamConfig
	logger watermill.LoggerAdapter
}

func NewAmpq(cfg *config.MessageStreamConfig) MessageStream {
	return &ampq{
		cfg:    cfg,
		logger: watermill.NewStdLogger(false, false),
	}
}

func (a *ampq) uri() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", a.cfg.Username, a.cfg.Password, a.cfg.Host, a.cfg.Port)
}

func (a *ampq) NewSubscriber() (message.Subscriber, error) {
	amqpConfig := amqp.NewDurableQueueConfig(a.uri())
	return amqp.NewSubscriber(amqpConfig, a.logger)
}

func (a *ampq) NewPublisher() (message.Publisher, error) {
	amqpConfig := amqp.NewDurableQueueConfig(a.uri())
	return amqp.NewPublisher(amqpConfig, a.logger)
}

// NewRouter wires one no-publish handler for a topic. Poisoned messages are
// re-published by the handler itself, the router only guards against panics.
func NewRouter(
	publisher message.Publisher,
	poisonTopic string,
	handlerName string,
	topic string,
	subscriber message.Subscriber,
	handlerFunc message.NoPublishHandlerFunc,
) (*message.Router, error) {
	logger := watermill.NewStdLogger(false, false)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	if err != nil {
		return nil, err
	}

	router.AddPlugin(plugin.SignalsHandler)
	router.AddMiddleware(middleware.Recoverer)

	router.AddNoPublisherHandler(handlerName, topic, subscriber, handlerFunc)

	return router, nil
}
