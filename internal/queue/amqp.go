package queue

import (
	"log"
	"sync"

	"github.com/streadway/amqp"
)

// AMQPQueue carries channels over RabbitMQ. Queues are declared non-durable
// and consumers auto-ack, which is the at-most-once contract: a message a
// handler fails on is gone, and nothing survives a broker restart.
type AMQPQueue struct {
	conn *amqp.Connection

	mu  sync.Mutex
	pub *amqp.Channel
}

func DialAMQP(url string) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	pub, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &AMQPQueue{conn: conn, pub: pub}, nil
}

func declare(ch *amqp.Channel, channel string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		channel,
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
}

// Publish declares the queue and hands the payload to the broker. Returning
// nil only means the broker accepted the publish.
func (q *AMQPQueue) Publish(channel string, body []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	queue, err := declare(q.pub, channel)
	if err != nil {
		return err
	}

	return q.pub.Publish(
		"",
		queue.Name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

// Subscribe opens a dedicated consumer channel and drains it on its own
// goroutine, one delivery at a time.
func (q *AMQPQueue) Subscribe(channel string, handler func(body []byte) error) error {
	ch, err := q.conn.Channel()
	if err != nil {
		return err
	}

	queue, err := declare(ch, channel)
	if err != nil {
		ch.Close()
		return err
	}

	msgs, err := ch.Consume(
		queue.Name,
		"",
		true, // autoAck: at-most-once, no redelivery
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		return err
	}

	go func() {
		for d := range msgs {
			if err := handler(d.Body); err != nil {
				log.Printf("⚠️ dropping message on %s: %v", channel, err)
			}
		}
	}()

	return nil
}

func (q *AMQPQueue) Close() error {
	q.pub.Close()
	return q.conn.Close()
}

var _ Queue = (*AMQPQueue)(nil)
