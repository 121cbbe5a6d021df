package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaClient struct {
	Brokers []string
}

func NewKafkaClient(brokersCSV string) *KafkaClient {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &KafkaClient{Brokers: brokers}
}

func (c *KafkaClient) Enabled() bool {
	return len(c.Brokers) > 0
}

// KafkaEmitter publishes payment confirmations to a single topic, keyed by
// order ID so confirmations for the same order land on one partition.
type KafkaEmitter struct {
	writer *kafka.Writer
}

func NewKafkaEmitter(client *KafkaClient, topic string) *KafkaEmitter {
	return &KafkaEmitter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(client.Brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (e *KafkaEmitter) Emit(ctx context.Context, msg PaymentConfirmedMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return e.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.OrderID),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

func (e *KafkaEmitter) Close() error {
	return e.writer.Close()
}
