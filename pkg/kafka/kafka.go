package kafka

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

// LoanTopic carries the loan lifecycle feed.
const LoanTopic = "loan-events"

// LoanEvent is published on every loan write. The feed is best-effort:
// a publish failure never fails the write that produced it.
type LoanEvent struct {
	EventID  string    `json:"eventID"`
	Kind     string    `json:"kind"`
	LoanID   int       `json:"loanID"`
	BookID   int       `json:"bookID"`
	PatronID int       `json:"patronID"`
	At       time.Time `json:"at"`
}

const (
	LoanCreated  = "loan.created"
	LoanUpdated  = "loan.updated"
	LoanReturned = "loan.returned"
)

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

// NewNopEnqueuer is used when no brokers are configured.
func NewNopEnqueuer() Enqueuer {
	return nopEnqueuer{}
}

type nopEnqueuer struct{}

func (nopEnqueuer) Enqueue(string, any) error { return nil }
