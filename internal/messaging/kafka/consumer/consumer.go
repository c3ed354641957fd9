package consumer

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Outcome tells the fetch loop what to do with a handled message.
type Outcome int

const (
	// Commit acknowledges the message.
	Commit Outcome = iota
	// Retry leaves the message uncommitted; the group redelivers it after a
	// restart or rebalance.
	Retry
)

// HandlerFunc processes one message.
type HandlerFunc func(ctx context.Context, msg kafkago.Message) Outcome

// Run fetches messages until ctx is done, committing those the handler
// accepts. Poison messages should return Commit so they do not block the
// partition.
func Run(ctx context.Context, reader MessageReader, handle HandlerFunc, log *zap.Logger) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if handle(ctx, msg) == Retry {
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}
	}
}
