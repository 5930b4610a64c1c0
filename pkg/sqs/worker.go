package sqs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"skydry-api/pkg/log"
)

// HandlerFunc defines a function that handles a SQS Message
type HandlerFunc func(ctx context.Context, msg types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, msg types.Message) error {
	return f(ctx, msg)
}

// Handler processes a SQS Message. Returning nil deletes the message from the queue.
type Handler interface {
	HandleMessage(ctx context.Context, msg types.Message) error
}

// WorkerAPI is the subset of the SQS client used by Worker
type WorkerAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	VisibilityTimeout   int32
	PoolSize            int
	// ErrorBackoff is the pause after a failed receive
	ErrorBackoff time.Duration
}

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           WorkerAPI
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	visibilityTimeout   int32
	poolSize            int
	errorBackoff        time.Duration
	handler             Handler
}

// NewWorker creates and returns a new Worker.
//
// Zero config fields fall back to 10 messages, 20 seconds long polling,
// a pool of 1 and a 1 second error backoff.
func NewWorker(ctx context.Context, sqsClient WorkerAPI, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	w := &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		maxNumberOfMessages: 10,
		waitTimeSeconds:     20,
		poolSize:            1,
		errorBackoff:        time.Second,
		handler:             handler,
	}

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			w.maxNumberOfMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			w.waitTimeSeconds = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			w.poolSize = config.PoolSize
		}
		if config.ErrorBackoff != 0 {
			w.errorBackoff = config.ErrorBackoff
		}
		w.visibilityTimeout = config.VisibilityTimeout
	}

	if w.maxNumberOfMessages < 1 || w.maxNumberOfMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if w.waitTimeSeconds < 1 || w.waitTimeSeconds > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if w.poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}
	if handler == nil {
		return nil, errors.New("handler is required")
	}

	queueURL, err := resolveQueueURL(ctx, sqsClient, queueName)
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}
	w.queueURL = queueURL

	return w, nil
}

// Start spawns PoolSize pollers and blocks until ctx is canceled and
// every in-flight message has been handled.
func (w *Worker) Start(ctx context.Context) {
	log.Info("sqs worker started", zap.String("queue", w.queueName), zap.Int("poolSize", w.poolSize))

	var wg sync.WaitGroup
	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.pollMessages(ctx)
		}()
	}
	wg.Wait()

	log.Info("sqs worker stopped", zap.String("queue", w.queueName))
}

func (w *Worker) pollMessages(ctx context.Context) {
	for ctx.Err() == nil {
		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(w.queueURL),
			MaxNumberOfMessages: w.maxNumberOfMessages,
			WaitTimeSeconds:     w.waitTimeSeconds,
			VisibilityTimeout:   w.visibilityTimeout,
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Error("failed to receive messages", zap.String("queue", w.queueName), zap.Error(err))
			select {
			case <-ctx.Done():
			case <-time.After(w.errorBackoff):
			}
			continue
		}

		// messages of one receive are handled before polling again
		var wg sync.WaitGroup
		for _, msg := range output.Messages {
			wg.Add(1)
			go func(msg types.Message) {
				defer wg.Done()
				w.handleMessage(ctx, msg)
			}(msg)
		}
		wg.Wait()
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg types.Message) {
	messageID := aws.ToString(msg.MessageId)

	if err := w.handler.HandleMessage(ctx, msg); err != nil {
		log.Error("error processing message", zap.String("queue", w.queueName), zap.String("messageId", messageID), zap.Error(err))
		return
	}

	_, err := w.sqsClient.DeleteMessage(context.WithoutCancel(ctx), &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(w.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Error("failed to delete message", zap.String("queue", w.queueName), zap.String("messageId", messageID), zap.Error(err))
		return
	}
	log.Debug("message deleted", zap.String("queue", w.queueName), zap.String("messageId", messageID))
}

// HealthCheck verifies the queue can still be resolved
func (w *Worker) HealthCheck(ctx context.Context) error {
	_, err := resolveQueueURL(ctx, w.sqsClient, w.queueName)
	return err
}
