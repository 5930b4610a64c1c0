package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"skydry-api/internal/domain/model"
	"skydry-api/internal/domain/usecase/forecast"
	"skydry-api/pkg/log"
)

var ErrInvalidMessage = errors.New("invalid refresh message")

type RefreshProcessor struct {
	forecastUseCase forecast.UseCase
}

func NewRefreshProcessor(forecastUseCase forecast.UseCase) *RefreshProcessor {
	return &RefreshProcessor{
		forecastUseCase: forecastUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface. Invalid messages are
// logged and acknowledged; only refresh failures are left for redelivery.
func (p *RefreshProcessor) HandleMessage(ctx context.Context, msg types.Message) error {
	message, err := decodeRefreshMessage(msg)
	if err != nil {
		log.Warn("Discarding refresh message",
			zap.String("message_id", aws.ToString(msg.MessageId)),
			zap.Error(err))
		return nil
	}

	log.Info("Processing forecast refresh",
		zap.String("message_id", aws.ToString(msg.MessageId)),
		zap.String("request_id", message.RequestID),
		zap.String("profile_id", message.ProfileID))

	if err := p.forecastUseCase.RefreshProfile(ctx, message.ProfileID); err != nil {
		return fmt.Errorf("failed to refresh forecast for profile %s: %w", message.ProfileID, err)
	}
	return nil
}

func decodeRefreshMessage(msg types.Message) (model.RefreshMessage, error) {
	var message model.RefreshMessage
	if msg.Body == nil {
		return message, fmt.Errorf("%w: empty body", ErrInvalidMessage)
	}
	if err := json.Unmarshal([]byte(*msg.Body), &message); err != nil {
		return message, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if message.ProfileID == "" {
		return message, fmt.Errorf("%w: missing profileId", ErrInvalidMessage)
	}
	return message, nil
}
