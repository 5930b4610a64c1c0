package aws

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skydry-api/internal/domain/gateway/queue"
	"skydry-api/internal/domain/model"
)

type recordingSQS struct {
	bodies []string
}

func (r *recordingSQS) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("http://localhost:4566/000000000000/" + aws.ToString(params.QueueName))}, nil
}

func (r *recordingSQS) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	r.bodies = append(r.bodies, aws.ToString(params.MessageBody))
	return &sqs.SendMessageOutput{}, nil
}

func (r *recordingSQS) SendMessageBatch(_ context.Context, params *sqs.SendMessageBatchInput, _ ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
	output := &sqs.SendMessageBatchOutput{}
	for _, entry := range params.Entries {
		r.bodies = append(r.bodies, aws.ToString(entry.MessageBody))
		output.Successful = append(output.Successful, types.SendMessageBatchResultEntry{Id: entry.Id})
	}
	return output, nil
}

func TestSQSSenderAdapter(t *testing.T) {
	client := &recordingSQS{}
	adapter := NewSQSSenderAdapter(client)
	ctx := context.Background()

	require.NoError(t, adapter.SendMessage(ctx, "refresh", model.RefreshMessage{ProfileID: "alice", RequestID: "r-1"}))

	result, err := adapter.SendMessageBatch(ctx, "refresh", []queue.BatchMessage{
		{MessageID: "refresh-0", Body: model.RefreshMessage{ProfileID: "bob", RequestID: "r-2"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"refresh-0"}, result.Successful)
	assert.Empty(t, result.Failed)

	require.Len(t, client.bodies, 2)
	var message model.RefreshMessage
	require.NoError(t, json.Unmarshal([]byte(client.bodies[1]), &message))
	assert.Equal(t, model.RefreshMessage{ProfileID: "bob", RequestID: "r-2"}, message)
}
