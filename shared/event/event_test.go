package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"conectapro/config"
	"conectapro/infras/kafka"
	kafkaMocks "conectapro/infras/kafka/mocks"
	"conectapro/infras/otel/mocks"
	"conectapro/shared/event"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPublisher_Publish(t *testing.T) {
	occurred := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	evt := event.New("service_request.accepted", "req-1", "provider-1", occurred, map[string]string{"status": "ACCEPTED"})

	tests := []struct {
		name      string
		brokers   []string
		setupMock func(client *kafkaMocks.MockClient)
		wantErr   bool
	}{
		{
			name:    "keyed by aggregate on the prefixed topic",
			brokers: []string{"localhost:9092"},
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().
					SendMessages(gomock.Any(), "conectapro.service-request.lifecycle", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						assert.Len(t, messages, 1)
						assert.Equal(t, "req-1", messages[0].Key)
						assert.Equal(t, "service_request.accepted", messages[0].Headers["event_type"])

						return nil
					})
			},
		},
		{
			name:    "broker failure",
			brokers: []string{"localhost:9092"},
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("leader not available"))
			},
			wantErr: true,
		},
		{
			name:      "without brokers only logs",
			setupMock: func(*kafkaMocks.MockClient) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)
			tt.setupMock(client)

			cfg := &config.Config{}
			cfg.Kafka.Brokers = tt.brokers
			cfg.Kafka.TopicPrefix = "conectapro"

			err := event.NewPublisher(cfg, client, mocks.NewOtel()).Publish(context.Background(), event.TopicServiceRequestLifecycle, evt)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTopic(t *testing.T) {
	assert.Equal(t, "review.created", event.Topic("", event.TopicReviewCreated))
	assert.Equal(t, "cp.review.created", event.Topic("cp", event.TopicReviewCreated))
}
