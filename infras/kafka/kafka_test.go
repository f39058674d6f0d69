package kafka_test

import (
	"testing"

	"conectapro/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:     "req-1",
		Value:   map[string]string{"status": "ACCEPTED"},
		Headers: map[string]string{"event": "accept"},
	}

	out, err := msg.ToKafkaMessage("conectapro.service-request.lifecycle")
	require.NoError(t, err)

	assert.Equal(t, "conectapro.service-request.lifecycle", out.Topic)
	assert.Equal(t, []byte("req-1"), out.Key)
	assert.JSONEq(t, `{"status":"ACCEPTED"}`, string(out.Value))
	require.Len(t, out.Headers, 1)
	assert.Equal(t, "event", out.Headers[0].Key)
	assert.Equal(t, []byte("accept"), out.Headers[0].Value)
}

func TestMessage_ToKafkaMessageRejectsUnencodable(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("topic")
	assert.Error(t, err)
}
