package nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	subject string
	data    []byte
	err     error
}

func (r *recordingPublisher) Publish(subject string, data []byte) error {
	if r.err != nil {
		return r.err
	}
	r.subject = subject
	r.data = data
	return nil
}

func TestProducer_Publish(t *testing.T) {
	pub := &recordingPublisher{}
	producer := NewProducer(pub)

	err := producer.Publish(context.Background(), "servico.proposed", map[string]string{"appointmentId": "99"})
	require.NoError(t, err)

	assert.Equal(t, "servico.proposed", pub.subject)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(pub.data, &decoded))
	assert.Equal(t, "99", decoded["appointmentId"])
}

func TestProducer_PublishError(t *testing.T) {
	producer := NewProducer(&recordingPublisher{err: errors.New("nats: connection closed")})

	err := producer.Publish(context.Background(), "servico.proposed", struct{}{})
	assert.EqualError(t, err, "nats: connection closed")
}

func TestProducer_PublishMarshalError(t *testing.T) {
	pub := &recordingPublisher{}
	producer := NewProducer(pub)

	err := producer.Publish(context.Background(), "servico.proposed", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
	assert.Empty(t, pub.subject)
}

func TestProducer_PublishCanceled(t *testing.T) {
	pub := &recordingPublisher{}
	producer := NewProducer(pub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := producer.Publish(ctx, "servico.proposed", struct{}{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, pub.subject)
}

func TestNewClient_InvalidAddress(t *testing.T) {
	client, err := NewClient("invalid://address", "passeio-tutor")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to NATS server")
}
