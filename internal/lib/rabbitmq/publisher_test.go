package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ChannelMock struct {
	mock.Mock
}

func (m *ChannelMock) Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

type testMsg struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestPublishMessage_Unit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ch := new(ChannelMock)
		ch.On("Publish", "catalog", "project.created", false, false, mock.MatchedBy(func(p amqp.Publishing) bool {
			var got testMsg
			return p.ContentType == "application/json" &&
				p.DeliveryMode == amqp.Persistent &&
				json.Unmarshal(p.Body, &got) == nil &&
				got == testMsg{ID: 1, Name: "Hello"}
		})).Return(nil).Once()

		err := PublishMessage(ch, "catalog", "project.created", testMsg{ID: 1, Name: "Hello"})
		require.NoError(t, err)
		ch.AssertExpectations(t)
	})

	t.Run("publish error", func(t *testing.T) {
		ch := new(ChannelMock)
		ch.On("Publish", "catalog", "app.deleted", false, false, mock.Anything).
			Return(errors.New("channel closed")).Once()

		err := PublishMessage(ch, "catalog", "app.deleted", testMsg{ID: 2})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rabbitmq.PublishMessage")
		assert.Contains(t, err.Error(), "channel closed")
	})

	t.Run("marshal error", func(t *testing.T) {
		ch := new(ChannelMock)
		badMsg := struct {
			Ch chan int `json:"ch"`
		}{
			Ch: make(chan int),
		}

		err := PublishMessage(ch, "", "q", badMsg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rabbitmq.PublishMessage")
		ch.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPublishMessage_Broker(t *testing.T) {
	ctx := context.Background()
	amqpURI := brokerURI(ctx, t)

	conn, err := Connect(ctx, amqpURI, 3, time.Second)
	require.NoError(t, err)
	defer func() {
		if err := conn.Close(); err != nil {
			t.Errorf("failed to close connection: %v", err)
		}
	}()

	ch, err := SetupChannel(conn, "catalog-publish-test", CatalogQueues())
	require.NoError(t, err)
	defer func() {
		if err := ch.Close(); err != nil {
			t.Errorf("failed to close channel: %v", err)
		}
	}()

	msg := testMsg{ID: 1, Name: "Hello"}
	require.NoError(t, PublishMessage(ch, "catalog-publish-test", "project.created", msg))

	deliveries, err := ch.Consume("catalog.changes", "test-consumer", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		var got testMsg
		require.NoError(t, json.Unmarshal(d.Body, &got))
		assert.Equal(t, msg, got)
		assert.Equal(t, "project.created", d.RoutingKey)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for message")
	}
}
