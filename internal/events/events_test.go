package events

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

func TestNew(t *testing.T) {
	e := New("project", ActionCreated, "id-1")

	assert.Equal(t, "project.created", e.RoutingKey())
	assert.Equal(t, "id-1", e.ID)
	assert.WithinDuration(t, time.Now(), time.UnixMilli(e.At), time.Second)
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Publish(context.Background(), New("app", ActionDeleted, "x")))
}

func TestAMQP_Publish(t *testing.T) {
	ch := new(ChannelMock)
	e := Event{Collection: "app", Action: ActionUpdated, ID: "a1", At: 42}

	ch.On("Publish", "catalog", "app.updated", false, false, mock.MatchedBy(func(p amqp.Publishing) bool {
		var got Event
		return json.Unmarshal(p.Body, &got) == nil && got == e
	})).Return(nil).Once()

	p := NewAMQP(ch, "catalog")
	require.NoError(t, p.Publish(context.Background(), e))
	ch.AssertExpectations(t)
}

func TestAMQP_PublishError(t *testing.T) {
	ch := new(ChannelMock)
	ch.On("Publish", mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(errors.New("connection lost")).Once()

	err := NewAMQP(ch, "catalog").Publish(context.Background(), New("project", ActionDeleted, "p1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "events.AMQP.Publish")
}

func TestAMQP_CanceledContext(t *testing.T) {
	ch := new(ChannelMock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewAMQP(ch, "catalog").Publish(ctx, New("project", ActionCreated, "p1"))
	assert.ErrorIs(t, err, context.Canceled)
	ch.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
