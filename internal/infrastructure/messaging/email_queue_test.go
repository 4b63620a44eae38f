package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase/interfaces"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	subject string
	data    []byte
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, subject string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.subject, f.data = subject, data
	return &jetstream.PubAck{Stream: EmailStreamName, Sequence: 7}, nil
}

func TestEmailQueue_Send(t *testing.T) {
	pub := &fakePublisher{}
	q := &EmailQueue{js: pub}
	msg := interfaces.EmailMessage{
		UserID:  "user-1",
		Type:    entities.NotificationTypePaymentDue,
		To:      "u@example.com",
		Subject: "New Commission Invoice",
		Text:    "Payment is due",
	}

	require.NoError(t, q.Send(context.Background(), msg))
	assert.Equal(t, "ikhaya.mail.payment_due", pub.subject)

	var got interfaces.EmailMessage
	require.NoError(t, json.Unmarshal(pub.data, &got))
	assert.Equal(t, msg, got)
}

func TestEmailQueue_SendError(t *testing.T) {
	q := &EmailQueue{js: &fakePublisher{err: errors.New("no responders")}}
	err := q.Send(context.Background(), interfaces.EmailMessage{UserID: "user-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ikhaya.mail.general")
}

func TestEmailSubject_UnknownTypes(t *testing.T) {
	for _, typ := range []entities.NotificationType{"", "custom", "payment_due.>", "*", "lease expired"} {
		assert.Equal(t, "ikhaya.mail.general", emailSubject(interfaces.EmailMessage{Type: typ}), string(typ))
	}
	assert.Equal(t, "ikhaya.mail.lease_expired", emailSubject(interfaces.EmailMessage{Type: entities.NotificationTypeLeaseExpired}))
}

func TestEmailQueue_CloseWithoutConnection(t *testing.T) {
	(&EmailQueue{}).Close()
}
