// Package messaging publishes outgoing emails to NATS JetStream, where the
// mail delivery worker picks them up.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"ikhaya/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	EmailStreamName    = "IKHAYA_MAIL"
	emailSubjectPrefix = "ikhaya.mail."
)

type publisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// EmailQueue implements interfaces.IEmailSender on top of a JetStream stream.
// One message per email, subject ikhaya.mail.<notification type>.
type EmailQueue struct {
	nc *nats.Conn
	js publisher
}

var _ interfaces.IEmailSender = (*EmailQueue)(nil)

// ConnectEmailQueue connects to NATS and makes sure the mail stream exists.
func ConnectEmailQueue(ctx context.Context, url string) (*EmailQueue, error) {
	nc, err := nats.Connect(url, nats.Name("ikhaya"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream init: %w", err)
	}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     EmailStreamName,
		Subjects: []string{emailSubjectPrefix + ">"},
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream stream create: %w", err)
	}

	log.Printf("[notification][queue] nats connected url=%s stream=%s", url, EmailStreamName)
	return &EmailQueue{nc: nc, js: js}, nil
}

func (q *EmailQueue) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	subject := emailSubject(msg)
	ack, err := q.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("nats publish %s: %w", subject, err)
	}
	log.Printf("[notification][queue] email queued user_id=%s subject=%s seq=%d", msg.UserID, subject, ack.Sequence)
	return nil
}

// Close drains pending publishes and closes the connection.
func (q *EmailQueue) Close() {
	if q.nc == nil {
		return
	}
	if err := q.nc.Drain(); err != nil {
		log.Printf("[notification][queue] drain failed err=%v", err)
		q.nc.Close()
	}
}

// emailSubject maps unknown types to ikhaya.mail.general so a message never
// publishes on a wildcard or malformed subject.
func emailSubject(msg interfaces.EmailMessage) string {
	if !msg.Type.Valid() {
		return emailSubjectPrefix + "general"
	}
	return emailSubjectPrefix + string(msg.Type)
}
