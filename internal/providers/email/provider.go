// Package email sends outbound mail. The SMTP implementation is used in
// deployment; NoOp keeps local runs and tests working without a relay.
package email

import "context"

type Message struct {
	To      string
	Subject string
	Body    string
}

type Provider interface {
	Send(ctx context.Context, msg Message) error
}

type NoOp struct{}

func (NoOp) Send(ctx context.Context, msg Message) error { return nil }
