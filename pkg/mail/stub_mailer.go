package mail

import "context"

type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// StubMailer records sent messages instead of delivering them.
type StubMailer struct {
	Sent    []SentMessage
	sendErr error
}

func NewStubMailer() *StubMailer {
	return &StubMailer{}
}

func (m *StubMailer) Send(ctx context.Context, to string, subject string, htmlBody string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.Sent = append(m.Sent, SentMessage{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *StubMailer) SetSendError(err error) {
	m.sendErr = err
}
