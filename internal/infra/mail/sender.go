package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const leadWonBody = `
<p>Lead #{{.ID}} just moved to <strong>Won</strong>.</p>
<p>Time to open an order and get fulfillment moving.</p>
`

const orderDispatchedBody = `
<p>Order #{{.ID}} has been <strong>Dispatched</strong>.</p>
<p>Courier and tracking details are on the order record.</p>
`

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

// NewEmailSender builds the SMTP notifier. To is the sales inbox that
// receives pipeline milestone notifications.
func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *EmailSender) NotifyLeadWon(leadID int64) error {
	subject := fmt.Sprintf("Lead #%d won 🎉", leadID)
	return s.send(subject, leadWonBody, leadID)
}

func (s *EmailSender) NotifyOrderDispatched(orderID int64) error {
	subject := fmt.Sprintf("Order #%d dispatched", orderID)
	return s.send(subject, orderDispatchedBody, orderID)
}

func (s *EmailSender) send(subject, tmpl string, id int64) error {
	t, err := template.New("notification").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing mail template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, struct{ ID int64 }{ID: id}); err != nil {
		return fmt.Errorf("rendering mail template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending notification mail: %w", err)
	}

	return nil
}
