package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type FollowUpSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewFollowUpSender(host string, port int, user, password, from string) *FollowUpSender {
	return &FollowUpSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendFollowUp delivers the generated message to the lead's inbox as plain
// text. The caller decides whether a send is warranted (lead has an email).
func (s *FollowUpSender) SendFollowUp(to, customer, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Checking in, %s!", customer))
	m.SetBody("text/plain", message)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send follow-up email: %w", err)
	}
	return nil
}
