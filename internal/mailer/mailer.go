// Package mailer defines the narrow delivery contract the account flows
// depend on. Actual SMTP delivery lives outside this service; the default
// implementation writes to the process log so local runs stay self-contained.
package mailer

import "log"

type Mailer interface {
	SendTemporaryPassword(to, name, tempPassword string) error
	SendWelcome(to, name string) error
}

// LogMailer prints mails to the log instead of sending them.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendTemporaryPassword(to, name, tempPassword string) error {
	log.Printf("mail to %s (%s): your temporary password is %s, it expires in 1 hour", to, name, tempPassword)
	return nil
}

func (m *LogMailer) SendWelcome(to, name string) error {
	log.Printf("mail to %s (%s): welcome to WERBEAUTY", to, name)
	return nil
}
