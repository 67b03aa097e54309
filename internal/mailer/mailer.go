package mailer

import (
	"fmt"

	"hrms-backend/config"

	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends leave-decision notifications. When no SMTP host is
// configured it logs instead of sending, so local setups work without
// a mail server.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func New() *Mailer {
	return &Mailer{
		host: config.GetEnv("SMTP_HOST", ""),
		port: config.GetEnvAsInt("SMTP_PORT", 587),
		user: config.GetEnv("SMTP_USER", ""),
		pass: config.GetEnv("SMTP_PASSWORD", ""),
		from: config.GetEnv("SMTP_FROM", "hr@example.com"),
	}
}

// SendLeaveDecision notifies an employee that a leave request was
// approved or rejected.
func (m *Mailer) SendLeaveDecision(to, fullname, leaveType, startDate, endDate, status string) {
	subject := fmt.Sprintf("Your %s leave request was %s", leaveType, status)
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour %s leave from %s to %s has been %s.\r\n\r\nHR Department",
		fullname, leaveType, startDate, endDate, status,
	)

	if m.host == "" {
		log.WithFields(log.Fields{"to": to, "subject": subject}).Info("SMTP not configured, skipping mail")
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		log.WithError(err).WithField("to", to).Error("failed to send leave notification")
	}
}
