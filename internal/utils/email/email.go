package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
	"github.com/zakatech/zakat-service/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendHaulReminder notifies a donor that their Haul is complete or approaching
// completion.
func (s *Sender) SendHaulReminder(to, fullName, dueDate string, daysRemaining int, isDue bool) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	if isDue {
		e.Subject = "Your Zakat is Due"
	} else {
		e.Subject = "Upcoming Zakat Due Date"
	}

	body := fmt.Sprintf("Dear %s,\n\n", fullName)
	if isDue {
		body += fmt.Sprintf(
			"Your wealth has completed the one lunar-year holding period (Haul) as of %s.\n"+
				"Your Zakat is now due. Please log in to review your liability and record your payment.\n",
			dueDate,
		)
	} else {
		body += fmt.Sprintf(
			"Your Haul completes in %d days, on %s.\n"+
				"You may want to review your financial profile so your Zakat estimate is up to date.\n",
			daysRemaining, dueDate,
		)
	}
	body += "\nBest regards,\nZakaTech"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
