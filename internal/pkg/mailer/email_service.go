package mailer

import (
	"io"

	"github.com/annaddsgr/Portfolio/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	Send(toEmail, subject, htmlBody string) error
	SendWithAttachment(toEmail, subject, htmlBody, fileName, contentType string, data []byte) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	logger      logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName string, log logger.ILogger) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		logger:      log,
	}
}

func (s *emailService) Send(toEmail, subject, htmlBody string) error {
	m := s.newMessage(toEmail, subject, htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("Mailer", "Failed to send e-mail", map[string]interface{}{"to": toEmail, "error": err.Error()})
		return err
	}

	s.logger.Info("Mailer", "E-mail sent", map[string]interface{}{"to": toEmail, "subject": subject})
	return nil
}

func (s *emailService) SendWithAttachment(toEmail, subject, htmlBody, fileName, contentType string, data []byte) error {
	m := s.newMessage(toEmail, subject, htmlBody)
	attach(m, fileName, contentType, data)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("Mailer", "Failed to send e-mail with attachment", map[string]interface{}{
			"to":        toEmail,
			"file_name": fileName,
			"error":     err.Error(),
		})
		return err
	}

	s.logger.Info("Mailer", "E-mail with attachment sent", map[string]interface{}{
		"to":        toEmail,
		"file_name": fileName,
		"bytes":     len(data),
	})
	return nil
}

func (s *emailService) newMessage(toEmail, subject, htmlBody string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return m
}

// attach streams data from memory; the artifact never touches the disk.
func attach(m *gomail.Message, fileName, contentType string, data []byte) {
	m.Attach(fileName,
		gomail.SetHeader(map[string][]string{"Content-Type": {contentType}}),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}),
	)
}
