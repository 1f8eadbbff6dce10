package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/annaddsgr/Portfolio/internal/dto"
	"github.com/annaddsgr/Portfolio/internal/pkg/logger"
	"github.com/annaddsgr/Portfolio/pkg/delivery"
	"github.com/annaddsgr/Portfolio/pkg/i18n"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// Mailer is the part of the mailer the contact form uses.
type Mailer interface {
	Send(toEmail, subject, htmlBody string) error
}

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type contactService struct {
	mailer      Mailer
	studioEmail string
	phone       string
	md          goldmark.Markdown
	logger      logger.ILogger
}

// NewContactService builds the WhatsApp hand-off of the contact section.
// With a mailer the message is also copied to the studio inbox.
func NewContactService(mailer Mailer, studioEmail, phone string, log logger.ILogger) IContactService {
	if phone == "" {
		phone = delivery.DefaultPhone
	}
	return &contactService{
		mailer:      mailer,
		studioEmail: studioEmail,
		phone:       phone,
		md:          goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps())),
		logger:      log,
	}
}

func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	tr := i18n.For(i18n.ParseLocale(req.Locale))
	text := delivery.ContactMessage(tr, req.Name, req.Email, req.Message)

	res := &dto.ContactResponse{
		DeepLink: delivery.WhatsAppLink(s.phone, text),
	}

	if s.mailer != nil && s.studioEmail != "" {
		var body bytes.Buffer
		if err := s.md.Convert([]byte(text), &body); err != nil {
			return nil, fmt.Errorf("failed to render contact message: %w", err)
		}
		if err := s.mailer.Send(s.studioEmail, tr.T(i18n.NavContact)+": "+req.Name, body.String()); err != nil {
			s.logger.Warn("ContactService", "Failed to copy contact message to studio inbox", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			res.Emailed = true
		}
	}

	return res, nil
}
