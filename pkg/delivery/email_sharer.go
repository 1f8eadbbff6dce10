package delivery

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/annaddsgr/Portfolio/pkg/document"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var ErrShareNotConfigured = errors.New("share channel is not configured")

// AttachmentMailer is the part of the mailer the e-mail share needs.
type AttachmentMailer interface {
	SendWithAttachment(to, subject, htmlBody, fileName, contentType string, data []byte) error
}

// EmailSharer shares the artifact by mailing it to the studio inbox. It is
// the server-side counterpart of the browser's native file share.
type EmailSharer struct {
	mailer   AttachmentMailer
	to       string
	maxBytes int
	md       goldmark.Markdown
}

func NewEmailSharer(mailer AttachmentMailer, to string, maxBytes int) *EmailSharer {
	return &EmailSharer{
		mailer:   mailer,
		to:       to,
		maxBytes: maxBytes,
		md:       goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps())),
	}
}

func (s *EmailSharer) CanShare(a *document.Artifact) bool {
	if s.mailer == nil || s.to == "" || a == nil || a.Size() == 0 {
		return false
	}
	return s.maxBytes <= 0 || a.Size() <= s.maxBytes
}

func (s *EmailSharer) Share(ctx context.Context, a *document.Artifact, title, text string) error {
	if !s.CanShare(a) {
		return ErrShareNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := s.md.Convert([]byte(text), &body); err != nil {
		return fmt.Errorf("failed to render share body: %w", err)
	}

	return s.mailer.SendWithAttachment(s.to, title, body.String(), a.FileName, a.ContentType, a.Data)
}
