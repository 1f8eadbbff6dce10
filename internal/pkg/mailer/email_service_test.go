package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestAttach_EmbedsFileInMessage(t *testing.T) {
	s := &emailService{senderEmail: "studio@example.com", senderName: "Anna Designer"}
	m := s.newMessage("inbox@example.com", "Briefing", "<p>oi</p>")
	attach(m, "Briefing_AnnaForm_Maria.pdf", "application/pdf", []byte("%PDF-1.3 fake"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Subject: Briefing")
	assert.Contains(t, out, `filename="Briefing_AnnaForm_Maria.pdf"`)
	assert.Contains(t, out, "Content-Type: application/pdf")
	assert.Contains(t, out, "Anna Designer")
}

func TestNewEmailService(t *testing.T) {
	svc := NewEmailService("smtp.example.com", 587, "studio@example.com", "secret", "Anna", nil)
	impl, ok := svc.(*emailService)
	require.True(t, ok)
	assert.Equal(t, "studio@example.com", impl.senderEmail)
	assert.IsType(t, &gomail.Dialer{}, impl.dialer)
}
