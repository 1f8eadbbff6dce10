package delivery

import (
	"context"
	"testing"

	"github.com/annaddsgr/Portfolio/pkg/document"
	"github.com/annaddsgr/Portfolio/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to, subject, body, fileName, contentType string
	data                                     []byte
	calls                                    int
}

func (m *fakeMailer) SendWithAttachment(to, subject, htmlBody, fileName, contentType string, data []byte) error {
	m.calls++
	m.to, m.subject, m.body, m.fileName, m.contentType, m.data = to, subject, htmlBody, fileName, contentType, data
	return nil
}

func TestEmailSharer_CanShare(t *testing.T) {
	art := &document.Artifact{FileName: "a.pdf", Data: make([]byte, 100)}

	tests := []struct {
		name   string
		sharer *EmailSharer
		art    *document.Artifact
		want   bool
	}{
		{"configured", NewEmailSharer(&fakeMailer{}, "studio@example.com", 0), art, true},
		{"within limit", NewEmailSharer(&fakeMailer{}, "studio@example.com", 100), art, true},
		{"over limit", NewEmailSharer(&fakeMailer{}, "studio@example.com", 99), art, false},
		{"no inbox", NewEmailSharer(&fakeMailer{}, "", 0), art, false},
		{"no mailer", NewEmailSharer(nil, "studio@example.com", 0), art, false},
		{"empty artifact", NewEmailSharer(&fakeMailer{}, "studio@example.com", 0), &document.Artifact{}, false},
		{"nil artifact", NewEmailSharer(&fakeMailer{}, "studio@example.com", 0), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sharer.CanShare(tt.art))
		})
	}
}

func TestEmailSharer_Share(t *testing.T) {
	m := &fakeMailer{}
	s := NewEmailSharer(m, "studio@example.com", 0)
	art := &document.Artifact{FileName: "Briefing_AnnaForm_Ana.pdf", ContentType: document.ContentType, Data: []byte("%PDF")}

	text := SummaryMessage(i18n.For(i18n.Portuguese), Summary{ClientName: "Ana", BrandName: "Doce Ateliê", Service: "Outro"})
	require.NoError(t, s.Share(context.Background(), art, "Briefing Estratégico - Anna Designer", text))

	assert.Equal(t, 1, m.calls)
	assert.Equal(t, "studio@example.com", m.to)
	assert.Equal(t, "Briefing Estratégico - Anna Designer", m.subject)
	assert.Equal(t, "Briefing_AnnaForm_Ana.pdf", m.fileName)
	assert.Equal(t, document.ContentType, m.contentType)
	assert.Equal(t, art.Data, m.data)
	assert.Contains(t, m.body, "<em>")
	assert.Contains(t, m.body, "<br")
	assert.Contains(t, m.body, "Doce Ateliê")
}

func TestEmailSharer_ShareNotConfigured(t *testing.T) {
	s := NewEmailSharer(nil, "", 0)
	err := s.Share(context.Background(), &document.Artifact{Data: []byte("x")}, "t", "x")
	assert.ErrorIs(t, err, ErrShareNotConfigured)
}
