package document

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
}

func TestRenderer_PlaceholderDocument(t *testing.T) {
	r := NewRenderer().WithClock(fixedClock)

	art, err := r.Render(context.Background(), Document{
		Header:     testHeader,
		Sections:   placeholderSections(),
		ClientName: "Maria  Clara",
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(art.Data, []byte("%PDF-")))
	assert.Equal(t, ContentType, art.ContentType)
	assert.Equal(t, "Briefing_AnnaForm_Maria_Clara.pdf", art.FileName)
	assert.GreaterOrEqual(t, art.Pages, 2)
	assert.Equal(t, art.Layout.Pages, art.Pages)
	assert.Equal(t, len(art.Data), art.Size())
}

func TestRenderer_LongHistorySpillsOver(t *testing.T) {
	r := NewRenderer().WithClock(fixedClock)
	sections := placeholderSections()
	sections[1].Entries[0].Value = strings.Repeat("Nossa marca nasceu de um sonho. ", 63)[:2000]

	art, err := r.Render(context.Background(), Document{Header: testHeader, Sections: sections, ClientName: "Ana"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, art.Pages, 2)
}

func TestRenderer_SamePaginationTwice(t *testing.T) {
	r := NewRenderer().WithClock(fixedClock)
	doc := Document{Header: testHeader, Sections: placeholderSections(), ClientName: "Ana"}
	doc.Sections[3].Entries[2].Value = strings.Repeat("leveza, luxo, afeto ", 40)

	first, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	second, err := r.Render(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, first.Layout, second.Layout)
}

func TestRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer().Render(ctx, Document{Header: testHeader})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPDFCanvas_SplitTextKeepsAccents(t *testing.T) {
	canvas := newPDFCanvas(fpdf.New("P", "mm", "A4", ""))
	canvas.AddPage()
	canvas.SetFont(StyleRegular, 10)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"cp1252 text", "Não informado — Ação", "Não informado — Ação"},
		{"outside the code page", "Olá ✨", "Olá ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := canvas.SplitText(tt.in, ValueWidth)
			assert.Equal(t, []string{tt.want}, lines)
		})
	}
}

func TestPDFCanvas_SplitTextWrapsAccentedText(t *testing.T) {
	canvas := newPDFCanvas(fpdf.New("P", "mm", "A4", ""))
	canvas.AddPage()
	canvas.SetFont(StyleRegular, 10)

	in := strings.TrimSpace(strings.Repeat("coração ", 60))
	lines := canvas.SplitText(in, ValueWidth)

	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.NotContains(t, line, "\uFFFD")
		assert.Contains(t, line, "coração")
	}
}
