package document_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/annaddsgr/Portfolio/pkg/briefing"
	"github.com/annaddsgr/Portfolio/pkg/document"
	"github.com/annaddsgr/Portfolio/pkg/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func TestRender_EmptyAnswersPortuguese(t *testing.T) {
	doc := briefing.Document(briefing.Answers{}, i18n.For(i18n.Portuguese), generatedAt)

	art, err := document.NewRenderer().Render(context.Background(), doc)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, art.Pages, 2)
}

func TestRender_NonLatinValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"accents and emoji", "Ação ✨"},
		{"cjk", "品牌设计工作室"},
		{"dashes and quotes", "Olá — “aspas”"},
		{"long accented text", strings.Repeat("coração, emoção, atenção ", 120)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := briefing.Answers{Name: "João Ávila", History: tt.value, Service: "Identidade Visual"}
			doc := briefing.Document(a, i18n.For(i18n.Portuguese), generatedAt)

			art, err := document.NewRenderer().Render(context.Background(), doc)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, art.Pages, 1)
			assert.Equal(t, "Briefing_AnnaForm_João_Ávila.pdf", art.FileName)
		})
	}
}
