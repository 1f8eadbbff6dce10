package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryLocaleIsComplete(t *testing.T) {
	for _, loc := range Locales() {
		tbl := tables[loc]
		for k := Key(0); k < keyCount; k++ {
			if tbl[k] == "" {
				t.Errorf("locale %q is missing key %d", loc, k)
			}
		}
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		raw  string
		want Locale
	}{
		{"pt", Portuguese},
		{"pt-BR", Portuguese},
		{"EN", English},
		{"en_US", English},
		{"fr", DefaultLocale},
		{"", DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocale(tt.raw))
		})
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "Não informado", T(Portuguese, DocNotInformed))
	assert.Equal(t, "Not informed", T(English, DocNotInformed))
	assert.Equal(t, "Não informado", T(Locale("xx"), DocNotInformed))
	assert.Empty(t, T(Portuguese, keyCount))
	assert.Equal(t, "Projects", For(English).T(NavProjects))
}
