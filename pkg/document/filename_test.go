package document

import "testing"

func TestFileName(t *testing.T) {
	tests := []struct {
		name   string
		client string
		want   string
	}{
		{"double space", "Maria  Clara", "Briefing_AnnaForm_Maria_Clara.pdf"},
		{"single word", "Anna", "Briefing_AnnaForm_Anna.pdf"},
		{"tabs and newlines", "Maria\t\nClara", "Briefing_AnnaForm_Maria_Clara.pdf"},
		{"accents kept", "João Conceição", "Briefing_AnnaForm_João_Conceição.pdf"},
		{"path separators dropped", "../etc/passwd", "Briefing_AnnaForm_etcpasswd.pdf"},
		{"punctuation dropped", "Ana & Cia. Ltda!", "Briefing_AnnaForm_Ana_Cia_Ltda.pdf"},
		{"surrounding space trimmed", "  Ana  ", "Briefing_AnnaForm_Ana.pdf"},
		{"empty", "", "Briefing_AnnaForm_cliente.pdf"},
		{"only punctuation", "?!*", "Briefing_AnnaForm_cliente.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileName(tt.client); got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.client, got, tt.want)
			}
		})
	}
}
