package valueobject

import "testing"

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"strips diacritics", "Condomínio São João", "condominio sao joao"},
		{"lower cases", "EMPRESA EXEMPLO LTDA", "empresa exemplo ltda"},
		{"collapses whitespace", "  Pix   recebido \t Maria  ", "pix recebido maria"},
		{"drops non ascii remnants", "Pagamento • Café", "pagamento cafe"},
		{"empty input", "", ""},
		{"only whitespace", "   \t  ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeKey(tc.input); got != tc.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
