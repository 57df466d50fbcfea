package invoice

import (
	"testing"

	"github.com/receber-inter/backend/internal/domain/entity"
)

func TestFormatWhatsAppPhone(t *testing.T) {
	cases := []struct {
		name     string
		areaCode string
		phone    string
		want     string
	}{
		{"area code plus nine digits", "11", "98765-4321", "5511987654321@s.whatsapp.net"},
		{"area code plus eight digits", "11", "8765-4321", "551187654321@s.whatsapp.net"},
		{"already has country code", "", "5511987654321", "5511987654321@s.whatsapp.net"},
		{"full number without area code field", "", "(11) 98765-4321", "5511987654321@s.whatsapp.net"},
		{"punctuation stripped", "(11)", "9.8765-4321", "5511987654321@s.whatsapp.net"},
		{"too short", "", "4321", ""},
		{"empty", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &entity.Client{AreaCode: tc.areaCode, Phone: tc.phone}
			if got := formatWhatsAppPhone(client); got != tc.want {
				t.Errorf("formatWhatsAppPhone(%q, %q) = %q, want %q", tc.areaCode, tc.phone, got, tc.want)
			}
		})
	}
}
