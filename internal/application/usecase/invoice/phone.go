package invoice

import (
	"strings"

	"github.com/receber-inter/backend/internal/domain/entity"
)

// whatsAppSuffix is the JID suffix the relay expects on recipient numbers.
const whatsAppSuffix = "@s.whatsapp.net"

// formatWhatsAppPhone normalizes a client's phone into a 55-prefixed
// WhatsApp JID. Returns "" when no usable number can be derived.
func formatWhatsAppPhone(client *entity.Client) string {
	digits := onlyDigits(client.AreaCode + client.Phone)
	if digits == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(digits, "55") && (len(digits) == 12 || len(digits) == 13):
		// Already has the country code.
	case len(digits) == 10 || len(digits) == 11:
		digits = "55" + digits
	case len(digits) == 9 && client.AreaCode != "":
		area := onlyDigits(client.AreaCode)
		if len(area) > 3 {
			area = area[:3]
		}
		digits = "55" + area + digits
	default:
		return ""
	}

	return digits + whatsAppSuffix
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
