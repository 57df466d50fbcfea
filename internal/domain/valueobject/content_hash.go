package valueobject

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// contentHashSeparator joins the hash input fields. Changing it would change
// every stored hash, so it is fixed forever.
const contentHashSeparator = "|"

// ContentHash derives the stable dedup key for a statement line: SHA-1 over
// the ISO date, the normalized description key and the amount formatted to
// exactly two decimals. Whitespace and case variations in the raw description
// do not affect the hash because normalization happens first.
func ContentHash(date time.Time, descriptionKey string, amount decimal.Decimal) string {
	payload := strings.Join([]string{
		date.Format("2006-01-02"),
		descriptionKey,
		amount.StringFixed(2),
	}, contentHashSeparator)

	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
