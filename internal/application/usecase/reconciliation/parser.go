package reconciliation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	domainerror "github.com/receber-inter/backend/internal/domain/error"
	"github.com/receber-inter/backend/internal/domain/valueobject"
)

// statementDateLayout is the date format used by the bank's statement export.
const statementDateLayout = "02/01/2006"

// parsedRow is one valid data row extracted from a statement file.
type parsedRow struct {
	Date        time.Time
	Description string
	Key         string
	Amount      decimal.Decimal
	Hash        string
}

// parseStatement parses a semicolon-delimited bank statement export. The
// header row must carry "data" in column 0 and "valor" in column 3; data rows
// failing date or amount parsing are skipped silently. It returns the valid
// rows and the number of data rows skipped. The only reported failures are a
// missing header and a header with zero valid rows.
func parseStatement(data []byte) ([]parsedRow, int, error) {
	text, err := decodeStatement(data)
	if err != nil {
		return nil, 0, domainerror.NewReconciliationError(
			domainerror.ErrCodeStatementUnreadable,
			"statement file could not be decoded",
			err,
		)
	}

	var rows []parsedRow
	skipped := 0
	headerFound := false

	for _, line := range strings.Split(text, "\n") {
		cols := strings.Split(strings.TrimRight(line, "\r"), ";")
		if isBlankRow(cols) {
			continue
		}

		if !headerFound {
			if isHeaderRow(cols) {
				headerFound = true
			}
			// Anything before the header row is preamble.
			continue
		}

		row, ok := parseDataRow(cols)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	if !headerFound {
		return nil, skipped, domainerror.NewReconciliationError(
			domainerror.ErrCodeStatementHeaderNotFound,
			"statement header with 'Data' and 'Valor' columns not found",
			domainerror.ErrStatementHeaderNotFound,
		)
	}
	if len(rows) == 0 {
		return nil, skipped, domainerror.NewReconciliationError(
			domainerror.ErrCodeStatementNoValidRows,
			"no valid records found in statement",
			domainerror.ErrStatementNoValidRows,
		)
	}

	return rows, skipped, nil
}

// decodeStatement interprets the byte stream as UTF-8 (tolerating a BOM) and
// falls back to Latin-1, the encoding older bank exports still use.
func decodeStatement(data []byte) (string, error) {
	data = []byte(strings.TrimPrefix(string(data), "\uFEFF"))
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func isBlankRow(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func isHeaderRow(cols []string) bool {
	if len(cols) < 4 {
		return false
	}
	return strings.Contains(strings.ToLower(cols[0]), "data") &&
		strings.Contains(strings.ToLower(cols[3]), "valor")
}

func parseDataRow(cols []string) (parsedRow, bool) {
	if len(cols) < 4 {
		return parsedRow{}, false
	}

	date, err := time.Parse(statementDateLayout, strings.TrimSpace(cols[0]))
	if err != nil {
		return parsedRow{}, false
	}

	amount, ok := parseAmount(cols[3])
	if !ok {
		return parsedRow{}, false
	}

	description := strings.TrimSpace(cols[2])
	if description == "" {
		description = strings.TrimSpace(cols[1])
	}

	key := valueobject.NormalizeKey(description)

	return parsedRow{
		Date:        date,
		Description: description,
		Key:         key,
		Amount:      amount,
		Hash:        valueobject.ContentHash(date, key, amount),
	}, true
}

// parseAmount parses a Brazilian-convention monetary value: optional "R$"
// prefix, "." as thousands separator when "," is present, "," as the decimal
// separator. The result is rounded half-up to two decimal places.
func parseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Decimal{}, false
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount.Round(2), true
}
