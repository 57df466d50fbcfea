package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle status of a boleto.
type InvoiceStatus string

const (
	InvoiceStatusNew      InvoiceStatus = "new"
	InvoiceStatusIssued   InvoiceStatus = "issued"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
	InvoiceStatusError    InvoiceStatus = "error"
	InvoiceStatusOverdue  InvoiceStatus = "overdue"
)

// PaymentMethod represents how an invoice was paid.
type PaymentMethod string

const (
	PaymentMethodUnset PaymentMethod = ""
	PaymentMethodPix   PaymentMethod = "pix"
	PaymentMethodCash  PaymentMethod = "cash"
)

// OpenStatuses are the statuses an invoice can be settled or linked from.
var OpenStatuses = []InvoiceStatus{InvoiceStatusNew, InvoiceStatusIssued, InvoiceStatusOverdue}

// Invoice represents one boleto billed to a client for a reference month.
type Invoice struct {
	ID             uint
	ClientID       uint
	ReferenceYear  int
	ReferenceMonth int
	DueDate        time.Time
	Amount         decimal.Decimal
	Status         InvoiceStatus
	PaymentMethod  PaymentMethod
	PaymentDate    *time.Time

	// Identifiers assigned by the bank on issuance.
	OurNumber      string // nossoNumero
	DigitableLine  string // linhaDigitavel
	Barcode        string // codigoBarras
	TxID           string
	RequestCode    string // codigoSolicitacao
	ErrorMessage   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewInvoice creates a new Invoice entity in the "new" status.
func NewInvoice(clientID uint, year, month int, dueDate time.Time, amount decimal.Decimal) *Invoice {
	now := time.Now().UTC()

	return &Invoice{
		ClientID:       clientID,
		ReferenceYear:  year,
		ReferenceMonth: month,
		DueDate:        dueDate,
		Amount:         amount,
		Status:         InvoiceStatusNew,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsOpen reports whether the invoice can still receive a payment.
func (i *Invoice) IsOpen() bool {
	for _, s := range OpenStatuses {
		if i.Status == s {
			return true
		}
	}
	return false
}
