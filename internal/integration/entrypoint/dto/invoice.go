// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/receber-inter/backend/internal/application/usecase/invoice"
	"github.com/receber-inter/backend/internal/domain/entity"
)

// GenerateInvoicesRequest represents the request body for batch generation.
type GenerateInvoicesRequest struct {
	Year      int    `json:"year" binding:"required"`
	Month     int    `json:"month" binding:"required"`
	ClientIDs []uint `json:"client_ids" binding:"required,min=1"`
}

// GenerateResultResponse is the per-client outcome of a generation batch.
type GenerateResultResponse struct {
	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`
	InvoiceID  uint   `json:"invoice_id,omitempty"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

// GenerateInvoicesResponse represents the response for batch generation.
type GenerateInvoicesResponse struct {
	Results []GenerateResultResponse `json:"results"`
	Issued  int                      `json:"issued"`
	Skipped int                      `json:"skipped"`
	Failed  int                      `json:"failed"`
}

// MarkPaidRequest represents the request body for manual settlement.
type MarkPaidRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=pix cash"`
	PaymentDate   string `json:"payment_date,omitempty"` // YYYY-MM-DD, defaults to today
}

// InvoiceResponse represents a single invoice in API responses.
type InvoiceResponse struct {
	ID             uint       `json:"id"`
	ClientID       uint       `json:"client_id"`
	ClientName     string     `json:"client_name,omitempty"`
	ReferenceYear  int        `json:"reference_year"`
	ReferenceMonth int        `json:"reference_month"`
	DueDate        string     `json:"due_date"`
	Amount         string     `json:"amount"`
	Status         string     `json:"status"`
	PaymentMethod  string     `json:"payment_method,omitempty"`
	PaymentDate    *string    `json:"payment_date,omitempty"`
	OurNumber      string     `json:"our_number,omitempty"`
	DigitableLine  string     `json:"digitable_line,omitempty"`
	Barcode        string     `json:"barcode,omitempty"`
	RequestCode    string     `json:"request_code,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// InvoiceListResponse represents the response for listing invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ReminderStepResponse records one relay message outcome.
type ReminderStepResponse struct {
	Content string `json:"content"`
	Sent    bool   `json:"sent"`
}

// SendReminderResponse represents the response for a reminder dispatch.
type SendReminderResponse struct {
	InvoiceID uint                   `json:"invoice_id"`
	Phone     string                 `json:"phone"`
	Steps     []ReminderStepResponse `json:"steps"`
}

// ToInvoiceResponse converts a domain Invoice entity to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *entity.Invoice, clientName string) InvoiceResponse {
	response := InvoiceResponse{
		ID:             inv.ID,
		ClientID:       inv.ClientID,
		ClientName:     clientName,
		ReferenceYear:  inv.ReferenceYear,
		ReferenceMonth: inv.ReferenceMonth,
		DueDate:        inv.DueDate.Format("2006-01-02"),
		Amount:         inv.Amount.StringFixed(2),
		Status:         string(inv.Status),
		PaymentMethod:  string(inv.PaymentMethod),
		OurNumber:      inv.OurNumber,
		DigitableLine:  inv.DigitableLine,
		Barcode:        inv.Barcode,
		RequestCode:    inv.RequestCode,
		ErrorMessage:   inv.ErrorMessage,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
	if inv.PaymentDate != nil {
		formatted := inv.PaymentDate.Format("2006-01-02")
		response.PaymentDate = &formatted
	}
	return response
}

// ToGenerateInvoicesResponse converts a generation output to its response DTO.
func ToGenerateInvoicesResponse(output *invoice.GenerateInvoicesOutput) GenerateInvoicesResponse {
	response := GenerateInvoicesResponse{
		Results: make([]GenerateResultResponse, len(output.Results)),
		Issued:  output.Issued,
		Skipped: output.Skipped,
		Failed:  output.Failed,
	}
	for i, result := range output.Results {
		response.Results[i] = GenerateResultResponse{
			ClientID:   result.ClientID,
			ClientName: result.ClientName,
			InvoiceID:  result.InvoiceID,
			Status:     string(result.Status),
			Error:      result.Error,
		}
	}
	return response
}

// ToSendReminderResponse converts a reminder output to its response DTO.
func ToSendReminderResponse(output *invoice.SendReminderOutput) SendReminderResponse {
	response := SendReminderResponse{
		InvoiceID: output.InvoiceID,
		Phone:     output.Phone,
		Steps:     make([]ReminderStepResponse, len(output.Steps)),
	}
	for i, step := range output.Steps {
		response.Steps[i] = ReminderStepResponse{Content: step.Content, Sent: step.Sent}
	}
	return response
}
