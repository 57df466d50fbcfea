// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/receber-inter/backend/internal/application/usecase/reconciliation"
)

// ImportStatementResponse represents the result of a statement import.
type ImportStatementResponse struct {
	Imported    int `json:"imported"`
	Created     int `json:"created"`
	AutoSettled int `json:"auto_settled"`
	SkippedRows int `json:"skipped_rows"`
}

// SuggestionResponse is one ranked invoice candidate for an entry.
type SuggestionResponse struct {
	InvoiceID         uint   `json:"invoice_id"`
	ClientID          uint   `json:"client_id"`
	ClientName        string `json:"client_name"`
	DueDate           string `json:"due_date"`
	Amount            string `json:"amount"`
	Status            string `json:"status"`
	AmountDifference  string `json:"amount_difference"`
	SimilarityPercent int    `json:"similarity_percent"`
}

// StatementEntryResponse represents a statement entry with its candidates.
type StatementEntryResponse struct {
	ID          uint                 `json:"id"`
	Date        string               `json:"date"`
	Description string               `json:"description"`
	Amount      string               `json:"amount"`
	InvoiceID   *uint                `json:"invoice_id,omitempty"`
	Linked      bool                 `json:"linked"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// ListEntriesResponse represents the reconciliation review listing.
type ListEntriesResponse struct {
	Entries []StatementEntryResponse `json:"entries"`
}

// ManualLinkRequest represents an operator's confirm-and-link request.
type ManualLinkRequest struct {
	InvoiceID uint `json:"invoice_id" binding:"required"`
}

// ManualLinkResponse represents the result of a manual link.
type ManualLinkResponse struct {
	EntryID   uint `json:"entry_id"`
	InvoiceID uint `json:"invoice_id"`
	ClientID  uint `json:"client_id"`
}

// PurgeUnlinkedResponse represents the result of an administrative purge.
type PurgeUnlinkedResponse struct {
	Removed int64 `json:"removed"`
}

// ToImportStatementResponse converts an import output to its response DTO.
func ToImportStatementResponse(output *reconciliation.ImportStatementOutput) ImportStatementResponse {
	return ImportStatementResponse{
		Imported:    output.Imported,
		Created:     output.Created,
		AutoSettled: output.AutoSettled,
		SkippedRows: output.SkippedRows,
	}
}

// ToListEntriesResponse converts a listing output to its response DTO.
func ToListEntriesResponse(output *reconciliation.ListEntriesOutput) ListEntriesResponse {
	response := ListEntriesResponse{Entries: make([]StatementEntryResponse, len(output.Entries))}

	for i, item := range output.Entries {
		entry := StatementEntryResponse{
			ID:          item.Entry.ID,
			Date:        item.Entry.Date.Format("2006-01-02"),
			Description: item.Entry.Description,
			Amount:      item.Entry.Amount.StringFixed(2),
			InvoiceID:   item.Entry.InvoiceID,
			Linked:      item.Entry.IsLinked(),
			Suggestions: make([]SuggestionResponse, len(item.Suggestions)),
		}

		for j, suggestion := range item.Suggestions {
			entry.Suggestions[j] = SuggestionResponse{
				InvoiceID:         suggestion.Invoice.ID,
				ClientID:          suggestion.Invoice.ClientID,
				ClientName:        suggestion.ClientName,
				DueDate:           suggestion.Invoice.DueDate.Format("2006-01-02"),
				Amount:            suggestion.Invoice.Amount.StringFixed(2),
				Status:            string(suggestion.Invoice.Status),
				AmountDifference:  suggestion.AmountDifference.StringFixed(2),
				SimilarityPercent: suggestion.SimilarityPercent,
			}
		}

		response.Entries[i] = entry
	}

	return response
}
