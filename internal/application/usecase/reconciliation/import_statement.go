package reconciliation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/receber-inter/backend/internal/application/adapter"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
)

// ImportStatementInput represents the input for a statement import.
type ImportStatementInput struct {
	// File is the raw statement export (semicolon-delimited text).
	File []byte
}

// ImportStatementOutput represents the result of a statement import.
type ImportStatementOutput struct {
	Imported    int // valid rows processed (created or updated)
	Created     int // rows that materialized a new entry
	AutoSettled int // entries that settled an invoice during this import
	SkippedRows int // data rows dropped by date/amount parse failures
}

// ImportStatementUseCase handles statement import, deduplication and
// per-entry auto-settlement.
type ImportStatementUseCase struct {
	reconciliationRepo adapter.ReconciliationRepository
	invoiceRepo        adapter.InvoiceRepository
}

// NewImportStatementUseCase creates a new ImportStatementUseCase instance.
func NewImportStatementUseCase(
	reconciliationRepo adapter.ReconciliationRepository,
	invoiceRepo adapter.InvoiceRepository,
) *ImportStatementUseCase {
	return &ImportStatementUseCase{
		reconciliationRepo: reconciliationRepo,
		invoiceRepo:        invoiceRepo,
	}
}

// Execute parses the statement file, upserts each row by content hash and
// attempts auto-settlement for every entry. Row failures never roll back
// rows already committed earlier in the same file.
func (uc *ImportStatementUseCase) Execute(ctx context.Context, input ImportStatementInput) (*ImportStatementOutput, error) {
	rows, skipped, err := parseStatement(input.File)
	if err != nil {
		return nil, err
	}

	output := &ImportStatementOutput{SkippedRows: skipped}

	for _, row := range rows {
		entry := &entity.StatementEntry{
			ContentHash:    row.Hash,
			Date:           row.Date,
			Description:    row.Description,
			DescriptionKey: row.Key,
			Amount:         row.Amount,
		}

		created, err := uc.reconciliationRepo.UpsertEntry(ctx, entry)
		if err != nil {
			slog.Warn("Failed to upsert statement entry",
				"hash", row.Hash,
				"date", row.Date.Format("2006-01-02"),
				"error", err,
			)
			output.SkippedRows++
			continue
		}

		output.Imported++
		if created {
			output.Created++
		}

		settled, err := uc.autoSettle(ctx, entry)
		if err != nil {
			slog.Warn("Auto-settlement failed for statement entry",
				"entryID", entry.ID,
				"error", err,
			)
			continue
		}
		if settled {
			output.AutoSettled++
		}
	}

	return output, nil
}

// autoSettle applies the auto-settlement heuristic for one imported entry.
//
// Case A: the entry already carries an invoice link and the invoice is still
// open: settle it with the entry's date as a PIX payment, learning an alias
// for the entry's key along the way.
//
// Case B: the entry's key matches a learned alias. Settle the aliased
// client's open invoice whose amount exactly equals the entry's, preferring
// the earliest due date and lowest invoice ID.
//
// Case C: no link and no alias match. Leave the entry for manual review.
func (uc *ImportStatementUseCase) autoSettle(ctx context.Context, entry *entity.StatementEntry) (bool, error) {
	if entry.IsLinked() {
		invoice, err := uc.invoiceRepo.FindByID(ctx, *entry.InvoiceID)
		if err != nil {
			if errors.Is(err, domainerror.ErrInvoiceNotFound) {
				return false, nil
			}
			return false, err
		}
		if !invoice.IsOpen() {
			return false, nil
		}
		return true, uc.settleEntry(ctx, entry, invoice)
	}

	alias, err := uc.reconciliationRepo.FindAliasByKey(ctx, entry.DescriptionKey)
	if err != nil {
		if errors.Is(err, domainerror.ErrAliasNotFound) {
			return false, nil
		}
		return false, err
	}

	candidates, err := uc.invoiceRepo.FindOpenByClientAndAmount(ctx, alias.ClientID, entry.Amount)
	if err != nil {
		return false, err
	}
	if len(candidates) == 0 {
		// Known client but no exact-amount open invoice: left for manual review.
		return false, nil
	}

	return true, uc.settleEntry(ctx, entry, candidates[0])
}

// settleEntry commits the link, settlement and alias learning for one entry
// as a single unit. The automatic path repoints an existing alias (last
// write wins).
func (uc *ImportStatementUseCase) settleEntry(ctx context.Context, entry *entity.StatementEntry, invoice *entity.Invoice) error {
	err := uc.reconciliationRepo.LinkAndSettle(ctx, adapter.LinkAndSettleParams{
		EntryID:       entry.ID,
		InvoiceID:     invoice.ID,
		PaymentMethod: entity.PaymentMethodPix,
		PaymentDate:   entry.Date,
		AliasKey:      entry.DescriptionKey,
		AliasClientID: invoice.ClientID,
		RepointAlias:  true,
	})
	if err != nil {
		return err
	}

	entry.InvoiceID = &invoice.ID
	return nil
}
