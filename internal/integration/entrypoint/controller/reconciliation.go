// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/receber-inter/backend/internal/application/usecase/reconciliation"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
	"github.com/receber-inter/backend/internal/integration/entrypoint/dto"
)

// ReconciliationController handles bank statement reconciliation endpoints.
type ReconciliationController struct {
	importUseCase *reconciliation.ImportStatementUseCase
	listUseCase   *reconciliation.ListEntriesUseCase
	linkUseCase   *reconciliation.ManualLinkUseCase
	purgeUseCase  *reconciliation.PurgeUnlinkedUseCase
}

// NewReconciliationController creates a new reconciliation controller instance.
func NewReconciliationController(
	importUseCase *reconciliation.ImportStatementUseCase,
	listUseCase *reconciliation.ListEntriesUseCase,
	linkUseCase *reconciliation.ManualLinkUseCase,
	purgeUseCase *reconciliation.PurgeUnlinkedUseCase,
) *ReconciliationController {
	return &ReconciliationController{
		importUseCase: importUseCase,
		listUseCase:   listUseCase,
		linkUseCase:   linkUseCase,
		purgeUseCase:  purgeUseCase,
	}
}

// Import handles POST /reconciliation/import requests. The statement export
// comes as a multipart "file" field.
func (c *ReconciliationController) Import(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Statement file is required",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to open statement file",
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read statement file",
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), reconciliation.ImportStatementInput{File: content})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportStatementResponse(output))
}

// List handles GET /reconciliation/entries requests.
func (c *ReconciliationController) List(ctx *gin.Context) {
	input := reconciliation.ListEntriesInput{
		OnlyUnlinked: ctx.Query("only_unlinked") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve statement entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListEntriesResponse(output))
}

// Link handles POST /reconciliation/entries/:id/link requests.
func (c *ReconciliationController) Link(ctx *gin.Context) {
	entryID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ManualLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.linkUseCase.Execute(ctx.Request.Context(), reconciliation.ManualLinkInput{
		EntryID:   entryID,
		InvoiceID: req.InvoiceID,
	})
	if err != nil {
		c.handleReconciliationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ManualLinkResponse{
		EntryID:   output.EntryID,
		InvoiceID: output.InvoiceID,
		ClientID:  output.ClientID,
	})
}

// Purge handles DELETE /reconciliation/entries/unlinked requests.
func (c *ReconciliationController) Purge(ctx *gin.Context) {
	output, err := c.purgeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to purge unlinked entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.PurgeUnlinkedResponse{Removed: output.Removed})
}

// handleReconciliationError handles reconciliation errors and returns
// appropriate HTTP responses.
func (c *ReconciliationController) handleReconciliationError(ctx *gin.Context, err error) {
	var recErr *domainerror.ReconciliationError
	if errors.As(err, &recErr) {
		ctx.JSON(c.getStatusCodeForReconciliationError(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReconciliationError maps reconciliation error codes to HTTP
// status codes.
func (c *ReconciliationController) getStatusCodeForReconciliationError(code domainerror.ReconciliationErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound,
		domainerror.ErrCodeLinkInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeStatementHeaderNotFound,
		domainerror.ErrCodeStatementNoValidRows,
		domainerror.ErrCodeStatementUnreadable,
		domainerror.ErrCodeInvoiceNotLinkable:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
