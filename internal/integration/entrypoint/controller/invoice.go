// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/receber-inter/backend/internal/application/usecase/invoice"
	"github.com/receber-inter/backend/internal/domain/entity"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
	"github.com/receber-inter/backend/internal/integration/entrypoint/dto"
)

// InvoiceController handles invoice management endpoints.
type InvoiceController struct {
	listUseCase     *invoice.ListInvoicesUseCase
	generateUseCase *invoice.GenerateInvoicesUseCase
	markPaidUseCase *invoice.MarkPaidUseCase
	cancelUseCase   *invoice.CancelInvoiceUseCase
	reminderUseCase *invoice.SendReminderUseCase
	fetchPDFUseCase *invoice.FetchPDFUseCase
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	listUseCase *invoice.ListInvoicesUseCase,
	generateUseCase *invoice.GenerateInvoicesUseCase,
	markPaidUseCase *invoice.MarkPaidUseCase,
	cancelUseCase *invoice.CancelInvoiceUseCase,
	reminderUseCase *invoice.SendReminderUseCase,
	fetchPDFUseCase *invoice.FetchPDFUseCase,
) *InvoiceController {
	return &InvoiceController{
		listUseCase:     listUseCase,
		generateUseCase: generateUseCase,
		markPaidUseCase: markPaidUseCase,
		cancelUseCase:   cancelUseCase,
		reminderUseCase: reminderUseCase,
		fetchPDFUseCase: fetchPDFUseCase,
	}
}

// List handles GET /invoices requests.
func (c *InvoiceController) List(ctx *gin.Context) {
	input := invoice.ListInvoicesInput{}
	if statusParam := ctx.Query("status"); statusParam != "" {
		status := entity.InvoiceStatus(statusParam)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve invoices",
		})
		return
	}

	response := dto.InvoiceListResponse{Invoices: make([]dto.InvoiceResponse, len(output.Invoices))}
	for i, item := range output.Invoices {
		response.Invoices[i] = dto.ToInvoiceResponse(item.Invoice, item.ClientName)
	}
	ctx.JSON(http.StatusOK, response)
}

// Generate handles POST /invoices/generate requests.
func (c *InvoiceController) Generate(ctx *gin.Context) {
	var req dto.GenerateInvoicesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), invoice.GenerateInvoicesInput{
		Year:      req.Year,
		Month:     req.Month,
		ClientIDs: req.ClientIDs,
	})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGenerateInvoicesResponse(output))
}

// MarkPaid handles POST /invoices/:id/pay requests.
func (c *InvoiceController) MarkPaid(ctx *gin.Context) {
	invoiceID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.MarkPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := invoice.MarkPaidInput{
		InvoiceID:     invoiceID,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
	}
	if req.PaymentDate != "" {
		paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date, expected YYYY-MM-DD",
			})
			return
		}
		input.PaymentDate = &paymentDate
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"invoice_id":     output.InvoiceID,
		"payment_method": string(output.PaymentMethod),
		"payment_date":   output.PaymentDate.Format("2006-01-02"),
	})
}

// Cancel handles POST /invoices/:id/cancel requests.
func (c *InvoiceController) Cancel(ctx *gin.Context) {
	invoiceID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), invoice.CancelInvoiceInput{InvoiceID: invoiceID})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"invoice_id": output.InvoiceID, "status": string(entity.InvoiceStatusCanceled)})
}

// SendReminder handles POST /invoices/:id/remind requests.
func (c *InvoiceController) SendReminder(ctx *gin.Context) {
	invoiceID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.reminderUseCase.Execute(ctx.Request.Context(), invoice.SendReminderInput{InvoiceID: invoiceID})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSendReminderResponse(output))
}

// DownloadPDF handles GET /invoices/:id/pdf requests.
func (c *InvoiceController) DownloadPDF(ctx *gin.Context) {
	invoiceID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.fetchPDFUseCase.Execute(ctx.Request.Context(), invoice.FetchPDFInput{InvoiceID: invoiceID})
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="boleto.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", output.PDF)
}

// handleInvoiceError handles invoice errors and returns appropriate HTTP responses.
func (c *InvoiceController) handleInvoiceError(ctx *gin.Context, err error) {
	var invErr *domainerror.InvoiceError
	if errors.As(err, &invErr) {
		ctx.JSON(c.getStatusCodeForInvoiceError(invErr.Code), dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInvoiceError maps invoice error codes to HTTP status codes.
func (c *InvoiceController) getStatusCodeForInvoiceError(code domainerror.InvoiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvoiceAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidReferenceMonth,
		domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeInvoiceNotCancelable,
		domainerror.ErrCodeReminderNoPhone:
		return http.StatusBadRequest
	case domainerror.ErrCodeBankIssueFailed,
		domainerror.ErrCodeBankCancelFailed,
		domainerror.ErrCodeBankPDFFailed,
		domainerror.ErrCodeReminderFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
