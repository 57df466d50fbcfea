// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/receber-inter/backend/internal/application/usecase/client"
	domainerror "github.com/receber-inter/backend/internal/domain/error"
	"github.com/receber-inter/backend/internal/integration/entrypoint/dto"
)

// ClientController handles client registry endpoints.
type ClientController struct {
	listUseCase   *client.ListClientsUseCase
	getUseCase    *client.GetClientUseCase
	createUseCase *client.CreateClientUseCase
	updateUseCase *client.UpdateClientUseCase
	deleteUseCase *client.DeleteClientUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	listUseCase *client.ListClientsUseCase,
	getUseCase *client.GetClientUseCase,
	createUseCase *client.CreateClientUseCase,
	updateUseCase *client.UpdateClientUseCase,
	deleteUseCase *client.DeleteClientUseCase,
) *ClientController {
	return &ClientController{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve clients",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(output.Clients))
}

// Get handles GET /clients/:id requests.
func (c *ClientController) Get(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), clientID)
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(found))
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	fields, ok := clientFieldsFromRequest(ctx, req)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), client.CreateClientInput{ClientFields: fields})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(output.Client))
}

// Update handles PUT /clients/:id requests.
func (c *ClientController) Update(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	fields, ok := clientFieldsFromRequest(ctx, req)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), client.UpdateClientInput{
		ClientID:     clientID,
		ClientFields: fields,
	})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Delete handles DELETE /clients/:id requests.
func (c *ClientController) Delete(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), client.DeleteClientInput{ClientID: clientID}); err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// clientFieldsFromRequest maps the request DTO to use case fields, rejecting
// an unparseable amount.
func clientFieldsFromRequest(ctx *gin.Context, req dto.ClientRequest) (client.ClientFields, bool) {
	amount, err := decimal.NewFromString(req.NominalAmount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid nominal amount",
			Code:  string(domainerror.ErrCodeClientInvalidAmount),
		})
		return client.ClientFields{}, false
	}

	return client.ClientFields{
		Name:          req.Name,
		TaxID:         req.TaxID,
		Email:         req.Email,
		AreaCode:      req.AreaCode,
		Phone:         req.Phone,
		Street:        req.Street,
		Number:        req.Number,
		Complement:    req.Complement,
		District:      req.District,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		NominalAmount: amount,
		DueDay:        req.DueDay,
	}, true
}

// parseIDParam parses the :id path parameter as an unsigned integer.
func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
		})
		return 0, false
	}
	return uint(id), true
}

// handleClientError handles client errors and returns appropriate HTTP responses.
func (c *ClientController) handleClientError(ctx *gin.Context, err error) {
	var clientErr *domainerror.ClientError
	if errors.As(err, &clientErr) {
		ctx.JSON(c.getStatusCodeForClientError(clientErr.Code), dto.ErrorResponse{
			Error: clientErr.Message,
			Code:  string(clientErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForClientError maps client error codes to HTTP status codes.
func (c *ClientController) getStatusCodeForClientError(code domainerror.ClientErrorCode) int {
	switch code {
	case domainerror.ErrCodeClientNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeClientNameRequired,
		domainerror.ErrCodeClientTaxIDRequired,
		domainerror.ErrCodeClientInvalidDueDay,
		domainerror.ErrCodeClientInvalidAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
