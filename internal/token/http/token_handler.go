// Package http provides HTTP handlers for token lifecycle and authorization operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/tokens/internal/httputil"
	tokenDomain "github.com/allisson/tokens/internal/token/domain"
	"github.com/allisson/tokens/internal/token/http/dto"
	tokenUseCase "github.com/allisson/tokens/internal/token/usecase"
	customValidation "github.com/allisson/tokens/internal/validation"
)

// TokenHandler handles HTTP requests for token lifecycle operations.
type TokenHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	useCase tokenUseCase.TokenUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: useCase,
		logger:       logger,
	}
}

// RegisterRoutes registers the token management and authorization routes.
func (h *TokenHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/v1/tokens", h.IssueTokenHandler)
	router.GET("/v1/tokens", h.ListTokensHandler)
	router.GET("/v1/tokens/:id", h.GetTokenHandler)
	router.POST("/v1/tokens/:id/revoke", h.RevokeTokenHandler)
	router.POST("/v1/authorize", h.AuthorizeHandler)
}

// IssueTokenHandler issues a new API token.
// POST /v1/tokens - Returns 201 Created with the plain credential, shown only once.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	var req dto.IssueTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	expiry, err := tokenDomain.ParseExpirySelection(req.Expiry)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	input := &tokenDomain.IssueTokenInput{
		ApplicationID:  req.ApplicationID,
		Category:       req.Category,
		OwnerEmail:     req.OwnerEmail,
		Expiry:         expiry,
		AllowedIPs:     req.AllowedIPs,
		AllowedEmails:  req.AllowedEmails,
		AllowedDomains: req.AllowedDomains,
		Grants:         req.Grants,
		CreatedBy:      req.CreatedBy,
	}

	output, err := h.tokenUseCase.Issue(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.IssueTokenResponse{
		Token: output.PlainToken,
		Data:  dto.MapTokenToResponse(output.Token, time.Now().UTC()),
	}

	c.JSON(http.StatusCreated, response)
}

// GetTokenHandler retrieves a token by ID.
// GET /v1/tokens/:id - Returns 200 OK with the token metadata.
func (h *TokenHandler) GetTokenHandler(c *gin.Context) {
	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid token id format: must be a valid UUID"),
			h.logger)
		return
	}

	token, err := h.tokenUseCase.Get(c.Request.Context(), tokenID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponse(token, time.Now().UTC()))
}

// ListTokensHandler lists tokens ordered by creation time, newest first.
// GET /v1/tokens?offset=0&limit=50 - Returns 200 OK with the token list.
func (h *TokenHandler) ListTokensHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	tokens, err := h.tokenUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokensToListResponse(tokens, time.Now().UTC()))
}

// RevokeTokenHandler revokes a token. Revoking an already revoked token
// succeeds without changing it.
// POST /v1/tokens/:id/revoke - Returns 200 OK with the updated token.
func (h *TokenHandler) RevokeTokenHandler(c *gin.Context) {
	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("invalid token id format: must be a valid UUID"),
			h.logger)
		return
	}

	token, err := h.tokenUseCase.Revoke(c.Request.Context(), tokenID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenToResponse(token, time.Now().UTC()))
}

// AuthorizeHandler evaluates an access request against a token's restrictions.
// POST /v1/authorize - Returns 200 OK with the decision; the deny reason
// names the first failing check.
func (h *TokenHandler) AuthorizeHandler(c *gin.Context) {
	var req dto.AuthorizeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	request := tokenDomain.AccessRequest{
		CallerIP:     req.CallerIP,
		CallerEmail:  req.CallerEmail,
		CallerDomain: req.CallerDomain,
		CustomerCode: req.CustomerCode,
		Endpoint:     req.Endpoint,
	}

	decision, err := h.tokenUseCase.Authorize(c.Request.Context(), req.Token, request)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.AuthorizeResponse{
		Allowed: decision.Allowed,
		Reason:  string(decision.Reason),
	})
}
