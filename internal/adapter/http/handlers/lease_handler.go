package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "ikhaya/internal/adapter/http/dto/request"
	response "ikhaya/internal/adapter/http/dto/response"
	"ikhaya/internal/adapter/http/middleware"
	"ikhaya/internal/domain/entities"
	"ikhaya/internal/usecase"
	"ikhaya/internal/usecase/interfaces"
	"ikhaya/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeasePayload = pkg.NewDomainErrorSimple("INVALID_LEASE_INPUT", "Invalid lease payload", http.StatusBadRequest)
)

// LeaseHandler handles HTTP requests for lease records and signatures.
type LeaseHandler struct {
	usecase usecase.ILeaseUseCase
}

func NewLeaseHandler(uc usecase.ILeaseUseCase) *LeaseHandler {
	return &LeaseHandler{usecase: uc}
}

// CreateLease godoc
// @Summary      Create a draft lease
// @Description  The authenticated caller becomes the landlord of the lease.
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        lease  body      request.CreateLeaseRequest  true  "Lease"
// @Success      201    {object}  response.LeaseResponse
// @Failure      400    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /leases [post]
func (h *LeaseHandler) CreateLease(c *gin.Context) {
	var payload request.CreateLeaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeasePayload.HTTPStatus, errInvalidLeasePayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput(middleware.UserID(c))
	if err != nil {
		appErr := mapLeaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	lease, err := h.usecase.CreateLease(c.Request.Context(), in)
	if err != nil {
		log.Printf("[lease][handler] create failed landlord_id=%s err=%v", in.LandlordID, err)
		appErr := mapLeaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLease(lease))
}

// ListLeases godoc
// @Summary   List leases where the caller is landlord or tenant
// @Tags      leases
// @Produce   json
// @Success   200  {array}  response.LeaseResponse
// @Security  Bearer
// @Router    /leases [get]
func (h *LeaseHandler) ListLeases(c *gin.Context) {
	leases, err := h.usecase.ListLeasesForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapLeaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeases(leases))
}

// GetLease godoc
// @Summary   Get a lease
// @Tags      leases
// @Produce   json
// @Param     id   path      string  true  "Lease ID"
// @Success   200  {object}  response.LeaseResponse
// @Failure   403  {object}  pkg.HTTPError
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /leases/{id} [get]
func (h *LeaseHandler) GetLease(c *gin.Context) {
	lease, err := h.usecase.GetLease(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		appErr := mapLeaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLease(lease))
}

// SignLease godoc
// @Summary      Sign a lease as the caller
// @Description  The lease becomes active once both landlord and tenant signed.
// @Tags         leases
// @Accept       json
// @Produce      json
// @Param        id         path      string                    true  "Lease ID"
// @Param        signature  body      request.SignLeaseRequest  true  "Signature"
// @Success      200        {object}  response.LeaseResponse
// @Failure      409        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /leases/{id}/sign [post]
func (h *LeaseHandler) SignLease(c *gin.Context) {
	var payload request.SignLeaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeasePayload.HTTPStatus, errInvalidLeasePayload.ToHTTPError())
		return
	}
	leaseID := c.Param("id")
	signerID := middleware.UserID(c)
	h.respondWithLease(c, "sign", leaseID, func(ctx context.Context) (entities.Lease, error) {
		return h.usecase.SignLease(ctx, leaseID, signerID, payload.Signature)
	})
}

// TerminateLease godoc
// @Summary   Terminate an active lease (landlord only)
// @Tags      leases
// @Produce   json
// @Param     id   path      string  true  "Lease ID"
// @Success   200  {object}  response.LeaseResponse
// @Failure   409  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /leases/{id}/terminate [post]
func (h *LeaseHandler) TerminateLease(c *gin.Context) {
	leaseID := c.Param("id")
	requesterID := middleware.UserID(c)
	h.respondWithLease(c, "terminate", leaseID, func(ctx context.Context) (entities.Lease, error) {
		return h.usecase.TerminateLease(ctx, leaseID, requesterID)
	})
}

func (h *LeaseHandler) respondWithLease(c *gin.Context, action, leaseID string, run func(ctx context.Context) (entities.Lease, error)) {
	lease, err := run(c.Request.Context())
	if err != nil {
		log.Printf("[lease][handler] %s failed lease_id=%s err=%v", action, leaseID, err)
		appErr := mapLeaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[lease][handler] %s success lease_id=%s status=%s", action, lease.ID, lease.Status)
	c.JSON(http.StatusOK, response.FromLease(lease))
}

func mapLeaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLeasePropertyRequired),
		errors.Is(err, usecase.ErrLeaseLandlordRequired),
		errors.Is(err, usecase.ErrLeaseTenantRequired),
		errors.Is(err, usecase.ErrLeaseInvalidRent),
		errors.Is(err, usecase.ErrLeaseNegativeDeposit),
		errors.Is(err, usecase.ErrLeaseDepositTooHigh),
		errors.Is(err, usecase.ErrLeaseDatesRequired),
		errors.Is(err, usecase.ErrLeaseInvalidDates),
		errors.Is(err, usecase.ErrLeaseTermsRequired),
		errors.Is(err, usecase.ErrSignatureRequired),
		errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_LEASE_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidLeaseID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotLeaseParty), errors.Is(err, usecase.ErrNotLeaseLandlord):
		return pkg.NewDomainErrorSimple("FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrLeaseNotFound):
		return pkg.NewDomainErrorSimple("LEASE_NOT_FOUND", "Lease not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLandlordAlreadySigned), errors.Is(err, usecase.ErrTenantAlreadySigned):
		return pkg.NewDomainErrorSimple("LEASE_ALREADY_SIGNED", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrLeaseNotSignable), errors.Is(err, usecase.ErrLeaseNotActive):
		return pkg.NewDomainErrorSimple("INVALID_LEASE_STATE", err.Error(), http.StatusConflict)
	case errors.Is(err, interfaces.ErrConditionFailed):
		return pkg.NewDomainErrorSimple("CONFLICT", "The lease was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
