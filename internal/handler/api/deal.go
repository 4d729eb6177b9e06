package api

import (
	"net/http"
	"strconv"

	"stokship/internal/domain/deal"
	reqdto "stokship/internal/handler/dto/request"
	resdto "stokship/internal/handler/dto/response"
	"stokship/internal/handler/httperr"
	"stokship/internal/handler/middleware"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/commands"
	"stokship/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

var errMissingActor = errs.New("actor missing from context")

type DealHandler struct {
	cmds commands.DealCommands
	q    queries.DealQueries
}

func NewDealHandler(cmds commands.DealCommands, q queries.DealQueries) *DealHandler {
	return &DealHandler{cmds: cmds, q: q}
}

// @Summary Start negotiation
// @Description Open a deal and reserve every basket line in one transaction
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Makes retries of the same request safe"
// @Param request body reqdto.StartDealRequest true "Basket"
// @Success 201 {object} resdto.StartDealResponse
// @Success 200 {object} resdto.StartDealResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "insufficient stock"
// @Failure 503 {object} httperr.Response
// @Router /api/deals [post]
func (h *DealHandler) Start(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return
	}
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
		return
	}
	var req reqdto.StartDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	result, err := h.cmds.StartNegotiation(c.Request.Context(), req.ToInput(actor, key))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromStartNegotiation(result))
}

// @Summary Get deal
// @Description Deal with its reservations and status history
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} resdto.DealResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/deals/{id} [get]
func (h *DealHandler) Get(c *gin.Context) {
	id, actor, ok := dealTarget(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealView(view))
}

// @Summary List my deals
// @Description Deals where the caller is buyer or trader, newest first
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.DealListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/deals [get]
func (h *DealHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.q.ListForActor(c.Request.Context(), actor, cursor, limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealList(items, next))
}

// @Summary Send quote
// @Description Trader sends (or re-sends) the quote; starts the expiration clock
// @Tags deals
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/deals/{id}/quote [post]
func (h *DealHandler) SendQuote(c *gin.Context) {
	id, actor, ok := dealTarget(c)
	if !ok {
		return
	}
	if err := h.cmds.SendQuote(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Approve deal
// @Tags deals
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/deals/{id}/approve [post]
func (h *DealHandler) Approve(c *gin.Context) {
	id, actor, ok := dealTarget(c)
	if !ok {
		return
	}
	if err := h.cmds.Approve(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel deal
// @Description Cancel an open deal and release its reservations
// @Tags deals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body reqdto.CancelDealRequest false "Reason"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/deals/{id}/cancel [post]
func (h *DealHandler) Cancel(c *gin.Context) {
	id, actor, ok := dealTarget(c)
	if !ok {
		return
	}
	var req reqdto.CancelDealRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
			return
		}
	}
	if err := h.cmds.Cancel(c.Request.Context(), id, actor, req.Reason); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Complete payment
// @Description Payment layer signals a completed payment; confirms reservations
// @Tags deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param paymentId path string true "Payment ID"
// @Success 200 {object} resdto.CompletePaymentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/deals/{id}/payments/{paymentId}/complete [post]
func (h *DealHandler) CompletePayment(c *gin.Context) {
	id, actor, ok := dealTarget(c)
	if !ok {
		return
	}
	paymentID, ok := pathUUID(c, "paymentId")
	if !ok {
		return
	}
	result, err := h.cmds.CompletePayment(c.Request.Context(), id, paymentID, actor)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompletePayment(result))
}

func dealTarget(c *gin.Context) (uuid.UUID, deal.Actor, bool) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return uuid.Nil, deal.Actor{}, false
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return uuid.Nil, deal.Actor{}, false
	}
	return id, actor, true
}

func idempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return nil, nil
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
