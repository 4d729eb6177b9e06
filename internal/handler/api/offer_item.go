package api

import (
	"net/http"

	reqdto "stokship/internal/handler/dto/request"
	resdto "stokship/internal/handler/dto/response"
	"stokship/internal/handler/httperr"
	"stokship/internal/handler/middleware"
	"stokship/internal/usecase/commands"
	"stokship/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferItemHandler struct {
	cmds   commands.OfferItemCommands
	engine commands.ReservationEngine
	q      queries.OfferItemQueries
}

func NewOfferItemHandler(cmds commands.OfferItemCommands, engine commands.ReservationEngine, q queries.OfferItemQueries) *OfferItemHandler {
	return &OfferItemHandler{cmds: cmds, engine: engine, q: q}
}

// @Summary Publish offer item
// @Description Publish a sellable item of a trading offer
// @Tags offer-items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishOfferItemRequest true "Offer item"
// @Success 201 {object} resdto.OfferItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/offer-items [post]
func (h *OfferItemHandler) Publish(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return
	}
	var req reqdto.PublishOfferItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}
	item, err := h.cmds.Publish(c.Request.Context(), req.ToInput(actor))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOfferItem(item))
}

// @Summary Get offer item
// @Tags offer-items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer item ID"
// @Success 200 {object} resdto.OfferItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/offer-items/{id} [get]
func (h *OfferItemHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferItemView(view))
}

// @Summary Offer item availability
// @Description Current total, reserved and available quantity
// @Tags offer-items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer item ID"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/offer-items/{id}/availability [get]
func (h *OfferItemHandler) Availability(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	availability, err := h.engine.AvailableQuantity(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}

// @Summary Disable offer item
// @Description Soft-disable an item; existing reservations are kept
// @Tags offer-items
// @Security BearerAuth
// @Param id path string true "Offer item ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/offer-items/{id}/disable [post]
func (h *OfferItemHandler) Disable(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingActor, "Unauthorized", nil)
		return
	}
	if err := h.cmds.Disable(c.Request.Context(), id, actor); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
