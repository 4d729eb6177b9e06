//go:build unit

package api_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"stokship/internal/domain/deal"
	"stokship/internal/domain/inventory"
	"stokship/internal/handler/api"
	resdto "stokship/internal/handler/dto/response"
	"stokship/internal/handler/middleware"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/commands"
	"stokship/tests/common/builder"
	"stokship/tests/common/httptest"
	"stokship/tests/common/testutil"
	commandsmock "stokship/tests/mock/commands"
	queriesmock "stokship/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth treats the bearer token as the role name and authenticates the
// caller as userID with that role.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		actor, err := deal.ActorFromRole(role, userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "Unknown role"}})
			return
		}
		c.Set("actor", actor)
		c.Next()
	}
}

type OfferItemHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferItemCommands
	mockEngine   *commandsmock.MockReservationEngine
	mockQueries  *queriesmock.MockOfferItemQueries
	handler      *api.OfferItemHandler
	userID       uuid.UUID
}

func (s *OfferItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferItemCommands(s.mockCtrl)
	s.mockEngine = commandsmock.NewMockReservationEngine(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferItemQueries(s.mockCtrl)
	s.handler = api.NewOfferItemHandler(s.mockCommands, s.mockEngine, s.mockQueries)
	s.userID = uuid.New()

	auth := middleware.NewAuthMiddleware(nil)
	traderSide := auth.RequireKinds(deal.ActorTrader, deal.ActorAdmin)

	s.router.POST("/offer-items", fakeAuth(s.userID), traderSide, s.handler.Publish)
	s.router.GET("/offer-items/:id", fakeAuth(s.userID), s.handler.Get)
	s.router.GET("/offer-items/:id/availability", fakeAuth(s.userID), s.handler.Availability)
	s.router.POST("/offer-items/:id/disable", fakeAuth(s.userID), traderSide, s.handler.Disable)
}

func (s *OfferItemHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferItemHandlerTestSuite))
}

type testCaseOfferItem struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestPublish
// ================================================================================

func (s *OfferItemHandlerTestSuite) TestPublish() {
	url := "/offer-items"

	b := builder.NewOfferItemBuilder().With(func(b *builder.OfferItemBuilder) { b.TraderID = s.userID })
	reqBody := b.BuildPublishRequestDTO()
	created := b.BuildDomain()

	bound := []testCaseOfferItem{
		{name: "totalQuantity boundary OK (0)", mutate: testutil.Field("totalQuantity", 0), expectCode: http.StatusCreated},
		{name: "totalQuantity invalid (-1)", mutate: testutil.Field("totalQuantity", -1), expectCode: http.StatusBadRequest},
		{name: "title length OK (200 chars)", mutate: testutil.Field("title", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "title length invalid (201 chars)", mutate: testutil.Field("title", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "currency invalid (2 chars)", mutate: testutil.Field("currency", "US"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseOfferItem{
		{name: "missing field: offerId (required)", mutate: testutil.Field("offerId", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: currency (required)", mutate: testutil.Field("currency", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created with the published item", func() {
		s.mockCommands.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.PublishOfferItemInput) (*inventory.OfferItem, error) {
				s.Equal(deal.Trader(s.userID), in.Actor)
				s.Equal(reqBody.Title, in.Title)
				s.True(reqBody.UnitPrice.Equal(in.UnitPrice))
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "trader")

		var body resdto.OfferItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal(created.TotalQuantity(), body.Available)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, group := range [][]testCaseOfferItem{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Publish(gomock.Any(), gomock.Any()).
							Return(created, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "trader")
					s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				})
			}
		}
	})

	s.Run("error: 403 Forbidden for buyers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "buyer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 403 Forbidden when trader publishes for someone else", func() {
		s.mockCommands.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrForbiddenActor, "trader mismatch")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "trader")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OfferItemHandlerTestSuite) TestGet() {
	view := builder.NewOfferItemBuilder().With(func(b *builder.OfferItemBuilder) {
		b.ReservedQuantity = 4
		b.UnitPrice = decimal.RequireFromString("9.99")
	}).BuildView()

	s.Run("success: returns 200 OK with the item", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offer-items/"+view.ID.String(), nil, "buyer")

		var body resdto.OfferItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(6, body.Available)
		s.True(view.UnitPrice.Equal(body.UnitPrice))
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offer-items/not-a-uuid", nil, "buyer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.ErrOfferItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/offer-items/"+view.ID.String(), nil, "buyer")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer item not found")
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *OfferItemHandlerTestSuite) TestAvailability() {
	id := uuid.New()
	url := "/offer-items/" + id.String() + "/availability"

	s.Run("success: returns current counters", func() {
		s.mockEngine.EXPECT().AvailableQuantity(gomock.Any(), id).
			Return(inventory.Availability{OfferItemID: id, Total: 10, Reserved: 7, Available: 3, Active: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "buyer")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.AvailabilityResponse{OfferItemID: id, Total: 10, Reserved: 7, Available: 3, Active: true}, body)
	})

	s.Run("error: 503 Service Unavailable with Retry-After on transient failure", func() {
		s.mockEngine.EXPECT().AvailableQuantity(gomock.Any(), id).
			Return(inventory.Availability{}, errs.Wrap(errs.ErrTransientStoreFailure, "serialization failure")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "buyer")
		httptest.AssertRetryable(s.T(), rec)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "1"})
	})
}

// ================================================================================
// TestDisable
// ================================================================================

func (s *OfferItemHandlerTestSuite) TestDisable() {
	id := uuid.New()
	url := "/offer-items/" + id.String() + "/disable"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Disable(gomock.Any(), id, deal.Trader(s.userID)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "trader")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: admin may disable", func() {
		s.mockCommands.EXPECT().Disable(gomock.Any(), id, deal.Admin(s.userID)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "admin")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for buyers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "buyer")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Disable(gomock.Any(), id, gomock.Any()).Return(errs.ErrOfferItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "trader")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer item not found")
	})
}
