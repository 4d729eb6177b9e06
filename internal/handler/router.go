package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stokship/internal/domain/deal"
	"stokship/internal/handler/api"
	"stokship/internal/handler/middleware"
	"stokship/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Deals      *api.DealHandler
	OfferItems *api.OfferItemHandler
	Auth       *middleware.AuthMiddleware
	Logger     *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg, h.Logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	traderSide := h.Auth.RequireKinds(deal.ActorTrader, deal.ActorAdmin)
	buyerSide := h.Auth.RequireKinds(deal.ActorBuyer, deal.ActorAdmin)
	paymentLayer := h.Auth.RequireKinds(deal.ActorSystem, deal.ActorAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(h.Auth.RequireAuth())
	{
		offerItems := apiGroup.Group("/offer-items")
		addRoutes(offerItems, []route{
			{Method: http.MethodPost, Path: "", Handler: h.OfferItems.Publish, Mw: []gin.HandlerFunc{traderSide}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.OfferItems.Get},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.OfferItems.Availability},
			{Method: http.MethodPost, Path: "/:id/disable", Handler: h.OfferItems.Disable, Mw: []gin.HandlerFunc{traderSide}},
		})

		deals := apiGroup.Group("/deals")
		addRoutes(deals, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Deals.Start, Mw: []gin.HandlerFunc{buyerSide}},
			{Method: http.MethodGet, Path: "", Handler: h.Deals.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Deals.Get},
			{Method: http.MethodPost, Path: "/:id/quote", Handler: h.Deals.SendQuote, Mw: []gin.HandlerFunc{traderSide}},
			{Method: http.MethodPost, Path: "/:id/approve", Handler: h.Deals.Approve, Mw: []gin.HandlerFunc{traderSide}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Deals.Cancel},
			{Method: http.MethodPost, Path: "/:id/payments/:paymentId/complete", Handler: h.Deals.CompletePayment, Mw: []gin.HandlerFunc{paymentLayer}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
