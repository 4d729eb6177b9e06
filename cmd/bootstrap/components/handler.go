package components

import (
	"stokship/internal/handler"
	"stokship/internal/handler/api"
	"stokship/internal/handler/middleware"
	"stokship/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDealHandler,
		api.NewOfferItemHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Deals      *api.DealHandler
	OfferItems *api.OfferItemHandler
	Auth       *middleware.AuthMiddleware
	Logger     *middleware.Logger
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Deals:      p.Deals,
		OfferItems: p.OfferItems,
		Auth:       p.Auth,
		Logger:     p.Logger,
	}
}
