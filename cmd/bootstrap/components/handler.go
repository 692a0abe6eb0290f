package components

import (
	"cospace-api/internal/handler"
	"cospace-api/internal/handler/api"
	"cospace-api/internal/handler/middleware"
	"cospace-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewPromoHandler,
		api.NewEntitlementHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, room *api.RoomHandler, booking *api.BookingHandler, promo *api.PromoHandler, entitlement *api.EntitlementHandler) handler.Handlers {
			return handler.Handlers{
				Auth:        auth,
				Room:        room,
				Booking:     booking,
				Promo:       promo,
				Entitlement: entitlement,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
