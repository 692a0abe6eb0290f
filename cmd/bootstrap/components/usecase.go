package components

import (
	"cospace-api/internal/pkg/clock"
	"cospace-api/internal/usecase"
	"cospace-api/internal/usecase/commands"
	"cospace-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(pool *pgxpool.Pool) commands.Pool { return pool },

		usecase.NewTokenValidator,

		queries.NewRoomQueries,
		queries.NewAvailabilityQueries,
		queries.NewPromoQueries,
		queries.NewBookingQueries,
		queries.NewEntitlementQueries,
		queries.NewUserQueries,

		commands.NewAuthCommands,
		commands.NewBookingCommands,
	),
)
