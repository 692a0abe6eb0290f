package components

import (
	"cospace-api/internal/infra/readstore"
	"cospace-api/internal/infra/repository"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Read side
		readstore.NewRoomReadStore,
		readstore.NewAvailabilityReadStore,
		readstore.NewPromoReadStore,
		readstore.NewBookingReadStore,
		readstore.NewMembershipReadStore,
		readstore.NewBenefitReadStore,
		readstore.NewUserReadStore,

		// Write side
		repository.NewRoomRepository,
		repository.NewPromoRepository,
		repository.NewMembershipRepository,
		repository.NewVirtualOfficeRepository,
		repository.NewBookingRepository,
		repository.NewIdempotencyRepository,
		repository.NewNotificationRepository,
		repository.NewUserRepository,
	),
)
