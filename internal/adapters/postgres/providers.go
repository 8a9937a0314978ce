package postgres

import (
	"github.com/google/wire"
	"github.com/philly/showcase/backend/internal/showcase/ports"
)

// ProviderSet is the wire provider set for postgres repositories
var ProviderSet = wire.NewSet(
	NewListingRepository,
	wire.Bind(new(ports.ListingRepository), new(*ListingRepository)),
)
