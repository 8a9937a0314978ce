package warehouse

import (
	"github.com/google/wire"
	"github.com/philly/showcase/backend/internal/showcase/ports"
)

// ProviderSet is the wire provider set for the warehouse client
var ProviderSet = wire.NewSet(
	NewClient,
	wire.Bind(new(ports.ItemResolver), new(*Client)),
)
