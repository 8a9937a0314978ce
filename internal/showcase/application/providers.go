package application

import "github.com/google/wire"

// ProviderSet is the wire provider set for the showcase application layer
var ProviderSet = wire.NewSet(
	NewShowcaseService,
	NewAuditLog,
)
