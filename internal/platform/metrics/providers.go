package metrics

import "github.com/google/wire"

// ProviderSet is the wire provider set for metrics.
var ProviderSet = wire.NewSet(NewRecorder)
