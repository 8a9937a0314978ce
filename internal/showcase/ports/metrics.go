package ports

import "time"

// PublishMetrics receives publish workflow measurements
type PublishMetrics interface {
	ObservePublish(category string)
	ObserveWarehouseLookup(outcome string, duration time.Duration)
}
