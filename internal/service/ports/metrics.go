package ports

import "github.com/anderssondelao/eventos-locales-app/internal/domain"

type EventMetrics interface {
	EventCreated()
	PayloadDelivered(result domain.MergeResult)
	EventsListed(n int)
}
