package ports

import (
	"context"

	"github.com/anderssondelao/eventos-locales-app/internal/domain"
)

type EventAnnouncer interface {
	AnnounceEvent(ctx context.Context, event *domain.Event)
}
