package metrics

import (
	"context"
	"errors"

	"github.com/osse101/FarmPlanner_Go/internal/domain"
	"github.com/osse101/FarmPlanner_Go/internal/event"
	"github.com/osse101/FarmPlanner_Go/internal/logger"
)

// RecordEvent counts an inbox event and the business figures it carries
func RecordEvent(ctx context.Context, evt event.Event) {
	EventsProcessed.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemRemoved:
		p, err := event.DecodePayload[event.ItemRemovedPayloadV1](evt.Payload)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgEventPayloadUndecodable, "type", evt.Type)
			return
		}
		if p.Crafted {
			ItemsCrafted.Add(float64(p.Quantity))
		}
	case event.SearchRequested:
		SearchesPerformed.Inc()
	}
}

// RecordWishList sets the wish-list gauges from per-status counts
func RecordWishList(counts map[domain.ResolutionStatus]int) {
	for _, status := range []domain.ResolutionStatus{domain.StatusPending, domain.StatusReady, domain.StatusFailed} {
		WishListEntries.WithLabelValues(string(status)).Set(float64(counts[status]))
	}
}

// FailureReason maps an expansion or craft error to a low-cardinality label
func FailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCyclicRecipe):
		return ReasonCyclicRecipe
	case errors.Is(err, domain.ErrDataSourceUnavailable):
		return ReasonUnavailable
	case errors.Is(err, domain.ErrQuantityOverflow):
		return ReasonOverflow
	default:
		return ReasonOther
	}
}
