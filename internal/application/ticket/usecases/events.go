package usecases

import (
	"github.com/helpdeskhq/helpdesk/internal/domain/shared/events"
	"github.com/helpdeskhq/helpdesk/internal/shared/logger"
)

// publishEvents dispatches pending aggregate events. Dispatch failures are
// logged and swallowed so a full event channel never fails the request.
func publishEvents(dispatcher events.EventPublisher, log logger.Interface, pending []interface{}) {
	for _, event := range pending {
		domainEvent, ok := event.(events.DomainEvent)
		if !ok {
			continue
		}
		if err := dispatcher.Publish(domainEvent); err != nil {
			log.Warnw("failed to dispatch event",
				"event_type", domainEvent.GetEventType(),
				"error", err)
		}
	}
}
