// Package audit wires audit recording to the in-process event dispatcher so
// writes never block request handling.
package audit

import (
	"context"
	"fmt"
	"time"

	"campusvoice/internal/domain/audit"
	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/shared/logger"
)

const eventTypeAuditEntry = "audit.entry_recorded"

// entryEvent carries an audit entry through the dispatcher.
type entryEvent struct {
	events.BaseEvent
	entry *audit.Entry
}

// AsyncRecorder implements audit.Recorder by publishing entries to the event
// dispatcher. A full buffer drops the entry; request handling is never held
// up by audit persistence.
type AsyncRecorder struct {
	dispatcher events.EventPublisher
	log        logger.Interface
}

func NewAsyncRecorder(dispatcher events.EventPublisher, log logger.Interface) *AsyncRecorder {
	return &AsyncRecorder{
		dispatcher: dispatcher,
		log:        log.Named("audit"),
	}
}

func (r *AsyncRecorder) Record(ctx context.Context, entry *audit.Entry) {
	event := &entryEvent{
		BaseEvent: events.BaseEvent{
			AggregateID: fmt.Sprintf("%d", entry.ActorID),
			EventType:   eventTypeAuditEntry,
			OccurredAt:  entry.CreatedAt,
		},
		entry: entry,
	}

	if err := r.dispatcher.Publish(event); err != nil {
		r.log.Warnw("audit entry dropped", "action", entry.Action, "error", err)
	}
}

// Writer persists audit entries delivered by the dispatcher.
type Writer struct {
	repo    audit.Repository
	log     logger.Interface
	timeout time.Duration
}

func NewWriter(repo audit.Repository, log logger.Interface) *Writer {
	return &Writer{
		repo:    repo,
		log:     log.Named("audit"),
		timeout: 5 * time.Second,
	}
}

func (w *Writer) CanHandle(eventType string) bool {
	return eventType == eventTypeAuditEntry
}

func (w *Writer) Handle(event events.DomainEvent) error {
	ev, ok := event.(*entryEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if err := w.repo.Create(ctx, ev.entry); err != nil {
		w.log.Errorw("failed to persist audit entry", "action", ev.entry.Action, "error", err)
		return err
	}

	return nil
}

// Register subscribes the writer on the dispatcher.
func (w *Writer) Register(dispatcher events.EventSubscriber) error {
	return dispatcher.Subscribe(eventTypeAuditEntry, w)
}
