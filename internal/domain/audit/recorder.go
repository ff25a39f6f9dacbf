package audit

import "context"

// Recorder accepts audit entries for asynchronous persistence. Record must
// never block the caller or surface write failures into request handling.
type Recorder interface {
	Record(ctx context.Context, entry *Entry)
}

// Repository persists audit entries.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
}
