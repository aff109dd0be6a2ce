package notifier

import "context"

// Client periodically announces capsules whose reveal time has passed.
type Client interface {
	// Schedule starts the reveal check loop. It returns after the scheduler
	// is running; the loop stops when ctx is cancelled.
	Schedule(ctx context.Context) error

	// CheckDue runs a single pass: announce every due capsule and mark it
	// notified. Exposed for one-shot runs.
	CheckDue(ctx context.Context) error
}
