package simplefetch

// Option configures a Builder during construction via Simple.
type Option[T any] func(*Builder[T])

// WithClient sets the transport used by the builder's terminal calls.
// Use this to inject a custom *http.Client or a test double.
func WithClient[T any](client Doer) Option[T] {
	return func(b *Builder[T]) {
		if client != nil {
			b.client = client
		}
	}
}

// WithLogger sets the logger that observes terminal-call failures.
func WithLogger[T any](logger Logger) Option[T] {
	return func(b *Builder[T]) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithoutRequestCancel disables the per-terminal-call cancellation
// context the builder normally derives. With this option the caller's
// context is passed to the transport untouched and Cancel becomes a
// no-op.
func WithoutRequestCancel[T any]() Option[T] {
	return func(b *Builder[T]) {
		b.autoCancel = false
	}
}
