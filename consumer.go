package primfn

// Consumer is a one-argument side-effecting sink.
type Consumer[T any] func(T)

// Accept performs the operation on the given value.
func (c Consumer[T]) Accept(v T) {
	c(v)
}

// AndThen returns a consumer invoking c then next, in that fixed order, on
// the same argument. There is no suppression: a panic raised by c prevents
// next from running and propagates to the caller unchanged. Panics with
// ErrNilConsumer if either consumer is absent.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	if c == nil || next == nil {
		panic(ErrNilConsumer)
	}

	return func(v T) {
		c(v)
		next(v)
	}
}

// Discard returns a consumer that ignores its argument.
func Discard[T any]() Consumer[T] {
	return func(T) {}
}

// BiConsumer is a two-argument side-effecting sink.
type BiConsumer[A, B any] func(A, B)

// Accept performs the operation on the given values.
func (c BiConsumer[A, B]) Accept(a A, b B) {
	c(a, b)
}

// AndThen returns a bi-consumer invoking c then next, in that fixed order, on
// the same argument pair. Panics with ErrNilConsumer if either consumer is
// absent.
func (c BiConsumer[A, B]) AndThen(next BiConsumer[A, B]) BiConsumer[A, B] {
	if c == nil || next == nil {
		panic(ErrNilConsumer)
	}

	return func(a A, b B) {
		c(a, b)
		next(a, b)
	}
}
