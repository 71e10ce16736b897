// Package primfn provides primitive-specialized functional values: suppliers,
// pure conversion functions and side-effecting consumers that compose without
// boxing.
//
// The whole family is expressed with three generic shapes that the compiler
// monomorphizes per primitive type, so a chain built from typed lambdas never
// allocates or boxes:
//   - Func[S, T]: pure conversion from S to T (Cast, Identity, Invert, Chain)
//   - Supplier[T]: zero-argument producer (Const, To, Map)
//   - Consumer[T], BiConsumer[A, B]: sinks with AndThen composition
//
// Control flow is entirely caller-driven. Combinators are lazy: nothing runs
// until the terminal Get or Accept, and each pull evaluates the underlying
// chain exactly once, with no caching. The library spawns no goroutines and
// holds no state of its own; thread safety of a composed chain is exactly the
// thread safety of the caller-supplied closures in it.
//
// Absent arguments are the only error the combinators know: they panic with
// ErrNilFunc, ErrNilSupplier or ErrNilConsumer at combination time, before
// any value flows. Panics raised by caller-supplied closures propagate
// unchanged; nothing is caught, wrapped or retried.
//
// FuncOf, SupplierOf, ConsumerOf and BiConsumerOf adapt untyped function
// values into the generic shapes through a one-time reflective check,
// returning already-specialized values unchanged. The reflective fall-back
// pays boxing cost per call and exists for callers wiring chains dynamically.
package primfn
