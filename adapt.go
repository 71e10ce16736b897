package primfn

import (
	"reflect"

	"primfn/primitive"
)

// FuncOf adapts an arbitrary function value into a Func[S, T].
//
// Supported shapes:
//   - Func[S, T] or func(S) T: returned unchanged, preserving function
//     identity
//   - any other func(A) B: wrapped through reflection
//
// For the wrapped shape the parameter and result kinds are checked once, at
// adaptation time, never per call: S must convert losslessly to the parameter
// kind and the result kind must convert losslessly to T. Lossy conversions
// are refused with ErrKindMismatch; compose with Cast explicitly instead.
// The wrapped path boxes argument and result on every call, so the typed
// shapes should be preferred where performance matters.
func FuncOf[S, T any](fn any) (Func[S, T], error) {
	switch f := fn.(type) {
	case nil:
		return nil, ErrNilFunc
	case Func[S, T]:
		return f, nil
	case func(S) T:
		return f, nil
	}

	fv, err := parseShape(fn, 1, 1)
	if err != nil {
		return nil, err
	}

	arg, err := argConverter[S](fv.Type().In(0))
	if err != nil {
		return nil, err
	}

	res, err := resultConverter[T](fv.Type().Out(0))
	if err != nil {
		return nil, err
	}

	return func(v S) T {
		return res(fv.Call([]reflect.Value{arg(v)})[0])
	}, nil
}

// SupplierOf adapts an arbitrary niladic function value into a Supplier[T],
// under the same contract as FuncOf.
func SupplierOf[T any](fn any) (Supplier[T], error) {
	switch f := fn.(type) {
	case nil:
		return nil, ErrNilSupplier
	case Supplier[T]:
		return f, nil
	case func() T:
		return f, nil
	}

	fv, err := parseShape(fn, 0, 1)
	if err != nil {
		return nil, err
	}

	res, err := resultConverter[T](fv.Type().Out(0))
	if err != nil {
		return nil, err
	}

	return func() T {
		return res(fv.Call(nil)[0])
	}, nil
}

// ConsumerOf adapts an arbitrary one-parameter function value into a
// Consumer[T], under the same contract as FuncOf.
func ConsumerOf[T any](fn any) (Consumer[T], error) {
	switch f := fn.(type) {
	case nil:
		return nil, ErrNilConsumer
	case Consumer[T]:
		return f, nil
	case func(T):
		return f, nil
	}

	fv, err := parseShape(fn, 1, 0)
	if err != nil {
		return nil, err
	}

	arg, err := argConverter[T](fv.Type().In(0))
	if err != nil {
		return nil, err
	}

	return func(v T) {
		fv.Call([]reflect.Value{arg(v)})
	}, nil
}

// BiConsumerOf adapts an arbitrary two-parameter function value into a
// BiConsumer[A, B], under the same contract as FuncOf.
func BiConsumerOf[A, B any](fn any) (BiConsumer[A, B], error) {
	switch f := fn.(type) {
	case nil:
		return nil, ErrNilConsumer
	case BiConsumer[A, B]:
		return f, nil
	case func(A, B):
		return f, nil
	}

	fv, err := parseShape(fn, 2, 0)
	if err != nil {
		return nil, err
	}

	first, err := argConverter[A](fv.Type().In(0))
	if err != nil {
		return nil, err
	}

	second, err := argConverter[B](fv.Type().In(1))
	if err != nil {
		return nil, err
	}

	return func(a A, b B) {
		fv.Call([]reflect.Value{first(a), second(b)})
	}, nil
}

func parseShape(fn any, numIn, numOut int) (reflect.Value, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func {
		return reflect.Value{}, ErrNotFunc
	}

	ft := fv.Type()
	if ft.IsVariadic() || ft.NumIn() != numIn || ft.NumOut() != numOut {
		return reflect.Value{}, ErrBadArity
	}

	return fv, nil
}

// argConverter builds the caller-facing-S to wrapped-parameter conversion,
// validating the kind pair once.
func argConverter[S any](param reflect.Type) (func(S) reflect.Value, error) {
	st := reflect.TypeOf((*S)(nil)).Elem()
	if st.AssignableTo(param) {
		return func(v S) reflect.Value { return reflect.ValueOf(v) }, nil
	}

	if !losslessKinds(st, param) {
		return nil, ErrKindMismatch
	}

	return func(v S) reflect.Value { return reflect.ValueOf(v).Convert(param) }, nil
}

// resultConverter builds the wrapped-result to caller-facing-T conversion,
// validating the kind pair once.
func resultConverter[T any](res reflect.Type) (func(reflect.Value) T, error) {
	tt := reflect.TypeOf((*T)(nil)).Elem()
	if res.AssignableTo(tt) {
		return func(v reflect.Value) T { return v.Interface().(T) }, nil
	}

	if !losslessKinds(res, tt) {
		return nil, ErrKindMismatch
	}

	return func(v reflect.Value) T { return v.Convert(tt).Interface().(T) }, nil
}

func losslessKinds(from, to reflect.Type) bool {
	f, t := primitive.Of(from), primitive.Of(to)
	if f == 0 || t == 0 {
		return false
	}

	return f == t || primitive.Lossless(f, t)
}
