// Package options implements the generic functional option pattern shared by linefit packages.
//
// Each configurable package defines its own config struct and exposes constructors that
// return Option values for a pointer to that struct:
//
//	type Option = options.Option[*config]
//
//	func WithTolerance(t float64) Option {
//		return options.New(func(c *config) error { ... })
//	}
package options

// Option configures a target of type T. Options are applied in order by Apply and the
// first failing option aborts the application.
type Option[T any] interface {
	apply(T) error
}

// optionFunc adapts a plain function to the Option interface.
type optionFunc[T any] func(T) error

func (f optionFunc[T]) apply(target T) error {
	return f(target)
}

// New creates an option from a function that may reject its argument.
func New[T any](fn func(T) error) Option[T] {
	return optionFunc[T](fn)
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return optionFunc[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies opts to target in order. Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
