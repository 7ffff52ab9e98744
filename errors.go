package rng

import "github.com/zeebo/errs"

var (
	// Error is the class for general failures, such as unknown algorithm
	// names.
	Error = errs.Class("rng")

	// ArgumentError is the class for caller sizing mistakes, such as a
	// destination buffer whose length does not fit the operation.
	ArgumentError = errs.Class("argument")

	// UnsupportedError is the class for requests the wrapped generator has
	// no capability for, such as Skip on a generator without skip-ahead.
	UnsupportedError = errs.Class("unsupported")
)
