package sklist

import "github.com/pkg/errors"

// Error taxonomy. The first block holds the contract classes; the second
// holds the specific sentinels raised by this package, each wrapped in its
// class so callers can match either with errors.Is.
//
// Queries that can legitimately miss (TryGet, ContainsKey, Remove) report
// through their return values and never raise.
var (
	ErrInvalidArgument        = errors.New("sklist: invalid argument")
	ErrArgumentRange          = errors.New("sklist: argument out of range")
	ErrInvalidOperation       = errors.New("sklist: invalid operation")
	ErrKeyNotFound            = errors.New("sklist: key not found")
	ErrConcurrentModification = errors.New("sklist: list modified during iteration")
)

var (
	ErrNilKey           = errors.Wrap(ErrInvalidArgument, "nil key")
	ErrNilDestination   = errors.Wrap(ErrInvalidArgument, "nil destination")
	ErrShortDestination = errors.Wrap(ErrArgumentRange, "destination too short")
	ErrEmptyList        = errors.Wrap(ErrInvalidOperation, "empty list")
)
