// Package pagerank: sentinel error set.
// Matrix-contract violations are reported with the assoc package sentinels
// (ErrNonSquare, ErrNegativeValue, ErrNaNInf, ...) wrapped with package
// context; this file defines only the sentinels specific to this engine.

package pagerank

import "errors"

// ErrBadTeleport indicates that a custom teleport distribution violates its
// contract: wrong length, negative or non-finite entries, or a sum that is
// not 1 within the configured tolerance.
var ErrBadTeleport = errors.New("pagerank: invalid teleport distribution")
