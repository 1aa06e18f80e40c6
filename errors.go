package waveform

import "errors"

// ErrZeroPeriod is returned by the periodic signal functions when the period
// is zero. The division t/P is undefined there, so the error is raised before
// any arithmetic is attempted rather than letting an infinity or NaN escape
// into downstream calculations.
var ErrZeroPeriod = errors.New("period must be nonzero")
