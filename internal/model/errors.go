package model

import "errors"

// ErrEmptySeries is returned by every analysis unit when the input series
// holds no bars at all. Callers distinguish it from upstream provider errors
// with errors.Is.
var ErrEmptySeries = errors.New("empty price series")
