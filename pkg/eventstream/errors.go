package eventstream

import "errors"

// ErrClosed is returned when publishing on a closed publisher.
var ErrClosed = errors.New("eventstream: publisher closed")

// ErrNilEvent is returned when publishing a nil event.
var ErrNilEvent = errors.New("eventstream: nil event")
