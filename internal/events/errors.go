package events

import "errors"

// ErrBusClosed is returned when publishing to or subscribing on a closed bus
var ErrBusClosed = errors.New("event bus closed")
