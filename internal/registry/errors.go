package registry

import "errors"

// Domain errors. Every one of these is recovered locally by the command
// layer and rendered as a fixed console diagnostic; none escapes a
// well-formed command call.
var (
	ErrMissingClassName      = errors.New("class name missing")
	ErrUnknownClass          = errors.New("class doesn't exist")
	ErrMissingInstanceID     = errors.New("instance id missing")
	ErrNotFound              = errors.New("no instance found")
	ErrMissingAttributeName  = errors.New("attribute name missing")
	ErrMissingAttributeValue = errors.New("value missing")
)
