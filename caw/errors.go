package caw

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when a template or world file does not exist.
	ErrNotFound = errors.New("caw: not found")
	// ErrInvalidFormat is returned for bad magic, truncated or padded files
	// and payloads whose size does not match the declared geometry.
	ErrInvalidFormat = errors.New("caw: invalid format")
	// ErrConfiguration is returned for dimensions or options that cannot be
	// extracted, before any grid or chunk work starts.
	ErrConfiguration = errors.New("caw: configuration error")
)
