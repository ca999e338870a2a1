package converters

import "github.com/pkg/errors"

var (
	// ErrEmptyItem indicates an item that is blank after trimming.
	ErrEmptyItem = errors.New("converters: empty item")

	// ErrUnknownFormat indicates an unsupported input or output format name.
	ErrUnknownFormat = errors.New("converters: unknown format")
)
