package render

import "errors"

var (
	// ErrAssetLoad indicates a font or other asset could not be loaded.
	ErrAssetLoad = errors.New("render: asset load failed")

	// ErrUnknownColor indicates a colour string that is neither a known
	// name, a hex code nor an r,g,b triple.
	ErrUnknownColor = errors.New("render: unknown color")
)
