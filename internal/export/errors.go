package export

import "errors"

// ErrNoFrames indicates an export was asked to write before anything was
// presented.
var ErrNoFrames = errors.New("export: no frames captured")
