package worldmap

import "fmt"

// InsufficientDataError is the only way a decode can fail: a primitive read
// needed more bytes than the buffer had left. Offset is the position the
// read started at, so it points at the exact field boundary where decoding
// stopped.
type InsufficientDataError struct {
	Offset    int
	Needed    int
	Available int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data at offset %d: need %d bytes, have %d", e.Offset, e.Needed, e.Available)
}
