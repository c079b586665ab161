package worldmap

import (
	"os"

	"github.com/pkg/errors"
)

// ReadFile decodes the world map stored at path. Bytes after the end of the
// map are ignored, same as the game does.
func ReadFile(path string) (*WorldMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, _, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return m, nil
}
