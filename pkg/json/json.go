package json //nolint:revive

import (
	libjson "encoding/json"
	"io"
)

func Unmarshal[T any](data []byte) (T, error) {
	var v T

	err := libjson.Unmarshal(data, &v)

	return v, err
}

// Write encodes v to w as indented JSON followed by a newline.
func Write[T any](w io.Writer, v T) error {
	encoder := libjson.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}
