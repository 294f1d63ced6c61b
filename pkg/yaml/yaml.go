package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	libyaml "go.yaml.in/yaml/v3"
)

func Marshal[T any](v T) ([]byte, error) {
	return libyaml.Marshal(v)
}

func Unmarshal[T any](data []byte) (T, error) {
	var v T
	err := libyaml.Unmarshal(data, &v)
	return v, err
}

// UnmarshalStrict rejects fields that T does not declare. An empty document
// yields the zero value.
func UnmarshalStrict[T any](data []byte) (T, error) {
	var v T

	decoder := libyaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(&v)
	if errors.Is(err, io.EOF) {
		return v, nil
	}

	return v, err
}

func MarshalToFile[T any](v T, filename string) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}

func UnmarshalStrictFromFile[T any](filename string) (T, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		var v T
		return v, err
	}

	return UnmarshalStrict[T](data)
}
