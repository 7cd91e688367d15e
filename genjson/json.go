package genjson

import (
	"encoding/json"

	"github.com/Invicton-Labs/go-stackerr"
)

// Unmarshal parses JSON data into a new value of the given type.
func Unmarshal[T any](data []byte) (v T, err stackerr.Error) {
	if jerr := json.Unmarshal(data, &v); jerr != nil {
		return v, stackerr.Wrap(jerr)
	}
	return v, nil
}

// Marshal serializes the given value as JSON.
func Marshal[T any](v T) ([]byte, stackerr.Error) {
	data, jerr := json.Marshal(v)
	if jerr != nil {
		return nil, stackerr.Wrap(jerr)
	}
	return data, nil
}
