package req

import (
	"encoding/json"
	"io"
)

func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	return payload, err
}
