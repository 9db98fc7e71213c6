package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"startex/sdk"
)

// ToJSON serializes a record for storage or read-op output, aborting on
// marshal failure.
func ToJSON[T any](v T, objectType string) string {
	b, err := json.Marshal(v)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal %s: %v", objectType, err))
	}
	return string(b)
}

// FromJSON deserializes a stored record, aborting on corrupt data.
func FromJSON[T any](data string, objectType string) *T {
	data = strings.TrimSpace(data)
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		sdk.Abort(fmt.Sprintf("failed to unmarshal %s: %v", objectType, err))
	}
	return &v
}
