package codec

import (
	"fmt"
	"strconv"
	"strings"

	"startex/sdk"
)

// Fields is a split pipe-delimited payload; Get tolerates short payloads so
// optional trailing fields decode as empty.
type Fields []string

// SplitPayload splits the raw payload on the pipe delimiter.
func SplitPayload(raw string) Fields {
	return Fields(strings.Split(raw, "|"))
}

// Get returns the i-th field or "" when the payload is shorter.
func (f Fields) Get(i int) string {
	if i < len(f) {
		return strings.TrimSpace(f[i])
	}
	return ""
}

// UnwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func UnwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(sdk.ErrInvalidData + ": " + errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(sdk.ErrInvalidData + ": " + errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(sdk.ErrInvalidData + ": " + errMsg)
			}
		}
	}
	return raw
}

// ParseUintField is the uint variant used for ids, amounts and timestamps.
func ParseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("%s: invalid %s", sdk.ErrInvalidData, field))
	}
	return n
}

// ParseInt64Field parses signed values (unix timestamps mostly).
func ParseInt64Field(val string, field string) int64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("%s: invalid %s", sdk.ErrInvalidData, field))
	}
	return n
}

// ParseBoolField accepts a couple of truthy keywords, defaulting to false for unknown text.
func ParseBoolField(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// UInt64ToString turns an id back into decimal text for logs or payload building.
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// Int64ToString formats signed values the same way.
func Int64ToString(val int64) string {
	return strconv.FormatInt(val, 10)
}

// StrPtr is a tiny helper so we can take a literal string and hand a pointer back quickly.
func StrPtr(s string) *string { return &s }

// BoolString keeps true/false result strings consistent across dispatchers.
func BoolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
