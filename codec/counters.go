package codec

import (
	"strconv"

	"startex/sdk"
)

// GetCount reads the string counter under the key and defaults to zero, nothing magical here.
func GetCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// SetCount stores uint64 counters back as decimal strings for the host kv.
func SetCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// NextID bumps the counter and returns the fresh id. First id is 1, ids are
// never reused.
func NextID(key string) uint64 {
	n := GetCount(key) + 1
	SetCount(key, n)
	return n
}
