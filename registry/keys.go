package registry

import "startex/codec"

const (
	configKey       = "cfg"
	startupCountKey = "count:stp"
)

func startupKey(id uint64) string {
	return "stp:" + codec.UInt64ToString(id)
}
