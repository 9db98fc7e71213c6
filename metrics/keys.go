package metrics

import (
	"startex/codec"
	"startex/sdk"
)

const configKey = "cfg"

func metricsKey(startupID uint64) string {
	return "met:" + codec.UInt64ToString(startupID)
}

func snapshotKey(startupID, week uint64) string {
	return "w:" + codec.UInt64ToString(startupID) + ":" + codec.UInt64ToString(week)
}

func oracleKey(addr sdk.Address) string {
	return "orc:" + addr.String()
}
