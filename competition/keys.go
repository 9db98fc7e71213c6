package competition

import "startex/codec"

const (
	configKey           = "cfg"
	competitionCountKey = "count:cmp"
)

func competitionKey(id uint64) string {
	return "cmp:" + codec.UInt64ToString(id)
}

func participantKey(competitionID, startupID uint64) string {
	return "prt:" + codec.UInt64ToString(competitionID) + ":" + codec.UInt64ToString(startupID)
}

func resultsKey(competitionID uint64) string {
	return "res:" + codec.UInt64ToString(competitionID)
}
