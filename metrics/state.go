package metrics

import (
	"fmt"

	"startex/codec"
	"startex/sdk"
)

func saveMetrics(m *Metrics) {
	sdk.StateSetObject(metricsKey(m.StartupID), codec.ToJSON(m, "metrics"))
}

func loadMetrics(startupID uint64) (*Metrics, error) {
	ptr := sdk.StateGetObject(metricsKey(startupID))
	if ptr == nil {
		return nil, fmt.Errorf("metrics for startup %d not found", startupID)
	}
	return codec.FromJSON[Metrics](*ptr, "metrics"), nil
}

func mustLoadMetrics(startupID uint64) *Metrics {
	m, err := loadMetrics(startupID)
	if err != nil {
		sdk.Abort(fmt.Sprintf("%s: metrics for startup %d", sdk.ErrNotFound, startupID))
	}
	return m
}

func saveSnapshot(startupID, week uint64, s *WeeklySnapshot) {
	sdk.StateSetObject(snapshotKey(startupID, week), codec.ToJSON(s, "weekly snapshot"))
}

func loadSnapshot(startupID, week uint64) (*WeeklySnapshot, error) {
	ptr := sdk.StateGetObject(snapshotKey(startupID, week))
	if ptr == nil {
		return nil, fmt.Errorf("snapshot %d/%d not found", startupID, week)
	}
	return codec.FromJSON[WeeklySnapshot](*ptr, "weekly snapshot"), nil
}

func oracleAuthorized(addr sdk.Address) bool {
	ptr := sdk.StateGetObject(oracleKey(addr))
	return ptr != nil && *ptr == "1"
}

func setOracleAuthorized(addr sdk.Address) {
	sdk.StateSetObject(oracleKey(addr), "1")
}
