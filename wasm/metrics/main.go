//go:build wasm

package main

import "startex/metrics"

func main() {}

//go:wasmexport contract_init
func ContractInit(payload *string) *string { return metrics.ContractInit(payload) }

//go:wasmexport set_owner
func SetOwner(payload *string) *string { return metrics.SetOwner(payload) }

//go:wasmexport initialize_metrics
func InitializeMetrics(payload *string) *string { return metrics.InitializeMetrics(payload) }

//go:wasmexport update_github_metrics
func UpdateGithubMetrics(payload *string) *string { return metrics.UpdateGithubMetrics(payload) }

//go:wasmexport update_social_metrics
func UpdateSocialMetrics(payload *string) *string { return metrics.UpdateSocialMetrics(payload) }

//go:wasmexport update_platform_metrics
func UpdatePlatformMetrics(payload *string) *string { return metrics.UpdatePlatformMetrics(payload) }

//go:wasmexport take_weekly_snapshot
func TakeWeeklySnapshot(payload *string) *string { return metrics.TakeWeeklySnapshot(payload) }

//go:wasmexport authorize_oracle
func AuthorizeOracle(payload *string) *string { return metrics.AuthorizeOracle(payload) }

//go:wasmexport get_metrics
func GetMetrics(payload *string) *string { return metrics.GetMetrics(payload) }

//go:wasmexport get_weekly_snapshot
func GetWeeklySnapshot(payload *string) *string { return metrics.GetWeeklySnapshot(payload) }

//go:wasmexport get_score
func GetScore(payload *string) *string { return metrics.GetScore(payload) }

//go:wasmexport is_oracle_authorized
func IsOracleAuthorized(payload *string) *string { return metrics.IsOracleAuthorized(payload) }
