package metrics

import "startex/sdk"

// Dispatch routes a method name to its operation.
func Dispatch(method string, payload *string) *string {
	switch method {
	case "contract_init":
		return ContractInit(payload)
	case "set_owner":
		return SetOwner(payload)
	case "initialize_metrics":
		return InitializeMetrics(payload)
	case "update_github_metrics":
		return UpdateGithubMetrics(payload)
	case "update_social_metrics":
		return UpdateSocialMetrics(payload)
	case "update_platform_metrics":
		return UpdatePlatformMetrics(payload)
	case "take_weekly_snapshot":
		return TakeWeeklySnapshot(payload)
	case "authorize_oracle":
		return AuthorizeOracle(payload)
	case "get_metrics":
		return GetMetrics(payload)
	case "get_weekly_snapshot":
		return GetWeeklySnapshot(payload)
	case "get_score":
		return GetScore(payload)
	case "is_oracle_authorized":
		return IsOracleAuthorized(payload)
	default:
		sdk.Abort(sdk.ErrNotFound + ": unknown method " + method)
		return nil
	}
}
