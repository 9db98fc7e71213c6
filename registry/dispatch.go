package registry

import "startex/sdk"

// Dispatch routes a method name to its operation.
func Dispatch(method string, payload *string) *string {
	switch method {
	case "contract_init":
		return ContractInit(payload)
	case "set_owner":
		return SetOwner(payload)
	case "register_startup":
		return RegisterStartup(payload)
	case "update_startup":
		return UpdateStartup(payload)
	case "verify_startup":
		return VerifyStartup(payload)
	case "update_score":
		return UpdateScore(payload)
	case "create_launchpad":
		return CreateLaunchpad(payload)
	case "is_startup_owner":
		return IsStartupOwner(payload)
	case "get_startup":
		return GetStartup(payload)
	case "get_next_startup_id":
		return GetNextStartupID(payload)
	default:
		sdk.Abort(sdk.ErrNotFound + ": unknown method " + method)
		return nil
	}
}
