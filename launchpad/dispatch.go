package launchpad

import "startex/sdk"

// Dispatch routes a method name to its operation. The wasm entrypoints and
// the local chain runtime both go through here.
func Dispatch(method string, payload *string) *string {
	switch method {
	case "setup":
		return Setup(payload)
	case "set_sale_parameters":
		return SetSaleParameters(payload)
	case "activate_sale":
		return ActivateSale(payload)
	case "opt_in_to_asset":
		return OptInToAsset(payload)
	case "fund":
		return Fund(payload)
	case "buy_tokens":
		return BuyTokens(payload)
	case "claim_funds":
		return ClaimFunds(payload)
	case "get_sale_state":
		return GetSaleState(payload)
	default:
		sdk.Abort(sdk.ErrNotFound + ": unknown method " + method)
		return nil
	}
}
