package launchpad

import (
	"startex/codec"
	"startex/sdk"
)

// decodeSetupArgs unpacks the pipe-delimited payload the factory passes in:
// owner|token_asset_id
func decodeSetupArgs(payload *string) *setupArgs {
	raw := codec.UnwrapPayload(payload, "setup payload missing")
	parts := codec.SplitPayload(raw)

	owner := sdk.Address(parts.Get(0))
	if !owner.IsValid() {
		sdk.Abort(sdk.ErrInvalidData + ": invalid owner address")
	}
	return &setupArgs{
		Owner: owner,
		Token: sdk.Asset(codec.ParseUintField(parts.Get(1), "token asset id")),
	}
}

// decodeSaleParamsArgs unpacks: token_price|sale_start_time|sale_end_time
func decodeSaleParamsArgs(payload *string) *saleParamsArgs {
	raw := codec.UnwrapPayload(payload, "sale parameters payload missing")
	parts := codec.SplitPayload(raw)

	return &saleParamsArgs{
		Price: codec.ParseUintField(parts.Get(0), "token price"),
		Start: codec.ParseInt64Field(parts.Get(1), "sale start time"),
		End:   codec.ParseInt64Field(parts.Get(2), "sale end time"),
	}
}
