package launchpad

import "startex/sdk"

// Template is the program name the registry factory provisions sale
// instances from.
const Template = "launchpad"

// StateSchema declares the storage slots one sale instance allocates:
// price, start, end, raised, token id, active flag, plus the owner address.
var StateSchema = sdk.Schema{NumUints: 6, NumByteSlices: 1}

// SaleState is the full persistent state of one token sale.
type SaleState struct {
	StartupOwner sdk.Address `json:"startup_owner"`
	TokenAsset   sdk.Asset   `json:"token_asset_id"`
	TokenPrice   uint64      `json:"token_price"`
	SaleStart    int64       `json:"sale_start_time"`
	SaleEnd      int64       `json:"sale_end_time"`
	TotalRaised  uint64      `json:"total_raised"`
	SaleActive   bool        `json:"is_sale_active"`
}

type setupArgs struct {
	Owner sdk.Address
	Token sdk.Asset
}

type saleParamsArgs struct {
	Price uint64
	Start int64
	End   int64
}
