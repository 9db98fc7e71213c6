//go:build wasm

package main

import "startex/launchpad"

func main() {}

//go:wasmexport setup
func Setup(payload *string) *string { return launchpad.Setup(payload) }

//go:wasmexport set_sale_parameters
func SetSaleParameters(payload *string) *string { return launchpad.SetSaleParameters(payload) }

//go:wasmexport activate_sale
func ActivateSale(payload *string) *string { return launchpad.ActivateSale(payload) }

//go:wasmexport opt_in_to_asset
func OptInToAsset(payload *string) *string { return launchpad.OptInToAsset(payload) }

//go:wasmexport fund
func Fund(payload *string) *string { return launchpad.Fund(payload) }

//go:wasmexport buy_tokens
func BuyTokens(payload *string) *string { return launchpad.BuyTokens(payload) }

//go:wasmexport claim_funds
func ClaimFunds(payload *string) *string { return launchpad.ClaimFunds(payload) }

//go:wasmexport get_sale_state
func GetSaleState(payload *string) *string { return launchpad.GetSaleState(payload) }
