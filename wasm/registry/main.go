//go:build wasm

package main

import "startex/registry"

func main() {}

//go:wasmexport contract_init
func ContractInit(payload *string) *string { return registry.ContractInit(payload) }

//go:wasmexport set_owner
func SetOwner(payload *string) *string { return registry.SetOwner(payload) }

//go:wasmexport register_startup
func RegisterStartup(payload *string) *string { return registry.RegisterStartup(payload) }

//go:wasmexport update_startup
func UpdateStartup(payload *string) *string { return registry.UpdateStartup(payload) }

//go:wasmexport verify_startup
func VerifyStartup(payload *string) *string { return registry.VerifyStartup(payload) }

//go:wasmexport update_score
func UpdateScore(payload *string) *string { return registry.UpdateScore(payload) }

//go:wasmexport create_launchpad
func CreateLaunchpad(payload *string) *string { return registry.CreateLaunchpad(payload) }

//go:wasmexport is_startup_owner
func IsStartupOwner(payload *string) *string { return registry.IsStartupOwner(payload) }

//go:wasmexport get_startup
func GetStartup(payload *string) *string { return registry.GetStartup(payload) }

//go:wasmexport get_next_startup_id
func GetNextStartupID(payload *string) *string { return registry.GetNextStartupID(payload) }
