package competition

import (
	"startex/codec"
	"startex/sdk"
)

func isInitialized() bool {
	ptr := sdk.StateGetObject(configKey)
	return ptr != nil && *ptr != ""
}

func requireInitialized() *Config {
	cfg := loadConfig()
	if cfg == nil {
		sdk.Abort(sdk.ErrInvalidData + ": contract not initialized")
	}
	return cfg
}

func loadConfig() *Config {
	ptr := sdk.StateGetObject(configKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return codec.FromJSON[Config](*ptr, "contract config")
}

func saveConfig(cfg *Config) {
	sdk.StateSetObject(configKey, codec.ToJSON(cfg, "contract config"))
}

func sender() sdk.Address {
	return sdk.GetEnv().Sender.Address
}

func requireContractOwner() *Config {
	cfg := requireInitialized()
	if sender() != cfg.Owner {
		sdk.Abort(sdk.ErrNotAuthorized + ": admin only")
	}
	return cfg
}

// ContractInit records the sender as admin and binds the registry contract
// this competition authorizes entries against. Payload: registry_contract_id
func ContractInit(payload *string) *string {
	if isInitialized() {
		sdk.Abort(sdk.ErrInvalidData + ": contract already initialized")
	}
	raw := codec.UnwrapPayload(payload, "registry id missing")
	registryID := codec.ParseUintField(raw, "registry contract id")
	owner := sender()
	saveConfig(&Config{Owner: owner, RegistryID: registryID})
	sdk.Log("cmp-init|owner:" + owner.String() + "|registry:" + codec.UInt64ToString(registryID))
	return nil
}

func SetOwner(payload *string) *string {
	cfg := requireContractOwner()
	raw := codec.UnwrapPayload(payload, "owner payload missing")
	next := sdk.Address(raw)
	if !next.IsValid() {
		sdk.Abort(sdk.ErrInvalidData + ": invalid owner address")
	}
	cfg.Owner = next
	saveConfig(cfg)
	sdk.Log("cmp-owner|to:" + next.String())
	return nil
}
