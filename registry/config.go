package registry

import (
	"startex/codec"
	"startex/sdk"
)

// isInitialized returns true once contract_init has run.
func isInitialized() bool {
	ptr := sdk.StateGetObject(configKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts every operation on an uninitialized contract.
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

// requireContractOwner gates the admin operations.
func requireContractOwner() *Config {
	cfg := requireInitialized()
	if sender() != cfg.Owner {
		sdk.Abort(sdk.ErrNotAuthorized + ": platform owner only")
	}
	return cfg
}

// ContractInit records the deploying sender as platform owner. Runs once.
func ContractInit(payload *string) *string {
	if isInitialized() {
		sdk.Abort(sdk.ErrInvalidData + ": contract already initialized")
	}
	owner := sender()
	saveConfig(&Config{Owner: owner})
	sdk.Log("reg-init|owner:" + owner.String())
	return nil
}

// SetOwner transfers platform ownership.
func SetOwner(payload *string) *string {
	cfg := requireContractOwner()
	raw := codec.UnwrapPayload(payload, "owner payload missing")
	next := sdk.Address(raw)
	if !next.IsValid() {
		sdk.Abort(sdk.ErrInvalidData + ": invalid owner address")
	}
	cfg.Owner = next
	saveConfig(cfg)
	sdk.Log("reg-owner|to:" + next.String())
	return nil
}
