package metrics

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
		sdk.Abort(sdk.ErrNotAuthorized + ": owner only")
	}
	return cfg
}

// assertOracleOrOwner lets the owner through unconditionally, then consults
// the oracle allow-list. Absence denies.
func assertOracleOrOwner() {
	cfg := requireInitialized()
	caller := sender()
	if caller == cfg.Owner {
		return
	}
	if !oracleAuthorized(caller) {
		sdk.Abort(sdk.ErrNotAuthorized + ": oracle or owner only")
	}
}

func ContractInit(payload *string) *string {
	if isInitialized() {
		sdk.Abort(sdk.ErrInvalidData + ": contract already initialized")
	}
	owner := sender()
	saveConfig(&Config{Owner: owner})
	sdk.Log("met-init|owner:" + owner.String())
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
	sdk.Log("met-owner|to:" + next.String())
	return nil
}
