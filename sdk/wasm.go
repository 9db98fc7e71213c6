//go:build wasm

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func hostLog(s *string) *string

//go:wasmimport sdk db.set_object
func hostStateSet(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func hostStateGet(key *string) *string

//go:wasmimport sdk db.rm_object
func hostStateDelete(key *string) *string

//go:wasmimport sdk system.get_env
func hostGetEnv(arg *string) *string

//go:wasmimport sdk system.min_balance
func hostMinBalance(arg *string) *string

//go:wasmimport sdk ledger.pay
func hostPay(to *string, amount *string) *string

//go:wasmimport sdk ledger.asset_transfer
func hostSendAsset(to *string, asset *string, amount *string) *string

//go:wasmimport sdk ledger.asset_opt_in
func hostOptInAsset(asset *string) *string

//go:wasmimport sdk ledger.balance
func hostBalance(addr *string) *string

//go:wasmimport sdk ledger.asset_balance
func hostAssetBalance(addr *string, asset *string) *string

//go:wasmimport sdk contracts.call
func hostContractCall(contractID *string, method *string, payload *string) *string

//go:wasmimport sdk contracts.create
func hostCreateContract(template *string, schema *string, setupMethod *string, setupPayload *string) *string

//go:wasmimport env abort
func hostAbort(msg, file *string, line, column *int32)

type wasmHost struct{}

func init() {
	Use(wasmHost{})
}

func (wasmHost) Log(msg string) {
	hostLog(&msg)
}

func (wasmHost) StateSetObject(key string, value string) {
	hostStateSet(&key, &value)
}

func (wasmHost) StateGetObject(key string) *string {
	return hostStateGet(&key)
}

func (wasmHost) StateDeleteObject(key string) {
	hostStateDelete(&key)
}

func (wasmHost) GetEnv() Env {
	raw := *hostGetEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(raw), &env)
	return env
}

func (wasmHost) Abort(msg string) {
	ln := int32(0)
	hostAbort(&msg, nil, &ln, &ln)
	panic(msg)
}

func (wasmHost) Pay(to Address, amount uint64) {
	toStr := to.String()
	amt := strconv.FormatUint(amount, 10)
	hostPay(&toStr, &amt)
}

func (wasmHost) SendAsset(to Address, asset Asset, amount uint64) {
	toStr := to.String()
	as := asset.String()
	amt := strconv.FormatUint(amount, 10)
	hostSendAsset(&toStr, &as, &amt)
}

func (wasmHost) OptInAsset(asset Asset) {
	as := asset.String()
	hostOptInAsset(&as)
}

func (wasmHost) Balance(addr Address) uint64 {
	a := addr.String()
	return parseHostUint(hostBalance(&a))
}

func (wasmHost) AssetBalance(addr Address, asset Asset) uint64 {
	a := addr.String()
	as := asset.String()
	return parseHostUint(hostAssetBalance(&a, &as))
}

func (wasmHost) ContractCall(contractID uint64, method string, payload string) *string {
	id := strconv.FormatUint(contractID, 10)
	return hostContractCall(&id, &method, &payload)
}

func (wasmHost) CreateContract(template string, schema Schema, setupMethod string, setupPayload string) uint64 {
	schemaBytes, _ := json.Marshal(schema)
	schemaStr := string(schemaBytes)
	return parseHostUint(hostCreateContract(&template, &schemaStr, &setupMethod, &setupPayload))
}

func (wasmHost) MinBalance() uint64 {
	return parseHostUint(hostMinBalance(nil))
}

func parseHostUint(ptr *string) uint64 {
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		panic(err)
	}
	return v
}
