package sdk

// Host is the runtime surface a contract executes against. On chain it is
// backed by wasm host imports (see wasm.go); locally the chain package plugs
// in an in-memory implementation via Use().
type Host interface {
	Log(msg string)

	StateSetObject(key string, value string)
	StateGetObject(key string) *string
	StateDeleteObject(key string)

	GetEnv() Env
	Abort(msg string)

	Pay(to Address, amount uint64)
	SendAsset(to Address, asset Asset, amount uint64)
	OptInAsset(asset Asset)
	Balance(addr Address) uint64
	AssetBalance(addr Address, asset Asset) uint64

	ContractCall(contractID uint64, method string, payload string) *string
	CreateContract(template string, schema Schema, setupMethod string, setupPayload string) uint64
	MinBalance() uint64
}

// Schema declares the persistent slots a contract instance allocates; the
// factory's minimum-balance check prices it at SchemaSlotCost per slot.
type Schema struct {
	NumUints      uint64 `json:"num_uints"`
	NumByteSlices uint64 `json:"num_byte_slices"`
}

// SchemaSlotCost is the per-slot storage cost in payment units.
const SchemaSlotCost uint64 = 1000

// singleton host used everywhere
var active Host

// Use installs the host implementation. The wasm build installs the real one
// in its init(); the chain package installs itself when constructed.
func Use(h Host) {
	active = h
}

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello registry")
func Log(msg string) {
	active.Log(msg)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	active.StateSetObject(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return active.StateGetObject(key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	active.StateDeleteObject(key)
}

// GetEnv pulls the execution environment for the current call.
func GetEnv() Env {
	return active.GetEnv()
}

// Abort stops execution immediately; the runtime discards every state write
// and ledger movement of the whole call. Never returns.
func Abort(msg string) {
	active.Abort(msg)
	panic(msg)
}

// Pay sends payment units from the executing contract's account.
func Pay(to Address, amount uint64) {
	active.Pay(to, amount)
}

// SendAsset transfers fungible token units from the executing contract.
func SendAsset(to Address, asset Asset, amount uint64) {
	active.SendAsset(to, asset, amount)
}

// OptInAsset registers the executing contract as a holder of the asset.
func OptInAsset(asset Asset) {
	active.OptInAsset(asset)
}

// Balance queries the payment-unit balance of an account.
func Balance(addr Address) uint64 {
	return active.Balance(addr)
}

// AssetBalance queries how many units of the asset an account holds.
func AssetBalance(addr Address, asset Asset) uint64 {
	return active.AssetBalance(addr, asset)
}

// ContractCall performs a synchronous call into another contract instance.
// The nested call runs inside the caller's atomic unit: if it aborts, the
// whole outer call is rolled back with it.
func ContractCall(contractID uint64, method string, payload string) *string {
	return active.ContractCall(contractID, method, payload)
}

// CreateContract provisions a new contract instance from a deployed template
// and invokes its setup method, all within the caller's atomic unit. Returns
// the newly assigned instance id.
func CreateContract(template string, schema Schema, setupMethod string, setupPayload string) uint64 {
	return active.CreateContract(template, schema, setupMethod, setupPayload)
}

// MinBalance returns the platform storage floor used in MBR checks.
func MinBalance() uint64 {
	return active.MinBalance()
}

// AbortError is what the local host panics with on Abort, so the chain can
// tell a contract abort apart from a programming error.
type AbortError struct {
	Msg string
}

func (e *AbortError) Error() string { return e.Msg }
