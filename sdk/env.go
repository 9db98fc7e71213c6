package sdk

// Sender is the runtime-authenticated identity behind the current call.
type Sender struct {
	Address Address `json:"id"`
}

// Payment is a value transfer grouped with the current call. The runtime has
// already applied it when the contract runs; contracts validate receiver and
// amount and abort if the call's rules are not met, which unwinds the payment
// together with everything else.
type Payment struct {
	Sender   Address `json:"sender"`
	Receiver Address `json:"receiver"`
	Amount   uint64  `json:"amount"`
}

// AssetTransfer is a fungible-token transfer grouped with the current call.
type AssetTransfer struct {
	Sender   Address `json:"sender"`
	Receiver Address `json:"receiver"`
	Asset    Asset   `json:"asset"`
	Amount   uint64  `json:"amount"`
}

// Env is the execution environment snapshot for one call.
type Env struct {
	ContractID      uint64          `json:"contract.id"`
	ContractCreator Address         `json:"contract.creator"`
	Sender          Sender          `json:"msg.sender"`
	TxID            string          `json:"tx.id"`
	Timestamp       int64           `json:"block.timestamp"`
	Payments        []Payment       `json:"payments"`
	AssetTransfers  []AssetTransfer `json:"asset_transfers"`
}

// PaymentTo scans the grouped payments and returns the first one addressed to
// the given receiver, or nil.
func (e *Env) PaymentTo(receiver Address) *Payment {
	for i := range e.Payments {
		if e.Payments[i].Receiver == receiver {
			return &e.Payments[i]
		}
	}
	return nil
}

// AssetTransferTo returns the first grouped token transfer matching receiver
// and asset, or nil.
func (e *Env) AssetTransferTo(receiver Address, asset Asset) *AssetTransfer {
	for i := range e.AssetTransfers {
		t := &e.AssetTransfers[i]
		if t.Receiver == receiver && t.Asset == asset {
			return t
		}
	}
	return nil
}

// SelfAddress is the executing contract's own account address.
func (e *Env) SelfAddress() Address {
	return ContractAddress(e.ContractID)
}
