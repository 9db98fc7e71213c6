package chain

import (
	"encoding/json"
	"fmt"

	"startex/sdk"
)

// The sdk.Host implementation. Every method acts on the contract at the top
// of the frame stack, so nested calls see their own state and sender.

func (c *Chain) Log(msg string) {
	c.logs = append(c.logs, msg)
}

func (c *Chain) StateSetObject(key string, value string) {
	c.top().inst.state[key] = value
}

func (c *Chain) StateGetObject(key string) *string {
	v, ok := c.top().inst.state[key]
	if !ok {
		return nil
	}
	return &v
}

func (c *Chain) StateDeleteObject(key string) {
	delete(c.top().inst.state, key)
}

func (c *Chain) GetEnv() sdk.Env {
	fr := c.top()
	return sdk.Env{
		ContractID:      fr.inst.id,
		ContractCreator: fr.inst.creator,
		Sender:          sdk.Sender{Address: fr.sender},
		TxID:            fmt.Sprintf("tx-%d", c.txSeq),
		Timestamp:       c.now,
		Payments:        fr.payments,
		AssetTransfers:  fr.assetTransfers,
	}
}

func (c *Chain) Abort(msg string) {
	panic(&sdk.AbortError{Msg: msg})
}

func (c *Chain) Pay(to sdk.Address, amount uint64) {
	c.move(c.top().inst.address(), to, amount)
}

func (c *Chain) SendAsset(to sdk.Address, asset sdk.Asset, amount uint64) {
	c.moveAsset(c.top().inst.address(), to, asset, amount)
}

func (c *Chain) OptInAsset(asset sdk.Asset) {
	c.top().inst.optedIn[asset] = true
}

func (c *Chain) Balance(addr sdk.Address) uint64 {
	return c.balances[addr]
}

func (c *Chain) AssetBalance(addr sdk.Address, asset sdk.Asset) uint64 {
	return c.assets[addr][asset]
}

// ContractCall runs another contract synchronously inside the current
// transaction. The callee sees the calling contract as its sender and gets no
// grouped transfers of its own.
func (c *Chain) ContractCall(contractID uint64, method string, payload string) *string {
	callee, ok := c.contracts[contractID]
	if !ok {
		c.Abort(fmt.Sprintf("%s: contract %d", sdk.ErrNotFound, contractID))
	}
	caller := c.top().inst.address()
	return c.invoke(callee, caller, method, &payload, nil, nil)
}

// CreateContract provisions a new instance from a registered template, runs
// its setup method with the creating contract as sender, and returns the new
// contract id. The schema is recorded in a log line only; slot accounting
// happens at the caller through MinBalance.
func (c *Chain) CreateContract(template string, schema sdk.Schema, setupMethod string, setupPayload string) uint64 {
	h, ok := c.templates[template]
	if !ok {
		c.Abort(fmt.Sprintf("%s: template %s", sdk.ErrNotFound, template))
	}
	creator := c.top().inst.address()
	id := c.RegisterContract(template, creator, h)
	raw, _ := json.Marshal(schema)
	c.Log(fmt.Sprintf("cc|id:%d|tpl:%s|schema:%s", id, template, string(raw)))
	if setupMethod != "" {
		inst := c.contracts[id]
		c.invoke(inst, creator, setupMethod, &setupPayload, nil, nil)
	}
	return id
}

func (c *Chain) MinBalance() uint64 {
	return c.minBalance
}
