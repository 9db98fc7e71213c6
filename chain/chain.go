package chain

import (
	"fmt"

	"startex/sdk"
)

// Handler dispatches one contract's operations; every contract package
// exports one with this shape.
type Handler func(method string, payload *string) *string

// TxResult is what a top-level call resolves to. Ret carries either the
// operation's return value or the abort message.
type TxResult struct {
	Success bool
	Ret     string
	Logs    []string
}

// CallOpts attaches grouped transfers to a call, the way the deployed runtime
// groups payment transactions with an application call.
type CallOpts struct {
	Payments       []sdk.Payment
	AssetTransfers []sdk.AssetTransfer
}

// PaymentOpts is shorthand for the common single-payment group.
func PaymentOpts(from, to sdk.Address, amount uint64) CallOpts {
	return CallOpts{Payments: []sdk.Payment{{Sender: from, Receiver: to, Amount: amount}}}
}

// AssetTransferOpts is shorthand for a single grouped token transfer.
func AssetTransferOpts(from, to sdk.Address, asset sdk.Asset, amount uint64) CallOpts {
	return CallOpts{AssetTransfers: []sdk.AssetTransfer{{Sender: from, Receiver: to, Asset: asset, Amount: amount}}}
}

type instance struct {
	id       uint64
	template string
	creator  sdk.Address
	handler  Handler
	state    map[string]string
	optedIn  map[sdk.Asset]bool
}

func (i *instance) address() sdk.Address {
	return sdk.ContractAddress(i.id)
}

func (i *instance) clone() *instance {
	cp := &instance{
		id:       i.id,
		template: i.template,
		creator:  i.creator,
		handler:  i.handler,
		state:    make(map[string]string, len(i.state)),
		optedIn:  make(map[sdk.Asset]bool, len(i.optedIn)),
	}
	for k, v := range i.state {
		cp.state[k] = v
	}
	for k, v := range i.optedIn {
		cp.optedIn[k] = v
	}
	return cp
}

type frame struct {
	inst           *instance
	sender         sdk.Address
	payments       []sdk.Payment
	assetTransfers []sdk.AssetTransfer
}

// Chain is an in-memory runtime: accounts, asset holdings, contract
// instances, and atomic call execution with nested synchronous calls. It
// implements sdk.Host for whichever contract is currently executing.
type Chain struct {
	now            int64
	minBalance     uint64
	nextContractID uint64
	txSeq          uint64
	contracts      map[uint64]*instance
	templates      map[string]Handler
	balances       map[sdk.Address]uint64
	assets         map[sdk.Address]map[sdk.Asset]uint64
	frames         []*frame
	logs           []string
}

// genesisTime is an arbitrary fixed clock start so tests are deterministic.
const genesisTime int64 = 1756857600 // 2025-09-03T00:00:00Z

// New builds an empty chain and installs it as the active sdk host.
func New() *Chain {
	c := &Chain{
		now:            genesisTime,
		minBalance:     100_000,
		nextContractID: 1,
		contracts:      map[uint64]*instance{},
		templates:      map[string]Handler{},
		balances:       map[sdk.Address]uint64{},
		assets:         map[sdk.Address]map[sdk.Asset]uint64{},
	}
	sdk.Use(c)
	return c
}

// RegisterTemplate makes a contract program available to factory provisioning.
func (c *Chain) RegisterTemplate(name string, h Handler) {
	c.templates[name] = h
}

// RegisterContract deploys a contract instance directly (the way top-level
// contracts are published) and returns its id.
func (c *Chain) RegisterContract(template string, creator sdk.Address, h Handler) uint64 {
	id := c.nextContractID
	c.nextContractID++
	c.contracts[id] = &instance{
		id:       id,
		template: template,
		creator:  creator,
		handler:  h,
		state:    map[string]string{},
		optedIn:  map[sdk.Asset]bool{},
	}
	return id
}

// Deposit funds an account with payment units.
func (c *Chain) Deposit(addr sdk.Address, amount uint64) {
	c.balances[addr] += amount
}

// MintAsset hands token units to an account. User accounts are implicitly
// opted in; contracts must opt in through the sdk first.
func (c *Chain) MintAsset(addr sdk.Address, asset sdk.Asset, amount uint64) {
	c.creditAsset(addr, asset, amount)
}

// SetTime pins the chain clock (unix seconds).
func (c *Chain) SetTime(ts int64) { c.now = ts }

// AdvanceTime moves the chain clock forward.
func (c *Chain) AdvanceTime(delta int64) { c.now += delta }

// Now returns the chain clock.
func (c *Chain) Now() int64 { return c.now }

// Call executes one contract operation as an atomic unit: grouped transfers
// are applied first, then the handler runs; any abort rolls the whole thing
// back, nested calls and ledger movements included.
func (c *Chain) Call(caller sdk.Address, contractID uint64, method string, payload string, opts CallOpts) (res TxResult) {
	inst, ok := c.contracts[contractID]
	if !ok {
		return TxResult{Success: false, Ret: fmt.Sprintf("%s: contract %d", sdk.ErrNotFound, contractID)}
	}
	snap := c.snapshot()
	c.logs = nil
	c.frames = nil
	c.txSeq++
	defer func() {
		if r := recover(); r != nil {
			c.restore(snap)
			res = TxResult{Success: false, Ret: abortMessage(r), Logs: c.logs}
			c.logs = nil
			c.frames = nil
		}
	}()
	for _, p := range opts.Payments {
		c.move(p.Sender, p.Receiver, p.Amount)
	}
	for _, t := range opts.AssetTransfers {
		c.moveAsset(t.Sender, t.Receiver, t.Asset, t.Amount)
	}
	ret := c.invoke(inst, caller, method, &payload, opts.Payments, opts.AssetTransfers)
	out := ""
	if ret != nil {
		out = *ret
	}
	return TxResult{Success: true, Ret: out, Logs: c.logs}
}

func (c *Chain) invoke(inst *instance, sender sdk.Address, method string, payload *string, pays []sdk.Payment, axfers []sdk.AssetTransfer) *string {
	c.frames = append(c.frames, &frame{inst: inst, sender: sender, payments: pays, assetTransfers: axfers})
	defer func() { c.frames = c.frames[:len(c.frames)-1] }()
	return inst.handler(method, payload)
}

func (c *Chain) top() *frame {
	if len(c.frames) == 0 {
		panic("chain: no executing contract")
	}
	return c.frames[len(c.frames)-1]
}

func (c *Chain) contractByAddress(addr sdk.Address) *instance {
	for _, inst := range c.contracts {
		if inst.address() == addr {
			return inst
		}
	}
	return nil
}

func (c *Chain) move(from, to sdk.Address, amount uint64) {
	if c.balances[from] < amount {
		c.Abort(fmt.Sprintf("%s: %s", sdk.ErrInsufficientFunds, from))
	}
	c.balances[from] -= amount
	c.balances[to] += amount
}

func (c *Chain) moveAsset(from, to sdk.Address, asset sdk.Asset, amount uint64) {
	if c.assets[from][asset] < amount {
		c.Abort(fmt.Sprintf("%s: %s asset %s", sdk.ErrInsufficientFunds, from, asset))
	}
	if inst := c.contractByAddress(to); inst != nil && !inst.optedIn[asset] {
		c.Abort(fmt.Sprintf("%s: contract %d asset %s", sdk.ErrNotOptedIn, inst.id, asset))
	}
	c.assets[from][asset] -= amount
	c.creditAsset(to, asset, amount)
}

func (c *Chain) creditAsset(addr sdk.Address, asset sdk.Asset, amount uint64) {
	if c.assets[addr] == nil {
		c.assets[addr] = map[sdk.Asset]uint64{}
	}
	c.assets[addr][asset] += amount
}

type snapshotData struct {
	nextContractID uint64
	contracts      map[uint64]*instance
	balances       map[sdk.Address]uint64
	assets         map[sdk.Address]map[sdk.Asset]uint64
}

func (c *Chain) snapshot() *snapshotData {
	s := &snapshotData{
		nextContractID: c.nextContractID,
		contracts:      make(map[uint64]*instance, len(c.contracts)),
		balances:       make(map[sdk.Address]uint64, len(c.balances)),
		assets:         make(map[sdk.Address]map[sdk.Asset]uint64, len(c.assets)),
	}
	for id, inst := range c.contracts {
		s.contracts[id] = inst.clone()
	}
	for a, b := range c.balances {
		s.balances[a] = b
	}
	for a, m := range c.assets {
		cp := make(map[sdk.Asset]uint64, len(m))
		for as, amt := range m {
			cp[as] = amt
		}
		s.assets[a] = cp
	}
	return s
}

func (c *Chain) restore(s *snapshotData) {
	c.nextContractID = s.nextContractID
	c.contracts = s.contracts
	c.balances = s.balances
	c.assets = s.assets
}

func abortMessage(r any) string {
	if ae, ok := r.(*sdk.AbortError); ok {
		return ae.Msg
	}
	return fmt.Sprint(r)
}
