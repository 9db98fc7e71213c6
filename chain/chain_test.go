package chain_test

import (
	"testing"

	"startex/chain"
	"startex/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	deployerAddr = "hive:deployer"
	bobAddr      = "hive:bob"
)

// kvHandler is a minimal contract used to exercise the runtime itself.
func kvHandler(method string, payload *string) *string {
	switch method {
	case "set":
		sdk.StateSetObject("k", *payload)
		return nil
	case "get":
		ptr := sdk.StateGetObject("k")
		if ptr == nil {
			empty := ""
			return &empty
		}
		return ptr
	case "set_then_fail":
		sdk.StateSetObject("k", "partial")
		sdk.Pay(sdk.Address(bobAddr), 50)
		sdk.Abort("ERR_INVALID_DATA: boom")
		return nil
	case "whoami":
		s := sdk.GetEnv().Sender.Address.String()
		return &s
	case "optin":
		sdk.OptInAsset(sdk.Asset(7))
		return nil
	}
	return nil
}

func TestCallRoundTrip(t *testing.T) {
	c := chain.New()
	id := c.RegisterContract("kv", sdk.Address(deployerAddr), kvHandler)

	res := c.Call(sdk.Address(bobAddr), id, "set", "hello", chain.CallOpts{})
	require.True(t, res.Success, res.Ret)

	res = c.Call(sdk.Address(bobAddr), id, "get", "", chain.CallOpts{})
	require.True(t, res.Success)
	assert.Equal(t, "hello", res.Ret)
}

func TestAbortRollsBackStateAndFunds(t *testing.T) {
	c := chain.New()
	id := c.RegisterContract("kv", sdk.Address(deployerAddr), kvHandler)
	c.Deposit(sdk.ContractAddress(id), 100)

	res := c.Call(sdk.Address(bobAddr), id, "set_then_fail", "", chain.CallOpts{})
	require.False(t, res.Success)
	assert.Contains(t, res.Ret, "ERR_INVALID_DATA")

	assert.Equal(t, uint64(0), c.Balance(sdk.Address(bobAddr)), "payment rolled back")
	assert.Equal(t, uint64(100), c.Balance(sdk.ContractAddress(id)))

	res = c.Call(sdk.Address(bobAddr), id, "get", "", chain.CallOpts{})
	require.True(t, res.Success)
	assert.Equal(t, "", res.Ret, "state write rolled back")
}

func TestGroupedPaymentRollsBackWithAbort(t *testing.T) {
	c := chain.New()
	id := c.RegisterContract("kv", sdk.Address(deployerAddr), kvHandler)
	c.Deposit(sdk.Address(bobAddr), 500)

	res := c.Call(sdk.Address(bobAddr), 99, "set", "x",
		chain.PaymentOpts(sdk.Address(bobAddr), sdk.ContractAddress(id), 200))
	require.False(t, res.Success)
	assert.Contains(t, res.Ret, "ERR_NOT_FOUND")
	assert.Equal(t, uint64(500), c.Balance(sdk.Address(bobAddr)))
}

func TestPaymentRequiresFunds(t *testing.T) {
	c := chain.New()
	id := c.RegisterContract("kv", sdk.Address(deployerAddr), kvHandler)

	res := c.Call(sdk.Address(bobAddr), id, "set", "x",
		chain.PaymentOpts(sdk.Address(bobAddr), sdk.ContractAddress(id), 200))
	require.False(t, res.Success)
	assert.Contains(t, res.Ret, "ERR_INSUFFICIENT_FUNDS")
}

func TestNestedCallSenderIsCallingContract(t *testing.T) {
	c := chain.New()
	calleeID := c.RegisterContract("kv", sdk.Address(deployerAddr), kvHandler)

	caller := func(method string, payload *string) *string {
		return sdk.ContractCall(calleeID, "whoami", "")
	}
	callerID := c.RegisterContract("proxy", sdk.Address(deployerAddr), caller)

	res := c.Call(sdk.Address(bobAddr), callerID, "relay", "", chain.CallOpts{})
	require.True(t, res.Success, res.Ret)
	assert.Equal(t, sdk.ContractAddress(callerID).String(), res.Ret)
}

func TestAssetTransferNeedsContractOptIn(t *testing.T) {
	c := chain.New()
	id := c.RegisterContract("kv", sdk.Address(deployerAddr), kvHandler)
	c.MintAsset(sdk.Address(bobAddr), sdk.Asset(7), 1000)

	res := c.Call(sdk.Address(bobAddr), id, "set", "x",
		chain.AssetTransferOpts(sdk.Address(bobAddr), sdk.ContractAddress(id), sdk.Asset(7), 10))
	require.False(t, res.Success)
	assert.Contains(t, res.Ret, "ERR_NOT_OPTED_IN")

	res = c.Call(sdk.Address(bobAddr), id, "optin", "", chain.CallOpts{})
	require.True(t, res.Success)

	res = c.Call(sdk.Address(bobAddr), id, "set", "x",
		chain.AssetTransferOpts(sdk.Address(bobAddr), sdk.ContractAddress(id), sdk.Asset(7), 10))
	require.True(t, res.Success, res.Ret)
	assert.Equal(t, uint64(10), c.AssetBalance(sdk.ContractAddress(id), sdk.Asset(7)))
	assert.Equal(t, uint64(990), c.AssetBalance(sdk.Address(bobAddr), sdk.Asset(7)))
}

func TestClockControls(t *testing.T) {
	c := chain.New()
	start := c.Now()
	c.AdvanceTime(3600)
	assert.Equal(t, start+3600, c.Now())
	c.SetTime(start)
	assert.Equal(t, start, c.Now())
}
