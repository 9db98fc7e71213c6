package registry_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"startex/chain"
	"startex/platform"
	"startex/registry"
	"startex/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminAddr = "hive:startex.admin"
	aliceAddr = "hive:alice"
	bobAddr   = "hive:bob"
)

// minimum balance plus the launchpad's seven declared slots
const launchpadMBR = 100_000 + 1000*7

func deployPlatform() *platform.Platform {
	p := platform.Deploy(sdk.Address(adminAddr))
	p.Chain.Deposit(sdk.Address(aliceAddr), 10_000_000)
	p.Chain.Deposit(sdk.Address(bobAddr), 10_000_000)
	return p
}

func call(t *testing.T, p *platform.Platform, caller, method, payload string, opts chain.CallOpts, expectOK bool) chain.TxResult {
	t.Helper()
	res := p.Chain.Call(sdk.Address(caller), p.RegistryID, method, payload, opts)
	if expectOK {
		require.True(t, res.Success, "call %s failed: %s", method, res.Ret)
	} else {
		require.False(t, res.Success, "call %s unexpectedly succeeded: %s", method, res.Ret)
	}
	return res
}

func registerDefaultStartup(t *testing.T, p *platform.Platform, owner string) string {
	t.Helper()
	res := call(t, p, owner, "register_startup",
		"DemoCorp|demo things|https://github.com/demo/corp|https://demo.corp|@democorp|777",
		chain.CallOpts{}, true)
	return res.Ret
}

func getStartup(t *testing.T, p *platform.Platform, id string) registry.Startup {
	t.Helper()
	res := call(t, p, aliceAddr, "get_startup", id, chain.CallOpts{}, true)
	var stp registry.Startup
	require.NoError(t, json.Unmarshal([]byte(res.Ret), &stp))
	return stp
}

func TestRegisterStartupSequentialIDs(t *testing.T) {
	p := deployPlatform()

	res := call(t, p, aliceAddr, "get_next_startup_id", "", chain.CallOpts{}, true)
	assert.Equal(t, "1", res.Ret)

	assert.Equal(t, "1", registerDefaultStartup(t, p, aliceAddr))
	assert.Equal(t, "2", registerDefaultStartup(t, p, bobAddr))

	res = call(t, p, aliceAddr, "get_next_startup_id", "", chain.CallOpts{}, true)
	assert.Equal(t, "3", res.Ret)
}

func TestRegisterStartupRequiredFields(t *testing.T) {
	p := deployPlatform()

	res := call(t, p, aliceAddr, "register_startup", "|desc|https://github.com/x/y|||0", chain.CallOpts{}, false)
	assert.Contains(t, res.Ret, "ERR_INVALID_DATA")

	res = call(t, p, aliceAddr, "register_startup", "NoRepo|desc||||0", chain.CallOpts{}, false)
	assert.Contains(t, res.Ret, "ERR_INVALID_DATA")
}

func TestUpdateStartupOwnerOnly(t *testing.T) {
	p := deployPlatform()
	id := registerDefaultStartup(t, p, aliceAddr)

	res := call(t, p, bobAddr, "update_startup", id+"|NewName|new desc|https://new.site|@new", chain.CallOpts{}, false)
	assert.Contains(t, res.Ret, "ERR_NOT_AUTHORIZED")

	call(t, p, aliceAddr, "update_startup", id+"|NewName|new desc|https://new.site|@new", chain.CallOpts{}, true)

	stp := getStartup(t, p, id)
	assert.Equal(t, "NewName", stp.Name)
	assert.Equal(t, "https://new.site", stp.Website)
	assert.Equal(t, "https://github.com/demo/corp", stp.GithubRepo, "github repo is immutable")
	assert.Equal(t, sdk.Address(aliceAddr), stp.Owner, "owner is immutable")
}

func TestUpdateStartupMissing(t *testing.T) {
	p := deployPlatform()
	res := call(t, p, aliceAddr, "update_startup", "42|x|y|z|w", chain.CallOpts{}, false)
	assert.Contains(t, res.Ret, "ERR_NOT_FOUND")
}

func TestVerifyAndScoreAdminOnly(t *testing.T) {
	p := deployPlatform()
	id := registerDefaultStartup(t, p, aliceAddr)

	res := call(t, p, aliceAddr, "verify_startup", id+"|true", chain.CallOpts{}, false)
	assert.Contains(t, res.Ret, "ERR_NOT_AUTHORIZED")
	res = call(t, p, aliceAddr, "update_score", id+"|99", chain.CallOpts{}, false)
	assert.Contains(t, res.Ret, "ERR_NOT_AUTHORIZED")

	call(t, p, adminAddr, "verify_startup", id+"|true", chain.CallOpts{}, true)
	call(t, p, adminAddr, "update_score", id+"|99", chain.CallOpts{}, true)

	stp := getStartup(t, p, id)
	assert.True(t, stp.IsVerified)
	assert.Equal(t, uint64(99), stp.TotalScore)
}

func TestCreateLaunchpad(t *testing.T) {
	p := deployPlatform()
	id := registerDefaultStartup(t, p, aliceAddr)
	regAddr := sdk.ContractAddress(p.RegistryID)

	res := call(t, p, aliceAddr, "create_launchpad", id,
		chain.PaymentOpts(sdk.Address(aliceAddr), regAddr, launchpadMBR), true)
	lpID := res.Ret
	assert.NotEqual(t, "0", lpID)

	stp := getStartup(t, p, id)
	assert.Equal(t, lpID, fmt.Sprintf("%d", stp.LaunchpadID))
}

func TestCreateLaunchpadDuplicate(t *testing.T) {
	p := deployPlatform()
	id := registerDefaultStartup(t, p, aliceAddr)
	regAddr := sdk.ContractAddress(p.RegistryID)
	opts := chain.PaymentOpts(sdk.Address(aliceAddr), regAddr, launchpadMBR)

	call(t, p, aliceAddr, "create_launchpad", id, opts, true)
	before := getStartup(t, p, id).LaunchpadID

	res := call(t, p, aliceAddr, "create_launchpad", id, opts, false)
	assert.Contains(t, res.Ret, "ERR_LAUNCHPAD_EXISTS")
	assert.Equal(t, before, getStartup(t, p, id).LaunchpadID, "link unchanged by failed call")
}

func TestCreateLaunchpadPaymentTooSmall(t *testing.T) {
	p := deployPlatform()
	id := registerDefaultStartup(t, p, aliceAddr)
	regAddr := sdk.ContractAddress(p.RegistryID)
	balanceBefore := p.Chain.Balance(sdk.Address(aliceAddr))

	res := call(t, p, aliceAddr, "create_launchpad", id,
		chain.PaymentOpts(sdk.Address(aliceAddr), regAddr, launchpadMBR-1), false)
	assert.Contains(t, res.Ret, "ERR_INVALID_DATA")
	assert.Equal(t, uint64(0), getStartup(t, p, id).LaunchpadID)
	assert.Equal(t, balanceBefore, p.Chain.Balance(sdk.Address(aliceAddr)), "payment rolled back")
}

func TestCreateLaunchpadNonOwner(t *testing.T) {
	p := deployPlatform()
	id := registerDefaultStartup(t, p, aliceAddr)
	regAddr := sdk.ContractAddress(p.RegistryID)

	res := call(t, p, bobAddr, "create_launchpad", id,
		chain.PaymentOpts(sdk.Address(bobAddr), regAddr, launchpadMBR), false)
	assert.Contains(t, res.Ret, "ERR_NOT_AUTHORIZED")
}

func TestIsStartupOwner(t *testing.T) {
	p := deployPlatform()
	id := registerDefaultStartup(t, p, aliceAddr)

	res := call(t, p, bobAddr, "is_startup_owner", aliceAddr+"|"+id, chain.CallOpts{}, true)
	assert.Equal(t, "true", res.Ret)

	res = call(t, p, bobAddr, "is_startup_owner", bobAddr+"|"+id, chain.CallOpts{}, true)
	assert.Equal(t, "false", res.Ret)

	res = call(t, p, bobAddr, "is_startup_owner", bobAddr+"|42", chain.CallOpts{}, true)
	assert.Equal(t, "false", res.Ret, "missing startup answers false")
}
