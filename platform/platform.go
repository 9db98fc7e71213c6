package platform

import (
	"fmt"

	"startex/chain"
	"startex/codec"
	"startex/competition"
	"startex/launchpad"
	"startex/metrics"
	"startex/registry"
	"startex/sdk"
)

// Platform wires the three top-level contracts onto one chain and keeps
// their ids together. Tests and the local debug entry both deploy through
// here.
type Platform struct {
	Chain         *chain.Chain
	Owner         sdk.Address
	RegistryID    uint64
	MetricsID     uint64
	CompetitionID uint64
}

// Deploy stands up a fresh chain, registers the launchpad template, deploys
// registry, metrics, and competition, and initializes each with the given
// owner as admin.
func Deploy(owner sdk.Address) *Platform {
	c := chain.New()
	c.RegisterTemplate(launchpad.Template, launchpad.Dispatch)

	regID := c.RegisterContract("registry", owner, registry.Dispatch)
	metID := c.RegisterContract("metrics", owner, metrics.Dispatch)
	cmpID := c.RegisterContract("competition", owner, competition.Dispatch)

	mustCall(c, owner, regID, "contract_init", "")
	mustCall(c, owner, metID, "contract_init", "")
	mustCall(c, owner, cmpID, "contract_init", codec.UInt64ToString(regID))

	return &Platform{
		Chain:         c,
		Owner:         owner,
		RegistryID:    regID,
		MetricsID:     metID,
		CompetitionID: cmpID,
	}
}

func mustCall(c *chain.Chain, caller sdk.Address, contractID uint64, method, payload string) {
	res := c.Call(caller, contractID, method, payload, chain.CallOpts{})
	if !res.Success {
		panic(fmt.Sprintf("platform deploy: %s on contract %d failed: %s", method, contractID, res.Ret))
	}
}
