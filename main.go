////////////////////////////////////////////////////////////////////////////////
// StarteX: on-chain startup registry, scoring, competitions and token sales
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"

	"startex/chain"
	"startex/platform"
	"startex/sdk"
)

// Local debug entry: deploys the platform onto the in-memory chain and walks
// one startup through registration, scoring and a launchpad.
func main() {
	owner := sdk.Address("hive:startex.admin")
	founder := sdk.Address("hive:alice")

	p := platform.Deploy(owner)
	c := p.Chain
	c.Deposit(founder, 10_000_000)

	res := c.Call(founder, p.RegistryID, "register_startup",
		"DemoCorp|demo things|https://github.com/demo/corp|https://demo.corp|@democorp|0",
		chain.CallOpts{})
	fmt.Println("register_startup:", res.Ret)

	res = c.Call(owner, p.MetricsID, "initialize_metrics", res.Ret, chain.CallOpts{})
	fmt.Println("initialize_metrics ok:", res.Success)

	res = c.Call(owner, p.MetricsID, "update_github_metrics", "1|100|10|2", chain.CallOpts{})
	fmt.Println("update_github_metrics ok:", res.Success)

	res = c.Call(founder, p.MetricsID, "get_score", "1", chain.CallOpts{})
	fmt.Println("get_score:", res.Ret)

	regAddr := sdk.ContractAddress(p.RegistryID)
	res = c.Call(founder, p.RegistryID, "create_launchpad", "1",
		chain.PaymentOpts(founder, regAddr, 200_000))
	fmt.Println("create_launchpad:", res.Ret)
}
