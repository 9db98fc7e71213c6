package metrics_test

import (
	"encoding/json"
	"testing"

	"startex/chain"
	"startex/metrics"
	"startex/platform"
	"startex/sdk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminAddr  = "hive:startex.admin"
	oracleAddr = "hive:oracle"
	bobAddr    = "hive:bob"
)

func deployPlatform() *platform.Platform {
	return platform.Deploy(sdk.Address(adminAddr))
}

func call(t *testing.T, p *platform.Platform, caller, method, payload string, expectOK bool) chain.TxResult {
	t.Helper()
	res := p.Chain.Call(sdk.Address(caller), p.MetricsID, method, payload, chain.CallOpts{})
	if expectOK {
		require.True(t, res.Success, "call %s failed: %s", method, res.Ret)
	} else {
		require.False(t, res.Success, "call %s unexpectedly succeeded: %s", method, res.Ret)
	}
	return res
}

func TestInitializeMetricsOnce(t *testing.T) {
	p := deployPlatform()

	call(t, p, adminAddr, "initialize_metrics", "1", true)
	res := call(t, p, adminAddr, "initialize_metrics", "1", false)
	assert.Contains(t, res.Ret, "ERR_INVALID_DATA")
}

func TestUpdateGithubMetricsRecomputesScore(t *testing.T) {
	p := deployPlatform()
	call(t, p, adminAddr, "initialize_metrics", "1", true)
	call(t, p, adminAddr, "update_github_metrics", "1|100|10|2", true)

	res := call(t, p, bobAddr, "get_metrics", "1", true)
	var m metrics.Metrics
	require.NoError(t, json.Unmarshal([]byte(res.Ret), &m))
	assert.Equal(t, uint64(100), m.GithubCommits)
	assert.Equal(t, uint64(32), m.TotalScore)
}

func TestUpdateMetricsRequiresOracleOrOwner(t *testing.T) {
	p := deployPlatform()
	call(t, p, adminAddr, "initialize_metrics", "1", true)

	res := call(t, p, bobAddr, "update_github_metrics", "1|1|1|1", false)
	assert.Contains(t, res.Ret, "ERR_NOT_AUTHORIZED")
	res = call(t, p, bobAddr, "update_social_metrics", "1|1|1", false)
	assert.Contains(t, res.Ret, "ERR_NOT_AUTHORIZED")

	res = call(t, p, bobAddr, "authorize_oracle", oracleAddr, false)
	assert.Contains(t, res.Ret, "ERR_NOT_AUTHORIZED")
	call(t, p, adminAddr, "authorize_oracle", oracleAddr, true)

	res = call(t, p, bobAddr, "is_oracle_authorized", oracleAddr, true)
	assert.Equal(t, "true", res.Ret)
	res = call(t, p, bobAddr, "is_oracle_authorized", bobAddr, true)
	assert.Equal(t, "false", res.Ret)

	call(t, p, oracleAddr, "update_github_metrics", "1|50|0|0", true)
	call(t, p, oracleAddr, "update_social_metrics", "1|200|100", true)
}

// update_platform_metrics deliberately carries no caller check.
func TestUpdatePlatformMetricsUnrestricted(t *testing.T) {
	p := deployPlatform()
	call(t, p, adminAddr, "initialize_metrics", "1", true)

	call(t, p, bobAddr, "update_platform_metrics", "1|3|95", true)

	res := call(t, p, bobAddr, "get_metrics", "1", true)
	var m metrics.Metrics
	require.NoError(t, json.Unmarshal([]byte(res.Ret), &m))
	assert.Equal(t, uint64(3), m.PlatformPosts)
	assert.Equal(t, uint64(95), m.DemoViews)
	// platform 60, demo 9: (60*20 + 9*10) / 100
	assert.Equal(t, uint64(12), m.TotalScore)
}

func TestGetScoreFoundFlag(t *testing.T) {
	p := deployPlatform()

	res := call(t, p, bobAddr, "get_score", "7", true)
	assert.Equal(t, "0|0", res.Ret)

	call(t, p, adminAddr, "initialize_metrics", "7", true)
	call(t, p, adminAddr, "update_github_metrics", "7|100|10|2", true)

	res = call(t, p, bobAddr, "get_score", "7", true)
	assert.Equal(t, "1|32", res.Ret)
}

func TestWeeklySnapshot(t *testing.T) {
	p := deployPlatform()
	call(t, p, adminAddr, "initialize_metrics", "1", true)
	call(t, p, adminAddr, "update_github_metrics", "1|100|10|2", true)
	call(t, p, adminAddr, "update_platform_metrics", "1|5|0", true)

	res := call(t, p, bobAddr, "take_weekly_snapshot", "1|12", false)
	assert.Contains(t, res.Ret, "ERR_NOT_AUTHORIZED")

	call(t, p, adminAddr, "take_weekly_snapshot", "1|12", true)

	res = call(t, p, bobAddr, "get_weekly_snapshot", "1|12", true)
	var s metrics.WeeklySnapshot
	require.NoError(t, json.Unmarshal([]byte(res.Ret), &s))
	assert.Equal(t, uint64(5), s.PlatformActivity)
	assert.Zero(t, s.GithubGrowth)
	assert.Zero(t, s.SocialGrowth)
	assert.NotZero(t, s.Timestamp)

	res = call(t, p, bobAddr, "get_weekly_snapshot", "1|13", false)
	assert.Contains(t, res.Ret, "ERR_NOT_FOUND")
}

func TestUpdateMissingRecord(t *testing.T) {
	p := deployPlatform()
	res := call(t, p, adminAddr, "update_github_metrics", "9|1|1|1", false)
	assert.Contains(t, res.Ret, "ERR_NOT_FOUND")
}
