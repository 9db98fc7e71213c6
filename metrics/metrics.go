package metrics

import (
	"fmt"

	"startex/codec"
	"startex/sdk"
)

// InitializeMetrics creates a zeroed record for a startup. Re-initializing an
// existing record is rejected.
func InitializeMetrics(payload *string) *string {
	requireInitialized()
	startupID := decodeStartupIDArg(payload)
	if _, err := loadMetrics(startupID); err == nil {
		sdk.Abort(fmt.Sprintf("%s: metrics for startup %d already initialized", sdk.ErrInvalidData, startupID))
	}
	saveMetrics(&Metrics{
		StartupID:   startupID,
		LastUpdated: sdk.GetEnv().Timestamp,
	})
	sdk.Log(fmt.Sprintf("met-initrec|sid:%d", startupID))
	return nil
}

// UpdateGithubMetrics overwrites the github counters and re-derives the
// composite score. Owner or authorized oracle only.
func UpdateGithubMetrics(payload *string) *string {
	assertOracleOrOwner()
	args := decodeGithubArgs(payload)
	m := mustLoadMetrics(args.StartupID)
	m.GithubCommits = args.Commits
	m.GithubStars = args.Stars
	m.GithubForks = args.Forks
	m.LastUpdated = sdk.GetEnv().Timestamp
	recomputeTotal(m)
	saveMetrics(m)
	sdk.Log(fmt.Sprintf("met-github|sid:%d|score:%d", args.StartupID, m.TotalScore))
	return nil
}

// UpdateSocialMetrics overwrites the follower counters. Owner or authorized
// oracle only.
func UpdateSocialMetrics(payload *string) *string {
	assertOracleOrOwner()
	args := decodeSocialArgs(payload)
	m := mustLoadMetrics(args.StartupID)
	m.TwitterFollowers = args.Twitter
	m.LinkedinFollowers = args.Linkedin
	m.LastUpdated = sdk.GetEnv().Timestamp
	recomputeTotal(m)
	saveMetrics(m)
	sdk.Log(fmt.Sprintf("met-social|sid:%d|score:%d", args.StartupID, m.TotalScore))
	return nil
}

// UpdatePlatformMetrics overwrites posts and demo views. Carries no caller
// restriction, unlike its sibling update operations.
func UpdatePlatformMetrics(payload *string) *string {
	requireInitialized()
	args := decodePlatformArgs(payload)
	m := mustLoadMetrics(args.StartupID)
	m.PlatformPosts = args.Posts
	m.DemoViews = args.DemoViews
	m.LastUpdated = sdk.GetEnv().Timestamp
	recomputeTotal(m)
	saveMetrics(m)
	sdk.Log(fmt.Sprintf("met-platform|sid:%d|score:%d", args.StartupID, m.TotalScore))
	return nil
}

// TakeWeeklySnapshot captures the current score under a week key. Growth
// fields are stored as zero.
func TakeWeeklySnapshot(payload *string) *string {
	requireContractOwner()
	args := decodeSnapshotArgs(payload)
	m := mustLoadMetrics(args.StartupID)
	saveSnapshot(args.StartupID, args.Week, &WeeklySnapshot{
		Score:            m.TotalScore,
		PlatformActivity: m.PlatformPosts,
		Timestamp:        sdk.GetEnv().Timestamp,
	})
	sdk.Log(fmt.Sprintf("met-snapshot|sid:%d|week:%d", args.StartupID, args.Week))
	return nil
}

// AuthorizeOracle marks an address as a trusted reporter. Owner only.
func AuthorizeOracle(payload *string) *string {
	requireContractOwner()
	oracle := decodeAddressArg(payload, "oracle payload missing")
	setOracleAuthorized(oracle)
	sdk.Log("met-oracle|addr:" + oracle.String())
	return nil
}

// GetMetrics returns the record as JSON.
func GetMetrics(payload *string) *string {
	startupID := decodeStartupIDArg(payload)
	m := mustLoadMetrics(startupID)
	return codec.StrPtr(codec.ToJSON(m, "metrics"))
}

// GetWeeklySnapshot returns one snapshot as JSON.
func GetWeeklySnapshot(payload *string) *string {
	args := decodeSnapshotArgs(payload)
	s, err := loadSnapshot(args.StartupID, args.Week)
	if err != nil {
		sdk.Abort(fmt.Sprintf("%s: snapshot %d/%d", sdk.ErrNotFound, args.StartupID, args.Week))
	}
	return codec.StrPtr(codec.ToJSON(s, "weekly snapshot"))
}

// GetScore returns "found|score": "1|<score>" when the record exists,
// "0|0" when it does not. Never aborts.
func GetScore(payload *string) *string {
	startupID := decodeStartupIDArg(payload)
	m, err := loadMetrics(startupID)
	if err != nil {
		return codec.StrPtr("0|0")
	}
	return codec.StrPtr("1|" + codec.UInt64ToString(m.TotalScore))
}

// IsOracleAuthorized reports allow-list membership.
func IsOracleAuthorized(payload *string) *string {
	addr := decodeAddressArg(payload, "oracle payload missing")
	return codec.StrPtr(codec.BoolString(oracleAuthorized(addr)))
}
