package metrics

import "startex/sdk"

// Metrics holds the raw reported counters for one startup plus the derived
// weighted score.
type Metrics struct {
	StartupID         uint64 `json:"startup_id"`
	GithubCommits     uint64 `json:"github_commits"`
	GithubStars       uint64 `json:"github_stars"`
	GithubForks       uint64 `json:"github_forks"`
	TwitterFollowers  uint64 `json:"twitter_followers"`
	LinkedinFollowers uint64 `json:"linkedin_followers"`
	PlatformPosts     uint64 `json:"platform_posts"`
	DemoViews         uint64 `json:"demo_views"`
	LastUpdated       int64  `json:"last_updated"`
	TotalScore        uint64 `json:"total_score"`
}

// WeeklySnapshot is an append-only per-week capture. Growth fields are
// always written as zero, see TakeWeeklySnapshot.
type WeeklySnapshot struct {
	Score            uint64 `json:"score"`
	GithubGrowth     uint64 `json:"github_growth"`
	SocialGrowth     uint64 `json:"social_growth"`
	PlatformActivity uint64 `json:"platform_activity"`
	Timestamp        int64  `json:"timestamp"`
}

type Config struct {
	Owner sdk.Address `json:"owner"`
}

type githubArgs struct {
	StartupID uint64
	Commits   uint64
	Stars     uint64
	Forks     uint64
}

type socialArgs struct {
	StartupID uint64
	Twitter   uint64
	Linkedin  uint64
}

type platformArgs struct {
	StartupID uint64
	Posts     uint64
	DemoViews uint64
}

type snapshotArgs struct {
	StartupID uint64
	Week      uint64
}
