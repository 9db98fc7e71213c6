package metrics

// Fixed-point scoring. All division truncates; the weights sum to 100.

func GithubScore(commits, stars, forks uint64) uint64 {
	return commits/10 + stars*5 + forks*10
}

func SocialScore(twitter, linkedin uint64) uint64 {
	return twitter/100 + linkedin/50
}

func PlatformScore(posts uint64) uint64 {
	return posts * 20
}

func DemoScore(views uint64) uint64 {
	return views / 10
}

func WeightedTotal(github, social, platform, demo uint64) uint64 {
	return (github*40 + social*30 + platform*20 + demo*10) / 100
}

// recomputeTotal re-derives the composite score from the merged record.
func recomputeTotal(m *Metrics) {
	m.TotalScore = WeightedTotal(
		GithubScore(m.GithubCommits, m.GithubStars, m.GithubForks),
		SocialScore(m.TwitterFollowers, m.LinkedinFollowers),
		PlatformScore(m.PlatformPosts),
		DemoScore(m.DemoViews),
	)
}
