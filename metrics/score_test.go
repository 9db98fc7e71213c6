package metrics_test

import (
	"testing"

	"startex/metrics"

	"github.com/stretchr/testify/assert"
)

func TestGithubScore(t *testing.T) {
	// 100/10 + 10*5 + 2*10
	assert.Equal(t, uint64(80), metrics.GithubScore(100, 10, 2))
	assert.Equal(t, uint64(0), metrics.GithubScore(9, 0, 0), "division truncates")
}

func TestSocialScore(t *testing.T) {
	// 250/100 + 100/50
	assert.Equal(t, uint64(4), metrics.SocialScore(250, 100))
	assert.Equal(t, uint64(0), metrics.SocialScore(99, 49))
}

func TestPlatformAndDemoScore(t *testing.T) {
	assert.Equal(t, uint64(60), metrics.PlatformScore(3))
	assert.Equal(t, uint64(9), metrics.DemoScore(95))
}

func TestWeightedTotal(t *testing.T) {
	// (80*40 + 0 + 0 + 0) / 100
	assert.Equal(t, uint64(32), metrics.WeightedTotal(80, 0, 0, 0))
	// (80*40 + 4*30 + 60*20 + 9*10) / 100 = (3200+120+1200+90)/100 = 4610/100
	assert.Equal(t, uint64(46), metrics.WeightedTotal(80, 4, 60, 9))
	assert.Equal(t, uint64(0), metrics.WeightedTotal(0, 0, 0, 0))
}
