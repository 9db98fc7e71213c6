package registry

import "startex/sdk"

// Startup is the registry's record for one registered project.
type Startup struct {
	ID          uint64      `json:"id"`
	Owner       sdk.Address `json:"owner"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	GithubRepo  string      `json:"github_repo"`
	Website     string      `json:"website"`
	Twitter     string      `json:"twitter"`
	TokenAsset  sdk.Asset   `json:"token_asset_id"`
	CreatedAt   int64       `json:"created_at"`
	IsVerified  bool        `json:"is_verified"`
	TotalScore  uint64      `json:"total_score"`
	LaunchpadID uint64      `json:"launchpad_id"`
}

// Config holds the contract-level admin record.
type Config struct {
	Owner sdk.Address `json:"owner"`
}

type registerArgs struct {
	Name        string
	Description string
	GithubRepo  string
	Website     string
	Twitter     string
	TokenAsset  sdk.Asset
}

type updateArgs struct {
	StartupID   uint64
	Name        string
	Description string
	Website     string
	Twitter     string
}

type verifyArgs struct {
	StartupID uint64
	Verified  bool
}

type scoreArgs struct {
	StartupID uint64
	Score     uint64
}

type ownerCheckArgs struct {
	Candidate sdk.Address
	StartupID uint64
}
