package metrics

import (
	"startex/codec"
	"startex/sdk"
)

// decodeGithubArgs unpacks: startup_id|commits|stars|forks
func decodeGithubArgs(payload *string) *githubArgs {
	raw := codec.UnwrapPayload(payload, "github metrics payload missing")
	parts := codec.SplitPayload(raw)

	return &githubArgs{
		StartupID: codec.ParseUintField(parts.Get(0), "startup id"),
		Commits:   codec.ParseUintField(parts.Get(1), "commits"),
		Stars:     codec.ParseUintField(parts.Get(2), "stars"),
		Forks:     codec.ParseUintField(parts.Get(3), "forks"),
	}
}

// decodeSocialArgs unpacks: startup_id|twitter_followers|linkedin_followers
func decodeSocialArgs(payload *string) *socialArgs {
	raw := codec.UnwrapPayload(payload, "social metrics payload missing")
	parts := codec.SplitPayload(raw)

	return &socialArgs{
		StartupID: codec.ParseUintField(parts.Get(0), "startup id"),
		Twitter:   codec.ParseUintField(parts.Get(1), "twitter followers"),
		Linkedin:  codec.ParseUintField(parts.Get(2), "linkedin followers"),
	}
}

// decodePlatformArgs unpacks: startup_id|posts|demo_views
func decodePlatformArgs(payload *string) *platformArgs {
	raw := codec.UnwrapPayload(payload, "platform metrics payload missing")
	parts := codec.SplitPayload(raw)

	return &platformArgs{
		StartupID: codec.ParseUintField(parts.Get(0), "startup id"),
		Posts:     codec.ParseUintField(parts.Get(1), "posts"),
		DemoViews: codec.ParseUintField(parts.Get(2), "demo views"),
	}
}

// decodeSnapshotArgs unpacks: startup_id|week
func decodeSnapshotArgs(payload *string) *snapshotArgs {
	raw := codec.UnwrapPayload(payload, "snapshot payload missing")
	parts := codec.SplitPayload(raw)

	return &snapshotArgs{
		StartupID: codec.ParseUintField(parts.Get(0), "startup id"),
		Week:      codec.ParseUintField(parts.Get(1), "week"),
	}
}

func decodeStartupIDArg(payload *string) uint64 {
	raw := codec.UnwrapPayload(payload, "startup id missing")
	return codec.ParseUintField(raw, "startup id")
}

func decodeAddressArg(payload *string, errMsg string) sdk.Address {
	raw := codec.UnwrapPayload(payload, errMsg)
	addr := sdk.Address(raw)
	if !addr.IsValid() {
		sdk.Abort(sdk.ErrInvalidData + ": invalid address")
	}
	return addr
}
