package registry

import (
	"strings"

	"startex/codec"
	"startex/sdk"
)

// decodeRegisterArgs unpacks the pipe-delimited registration payload:
// name|description|github_repo|website|twitter|token_asset_id
func decodeRegisterArgs(payload *string) *registerArgs {
	raw := codec.UnwrapPayload(payload, "registration payload missing")
	parts := codec.SplitPayload(raw)

	args := &registerArgs{
		Name:        strings.TrimSpace(parts.Get(0)),
		Description: strings.TrimSpace(parts.Get(1)),
		GithubRepo:  strings.TrimSpace(parts.Get(2)),
		Website:     strings.TrimSpace(parts.Get(3)),
		Twitter:     strings.TrimSpace(parts.Get(4)),
		TokenAsset:  sdk.Asset(codec.ParseUintField(parts.Get(5), "token asset id")),
	}
	if args.Name == "" {
		sdk.Abort(sdk.ErrInvalidData + ": name required")
	}
	if args.GithubRepo == "" {
		sdk.Abort(sdk.ErrInvalidData + ": github repo required")
	}
	return args
}

// decodeUpdateArgs unpacks: startup_id|name|description|website|twitter
func decodeUpdateArgs(payload *string) *updateArgs {
	raw := codec.UnwrapPayload(payload, "update payload missing")
	parts := codec.SplitPayload(raw)

	return &updateArgs{
		StartupID:   codec.ParseUintField(parts.Get(0), "startup id"),
		Name:        strings.TrimSpace(parts.Get(1)),
		Description: strings.TrimSpace(parts.Get(2)),
		Website:     strings.TrimSpace(parts.Get(3)),
		Twitter:     strings.TrimSpace(parts.Get(4)),
	}
}

// decodeVerifyArgs unpacks: startup_id|verified
func decodeVerifyArgs(payload *string) *verifyArgs {
	raw := codec.UnwrapPayload(payload, "verify payload missing")
	parts := codec.SplitPayload(raw)

	return &verifyArgs{
		StartupID: codec.ParseUintField(parts.Get(0), "startup id"),
		Verified:  codec.ParseBoolField(parts.Get(1)),
	}
}

// decodeScoreArgs unpacks: startup_id|score
func decodeScoreArgs(payload *string) *scoreArgs {
	raw := codec.UnwrapPayload(payload, "score payload missing")
	parts := codec.SplitPayload(raw)

	return &scoreArgs{
		StartupID: codec.ParseUintField(parts.Get(0), "startup id"),
		Score:     codec.ParseUintField(parts.Get(1), "score"),
	}
}

// decodeOwnerCheckArgs unpacks: candidate_address|startup_id
func decodeOwnerCheckArgs(payload *string) *ownerCheckArgs {
	raw := codec.UnwrapPayload(payload, "owner check payload missing")
	parts := codec.SplitPayload(raw)

	candidate := sdk.Address(parts.Get(0))
	if !candidate.IsValid() {
		sdk.Abort(sdk.ErrInvalidData + ": invalid candidate address")
	}
	return &ownerCheckArgs{
		Candidate: candidate,
		StartupID: codec.ParseUintField(parts.Get(1), "startup id"),
	}
}

// decodeStartupIDArg unpacks a single startup_id payload.
func decodeStartupIDArg(payload *string) uint64 {
	raw := codec.UnwrapPayload(payload, "startup id missing")
	return codec.ParseUintField(raw, "startup id")
}
