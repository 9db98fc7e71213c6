package registry

import (
	"fmt"

	"startex/codec"
	"startex/launchpad"
	"startex/sdk"
)

// RegisterStartup creates a new record owned by the sender and returns its id.
// Ids are sequential starting at 1 and never reused.
func RegisterStartup(payload *string) *string {
	requireInitialized()
	args := decodeRegisterArgs(payload)
	env := sdk.GetEnv()

	id := codec.NextID(startupCountKey)
	saveStartup(&Startup{
		ID:          id,
		Owner:       env.Sender.Address,
		Name:        args.Name,
		Description: args.Description,
		GithubRepo:  args.GithubRepo,
		Website:     args.Website,
		Twitter:     args.Twitter,
		TokenAsset:  args.TokenAsset,
		CreatedAt:   env.Timestamp,
	})
	sdk.Log(fmt.Sprintf("stp-register|id:%d|owner:%s", id, env.Sender.Address))
	return codec.StrPtr(codec.UInt64ToString(id))
}

// UpdateStartup rewrites the mutable profile fields. Owner and github repo
// are fixed at registration.
func UpdateStartup(payload *string) *string {
	requireInitialized()
	args := decodeUpdateArgs(payload)
	stp := mustLoadStartup(args.StartupID)
	if sender() != stp.Owner {
		sdk.Abort(sdk.ErrNotAuthorized + ": startup owner only")
	}
	stp.Name = args.Name
	stp.Description = args.Description
	stp.Website = args.Website
	stp.Twitter = args.Twitter
	saveStartup(stp)
	sdk.Log(fmt.Sprintf("stp-update|id:%d", stp.ID))
	return nil
}

// VerifyStartup sets the verification flag. Platform owner only.
func VerifyStartup(payload *string) *string {
	requireContractOwner()
	args := decodeVerifyArgs(payload)
	stp := mustLoadStartup(args.StartupID)
	stp.IsVerified = args.Verified
	saveStartup(stp)
	sdk.Log(fmt.Sprintf("stp-verify|id:%d|verified:%s", stp.ID, codec.BoolString(args.Verified)))
	return nil
}

// UpdateScore sets the registry-side score. Platform owner only; independent
// of the score the metrics contract derives.
func UpdateScore(payload *string) *string {
	requireContractOwner()
	args := decodeScoreArgs(payload)
	stp := mustLoadStartup(args.StartupID)
	stp.TotalScore = args.Score
	saveStartup(stp)
	sdk.Log(fmt.Sprintf("stp-score|id:%d|score:%d", stp.ID, args.Score))
	return nil
}

// CreateLaunchpad provisions a token sale contract for a startup and records
// its id. The link is written at most once; the accompanying payment must
// cover the child's minimum balance.
func CreateLaunchpad(payload *string) *string {
	requireInitialized()
	startupID := decodeStartupIDArg(payload)
	stp := mustLoadStartup(startupID)
	env := sdk.GetEnv()
	if env.Sender.Address != stp.Owner {
		sdk.Abort(sdk.ErrNotAuthorized + ": startup owner only")
	}
	if stp.LaunchpadID != 0 {
		sdk.Abort(fmt.Sprintf("%s: startup %d", sdk.ErrLaunchpadExists, startupID))
	}

	slots := launchpad.StateSchema.NumUints + launchpad.StateSchema.NumByteSlices
	required := sdk.MinBalance() + sdk.SchemaSlotCost*slots
	pay := env.PaymentTo(env.SelfAddress())
	if pay == nil || pay.Amount < required {
		sdk.Abort(fmt.Sprintf("%s: minimum balance payment of %d required", sdk.ErrInvalidData, required))
	}

	setup := stp.Owner.String() + "|" + codec.UInt64ToString(uint64(stp.TokenAsset))
	id := sdk.CreateContract(launchpad.Template, launchpad.StateSchema, "setup", setup)
	stp.LaunchpadID = id
	saveStartup(stp)
	sdk.Log(fmt.Sprintf("stp-launchpad|id:%d|lp:%d", startupID, id))
	return codec.StrPtr(codec.UInt64ToString(id))
}

// IsStartupOwner answers the ownership question other contracts authorize
// against. A missing startup is a plain "false", not an abort.
func IsStartupOwner(payload *string) *string {
	args := decodeOwnerCheckArgs(payload)
	stp, err := loadStartup(args.StartupID)
	if err != nil {
		return codec.StrPtr(codec.BoolString(false))
	}
	return codec.StrPtr(codec.BoolString(stp.Owner == args.Candidate))
}

// GetStartup returns the record as JSON.
func GetStartup(payload *string) *string {
	startupID := decodeStartupIDArg(payload)
	stp := mustLoadStartup(startupID)
	return codec.StrPtr(codec.ToJSON(stp, "startup"))
}

// GetNextStartupID returns the id the next registration will receive.
func GetNextStartupID(payload *string) *string {
	next := codec.GetCount(startupCountKey) + 1
	return codec.StrPtr(codec.UInt64ToString(next))
}
