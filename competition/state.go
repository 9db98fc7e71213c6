package competition

import (
	"fmt"

	"startex/codec"
	"startex/sdk"
)

func saveCompetition(c *Competition) {
	sdk.StateSetObject(competitionKey(c.ID), codec.ToJSON(c, "competition"))
}

func loadCompetition(id uint64) (*Competition, error) {
	ptr := sdk.StateGetObject(competitionKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("competition %d not found", id)
	}
	return codec.FromJSON[Competition](*ptr, "competition"), nil
}

func mustLoadCompetition(id uint64) *Competition {
	c, err := loadCompetition(id)
	if err != nil {
		sdk.Abort(fmt.Sprintf("%s: competition %d", sdk.ErrNotFound, id))
	}
	return c
}

func saveParticipant(competitionID, startupID uint64, p *Participant) {
	sdk.StateSetObject(participantKey(competitionID, startupID), codec.ToJSON(p, "participant"))
}

func loadParticipant(competitionID, startupID uint64) (*Participant, error) {
	ptr := sdk.StateGetObject(participantKey(competitionID, startupID))
	if ptr == nil {
		return nil, fmt.Errorf("participant %d/%d not found", competitionID, startupID)
	}
	return codec.FromJSON[Participant](*ptr, "participant"), nil
}

func mustLoadParticipant(competitionID, startupID uint64) *Participant {
	p, err := loadParticipant(competitionID, startupID)
	if err != nil {
		sdk.Abort(fmt.Sprintf("%s: participant %d in competition %d", sdk.ErrNotFound, startupID, competitionID))
	}
	return p
}

func saveResults(competitionID uint64, r *Results) {
	sdk.StateSetObject(resultsKey(competitionID), codec.ToJSON(r, "results"))
}
