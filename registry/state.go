package registry

import (
	"fmt"

	"startex/codec"
	"startex/sdk"
)

func saveStartup(s *Startup) {
	sdk.StateSetObject(startupKey(s.ID), codec.ToJSON(s, "startup"))
}

func loadStartup(id uint64) (*Startup, error) {
	ptr := sdk.StateGetObject(startupKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("startup %d not found", id)
	}
	return codec.FromJSON[Startup](*ptr, "startup"), nil
}

func mustLoadStartup(id uint64) *Startup {
	s, err := loadStartup(id)
	if err != nil {
		sdk.Abort(fmt.Sprintf("%s: startup %d", sdk.ErrNotFound, id))
	}
	return s
}
