package launchpad

import (
	"fmt"

	"startex/codec"
	"startex/sdk"
)

const saleKey = "sale"

func saveSale(s *SaleState) {
	sdk.StateSetObject(saleKey, codec.ToJSON(s, "sale state"))
}

func loadSale() (*SaleState, error) {
	ptr := sdk.StateGetObject(saleKey)
	if ptr == nil {
		return nil, fmt.Errorf("sale state not found")
	}
	return codec.FromJSON[SaleState](*ptr, "sale state"), nil
}

func requireSale() *SaleState {
	s, err := loadSale()
	if err != nil {
		sdk.Abort(sdk.ErrNotFound + ": sale not configured")
	}
	return s
}
