package launchpad

import (
	"fmt"

	"startex/codec"
	"startex/sdk"
)

// Setup records the sale owner and token. Only the creator of this instance
// may call it, so authority comes from the factory that spawned the contract.
func Setup(payload *string) *string {
	env := sdk.GetEnv()
	if env.Sender.Address != env.ContractCreator {
		sdk.Abort(sdk.ErrInvalidCaller + ": setup restricted to creator")
	}
	args := decodeSetupArgs(payload)
	saveSale(&SaleState{
		StartupOwner: args.Owner,
		TokenAsset:   args.Token,
	})
	sdk.Log(fmt.Sprintf("lp-setup|owner:%s|token:%s", args.Owner, args.Token))
	return nil
}

func requireOwner(s *SaleState) {
	if sdk.GetEnv().Sender.Address != s.StartupOwner {
		sdk.Abort(sdk.ErrNotAuthorized + ": owner only")
	}
}

// SetSaleParameters fixes price and window. Zero prices are rejected because
// the purchase path divides by the price.
func SetSaleParameters(payload *string) *string {
	sale := requireSale()
	requireOwner(sale)
	args := decodeSaleParamsArgs(payload)
	if args.Price == 0 {
		sdk.Abort(sdk.ErrInvalidData + ": token price must be nonzero")
	}
	if args.Start >= args.End {
		sdk.Abort(sdk.ErrInvalidData + ": sale start must precede end")
	}
	sale.TokenPrice = args.Price
	sale.SaleStart = args.Start
	sale.SaleEnd = args.End
	saveSale(sale)
	sdk.Log(fmt.Sprintf("lp-params|price:%d|start:%d|end:%d", args.Price, args.Start, args.End))
	return nil
}

// ActivateSale opens the sale. Parameters must have been set first.
func ActivateSale(payload *string) *string {
	sale := requireSale()
	requireOwner(sale)
	if sale.TokenPrice == 0 {
		sdk.Abort(sdk.ErrInvalidData + ": sale parameters not set")
	}
	sale.SaleActive = true
	saveSale(sale)
	sdk.Log("lp-activate")
	return nil
}

// OptInToAsset registers the contract as a holder of the sale token so
// funding transfers can land.
func OptInToAsset(payload *string) *string {
	sale := requireSale()
	requireOwner(sale)
	sdk.OptInAsset(sale.TokenAsset)
	sdk.Log(fmt.Sprintf("lp-optin|token:%s", sale.TokenAsset))
	return nil
}

// Fund accepts a token deposit from the owner. No running inventory is kept;
// purchases check the contract's live token balance instead.
func Fund(payload *string) *string {
	sale := requireSale()
	requireOwner(sale)
	env := sdk.GetEnv()
	xfer := env.AssetTransferTo(env.SelfAddress(), sale.TokenAsset)
	if xfer == nil {
		sdk.Abort(sdk.ErrInvalidData + ": token deposit missing")
	}
	sdk.Log(fmt.Sprintf("lp-fund|token:%s|amount:%d", sale.TokenAsset, xfer.Amount))
	return nil
}

// BuyTokens sells tokens at the fixed price. The payment must be an exact
// multiple of the price; partial tokens do not exist.
func BuyTokens(payload *string) *string {
	sale := requireSale()
	if !sale.SaleActive {
		sdk.Abort(sdk.ErrWrongPhase + ": sale not active")
	}
	env := sdk.GetEnv()
	if env.Timestamp < sale.SaleStart || env.Timestamp >= sale.SaleEnd {
		sdk.Abort(sdk.ErrWrongPhase + ": outside sale window")
	}
	pay := env.PaymentTo(env.SelfAddress())
	if pay == nil {
		sdk.Abort(sdk.ErrInvalidData + ": payment missing")
	}
	if pay.Amount%sale.TokenPrice != 0 {
		sdk.Abort(sdk.ErrInvalidData + ": payment must be an exact multiple of token price")
	}
	tokens := pay.Amount / sale.TokenPrice
	if sdk.AssetBalance(env.SelfAddress(), sale.TokenAsset) < tokens {
		sdk.Abort(sdk.ErrInsufficientFunds + ": not enough tokens for sale")
	}
	sdk.SendAsset(pay.Sender, sale.TokenAsset, tokens)
	sale.TotalRaised += pay.Amount
	saveSale(sale)
	sdk.Log(fmt.Sprintf("lp-buy|buyer:%s|tokens:%d|paid:%d", pay.Sender, tokens, pay.Amount))
	return codec.StrPtr(codec.UInt64ToString(tokens))
}

// ClaimFunds pays the accumulated proceeds to the owner once the sale window
// has closed, then zeroes the accumulator. A repeat call transfers nothing.
func ClaimFunds(payload *string) *string {
	sale := requireSale()
	requireOwner(sale)
	env := sdk.GetEnv()
	if env.Timestamp < sale.SaleEnd {
		sdk.Abort(sdk.ErrWrongPhase + ": sale not ended")
	}
	amount := sale.TotalRaised
	if amount > 0 {
		sdk.Pay(sale.StartupOwner, amount)
	}
	sale.TotalRaised = 0
	saveSale(sale)
	sdk.Log(fmt.Sprintf("lp-claim|owner:%s|amount:%d", sale.StartupOwner, amount))
	return codec.StrPtr(codec.UInt64ToString(amount))
}

// GetSaleState returns the sale record as JSON.
func GetSaleState(payload *string) *string {
	sale := requireSale()
	return codec.StrPtr(codec.ToJSON(sale, "sale state"))
}
