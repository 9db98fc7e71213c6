package sdk

import "strconv"

// Asset identifies a fungible token by its ledger-assigned id. Zero means
// "no asset" and is never a valid token reference.
type Asset uint64

// String returns the decimal id for logs or host calls.
func (a Asset) String() string {
	return strconv.FormatUint(uint64(a), 10)
}
