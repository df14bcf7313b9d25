package business

import "github.com/ethereum/go-ethereum/common"

// ResolvedName pairs the normalized name that was looked up with its address record.
type ResolvedName struct {
	Name    string         `json:"name"`
	Address common.Address `json:"address"`
}
