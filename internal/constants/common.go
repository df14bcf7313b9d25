package constants

import "time"

// Environments
const (
	ProdEnvironment = "prod"
	TestEnvironment = "test"
)

// Log levels
const (
	ErrorLevel = "error"
)

// Name resolution
const (
	DefaultNameSuffix       = ".base.eth"
	BasenameSuffix          = ".base.eth"
	BasenameRegistryAddress = "0xb94704422c2a1e396835a571837aa5ae53285a95"
	ENSRegistryAddress      = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"
	DefaultBaseRPCURL       = "https://mainnet.base.org"
	DefaultEthRPCURL        = "https://ethereum-rpc.publicnode.com"
)

// Explorer fetching
const (
	DefaultFetchMaxAttempts  = 8
	DefaultFetchInitialDelay = time.Second
	DefaultFetchTimeout      = 30 * time.Second
	DefaultSourcePause       = 200 * time.Millisecond
	DefaultStatsTimeout      = 5 * time.Minute
)

// User-facing messages
const (
	RawAddressMessage   = "Please enter a valid Basename (e.g. jesse.base.eth), not a raw address."
	FetchFailedMessage  = "Failed to fetch data. Ensure the Basename is valid and try again."
	ServiceConfigFailed = "Stats service is not configured. Please try again later."
)
