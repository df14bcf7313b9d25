package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockExplorerFetcherForTest creates a new mock ExplorerFetcher for testing
func NewMockExplorerFetcherForTest(t *testing.T) *MockExplorerFetcher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockExplorerFetcher(ctrl)
}

// NewMockAddressLookupForTest creates a new mock AddressLookup for testing
func NewMockAddressLookupForTest(t *testing.T) *MockAddressLookup {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockAddressLookup(ctrl)
}

// NewMockNameServiceForTest creates a new mock NameService for testing
func NewMockNameServiceForTest(t *testing.T) *MockNameService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockNameService(ctrl)
}

// NewMockStatsServiceForTest creates a new mock StatsService for testing
func NewMockStatsServiceForTest(t *testing.T) *MockStatsService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockStatsService(ctrl)
}
