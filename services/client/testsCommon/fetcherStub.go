package testsCommon

import (
	"context"

	"github.com/iulianpascalau/polly-api-client/services/client/common"
)

// FetcherStub -
type FetcherStub struct {
	FetchPollsHandler func(ctx context.Context, skip int, limit int) (*common.PollsPage, error)
}

// FetchPolls -
func (stub *FetcherStub) FetchPolls(ctx context.Context, skip int, limit int) (*common.PollsPage, error) {
	if stub.FetchPollsHandler != nil {
		return stub.FetchPollsHandler(ctx, skip, limit)
	}

	return &common.PollsPage{}, nil
}

// IsInterfaceNil -
func (stub *FetcherStub) IsInterfaceNil() bool {
	return stub == nil
}
