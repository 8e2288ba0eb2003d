package aggregator

import (
	"context"

	"github.com/iulianpascalau/polly-api-client/services/client/common"
)

// PollsFetcher defines the interface for fetching one page of polls
type PollsFetcher interface {
	// FetchPolls performs one paginated GET on the /polls endpoint
	FetchPolls(ctx context.Context, skip int, limit int) (*common.PollsPage, error)

	IsInterfaceNil() bool
}
