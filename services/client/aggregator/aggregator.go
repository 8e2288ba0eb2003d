package aggregator

import (
	"context"
	"errors"
	"fmt"

	"github.com/iulianpascalau/polly-api-client/services/client/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("aggregator")

// pagedAggregator drains the /polls endpoint page by page, accumulating the
// results into one combined list
type pagedAggregator struct {
	fetcher     PollsFetcher
	pageSize    int
	maxRequests uint32
}

// NewPagedAggregator creates a new paged aggregator instance. maxRequests is a
// safety bound on the number of page requests issued by one FetchAll call, so
// a misbehaving server that always fills pages can not force an endless loop.
// A value of 0 disables the bound.
func NewPagedAggregator(fetcher PollsFetcher, pageSize int, maxRequests uint32) (*pagedAggregator, error) {
	if check.IfNil(fetcher) {
		return nil, errors.New("nil polls fetcher")
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("invalid page size: %d", pageSize)
	}

	return &pagedAggregator{
		fetcher:     fetcher,
		pageSize:    pageSize,
		maxRequests: maxRequests,
	}, nil
}

// FetchAll fetches all polls using repeated paginated requests. maxPolls caps
// the total number of polls fetched, zero or negative means no cap. The skip
// offset always advances by the number of polls actually returned, never by
// the requested limit, so the server stays in control of how many records
// really exist. On any page failure the error is returned unchanged and the
// polls accumulated so far are discarded.
func (a *pagedAggregator) FetchAll(ctx context.Context, maxPolls int) (*common.PollsAggregate, error) {
	allPolls := make([]common.Poll, 0)
	skip := 0
	totalFetched := 0
	requests := uint32(0)

	log.Debug("starting to fetch all polls", "page size", a.pageSize, "max polls", maxPolls)

	for {
		currentLimit := a.pageSize
		if maxPolls > 0 {
			remaining := maxPolls - totalFetched
			if remaining <= 0 {
				break
			}
			if remaining < currentLimit {
				currentLimit = remaining
			}
		}

		if a.maxRequests > 0 && requests >= a.maxRequests {
			log.Warn("aggregation limit exceeded", "requests", requests, "total fetched", totalFetched)
			return nil, &LimitExceededError{Requests: requests}
		}
		requests++

		page, err := a.fetcher.FetchPolls(ctx, skip, currentLimit)
		if err != nil {
			return nil, err
		}

		if len(page.Polls) == 0 {
			break
		}

		allPolls = append(allPolls, page.Polls...)
		totalFetched += len(page.Polls)
		skip += len(page.Polls)

		log.Debug("fetched one page", "returned", len(page.Polls), "total so far", totalFetched)

		// a short page means the end of data was reached
		if len(page.Polls) < currentLimit {
			break
		}
	}

	totalRequests := skip / a.pageSize
	if skip%a.pageSize > 0 {
		totalRequests++
	}

	log.Debug("completed fetching all polls", "total", totalFetched, "requests", requests)

	return &common.PollsAggregate{
		Polls:      allPolls,
		TotalCount: totalFetched,
		PaginationInfo: common.PaginationInfo{
			PageSize:      a.pageSize,
			TotalRequests: totalRequests,
		},
	}, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (a *pagedAggregator) IsInterfaceNil() bool {
	return a == nil
}
