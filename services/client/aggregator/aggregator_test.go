package aggregator

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/iulianpascalau/polly-api-client/services/client/common"
	"github.com/iulianpascalau/polly-api-client/services/client/testsCommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePolls(count int) []common.Poll {
	polls := make([]common.Poll, 0, count)
	for i := 1; i <= count; i++ {
		polls = append(polls, common.Poll{
			ID:        i,
			Question:  fmt.Sprintf("question #%d?", i),
			CreatedAt: "2024-01-15T10:30:00Z",
			OwnerID:   100 + i,
		})
	}

	return polls
}

// pagedStub simulates a well-behaved data source with a fixed record set
func pagedStub(dataSet []common.Poll) *testsCommon.FetcherStub {
	return &testsCommon.FetcherStub{
		FetchPollsHandler: func(_ context.Context, skip int, limit int) (*common.PollsPage, error) {
			window := make([]common.Poll, 0)
			if skip < len(dataSet) {
				end := skip + limit
				if end > len(dataSet) {
					end = len(dataSet)
				}
				window = append(window, dataSet[skip:end]...)
			}

			return &common.PollsPage{
				Polls: window,
				Pagination: common.Pagination{
					Skip:          skip,
					Limit:         limit,
					ReturnedCount: len(window),
				},
			}, nil
		},
	}
}

func TestNewPagedAggregator(t *testing.T) {
	t.Parallel()

	t.Run("nil fetcher should error", func(t *testing.T) {
		t.Parallel()

		agg, err := NewPagedAggregator(nil, 10, 0)

		assert.Nil(t, agg)
		assert.True(t, agg.IsInterfaceNil())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "nil polls fetcher")
	})
	t.Run("invalid page size should error", func(t *testing.T) {
		t.Parallel()

		agg, err := NewPagedAggregator(&testsCommon.FetcherStub{}, 0, 0)

		assert.Nil(t, agg)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid page size")
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		agg, err := NewPagedAggregator(&testsCommon.FetcherStub{}, 10, 0)

		assert.NotNil(t, agg)
		assert.False(t, agg.IsInterfaceNil())
		assert.Nil(t, err)
	})
}

func TestPagedAggregator_FetchAll(t *testing.T) {
	t.Parallel()

	t.Run("drains the whole data set in order", func(t *testing.T) {
		t.Parallel()

		dataSet := makePolls(25)
		agg, _ := NewPagedAggregator(pagedStub(dataSet), 10, 0)

		result, err := agg.FetchAll(context.Background(), 0)
		require.NoError(t, err)

		require.Equal(t, 25, result.TotalCount)
		require.Equal(t, dataSet, result.Polls)
		require.Equal(t, 10, result.PaginationInfo.PageSize)
		require.Equal(t, 3, result.PaginationInfo.TotalRequests)
	})
	t.Run("data set size is an exact multiple of the page size", func(t *testing.T) {
		t.Parallel()

		dataSet := makePolls(20)
		agg, _ := NewPagedAggregator(pagedStub(dataSet), 10, 0)

		result, err := agg.FetchAll(context.Background(), 0)
		require.NoError(t, err)

		require.Equal(t, 20, result.TotalCount)
		require.Equal(t, dataSet, result.Polls)
		require.Equal(t, 2, result.PaginationInfo.TotalRequests)
	})
	t.Run("page size of one", func(t *testing.T) {
		t.Parallel()

		dataSet := makePolls(4)
		agg, _ := NewPagedAggregator(pagedStub(dataSet), 1, 0)

		result, err := agg.FetchAll(context.Background(), 0)
		require.NoError(t, err)

		require.Equal(t, 4, result.TotalCount)
		require.Equal(t, dataSet, result.Polls)
	})
	t.Run("empty data source", func(t *testing.T) {
		t.Parallel()

		agg, _ := NewPagedAggregator(pagedStub(nil), 10, 0)

		result, err := agg.FetchAll(context.Background(), 0)
		require.NoError(t, err)

		require.Equal(t, 0, result.TotalCount)
		require.Empty(t, result.Polls)
		require.Equal(t, 0, result.PaginationInfo.TotalRequests)
	})
	t.Run("maxPolls below the data set size caps the result exactly", func(t *testing.T) {
		t.Parallel()

		dataSet := makePolls(25)

		for _, pageSize := range []int{1, 3, 7, 10, 100} {
			agg, _ := NewPagedAggregator(pagedStub(dataSet), pageSize, 0)

			result, err := agg.FetchAll(context.Background(), 7)
			require.NoError(t, err)

			require.Equal(t, 7, result.TotalCount, "page size %d", pageSize)
			require.Equal(t, dataSet[:7], result.Polls, "page size %d", pageSize)
		}
	})
	t.Run("maxPolls above the data set size returns everything", func(t *testing.T) {
		t.Parallel()

		dataSet := makePolls(5)
		agg, _ := NewPagedAggregator(pagedStub(dataSet), 10, 0)

		result, err := agg.FetchAll(context.Background(), 100)
		require.NoError(t, err)

		require.Equal(t, 5, result.TotalCount)
		require.Equal(t, dataSet, result.Polls)
	})
	t.Run("page failure aborts and propagates the exact error", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		calls := 0
		stub := &testsCommon.FetcherStub{
			FetchPollsHandler: func(_ context.Context, skip int, limit int) (*common.PollsPage, error) {
				calls++
				if calls > 1 {
					return nil, expectedErr
				}

				return &common.PollsPage{
					Polls:      makePolls(limit),
					Pagination: common.Pagination{Skip: skip, Limit: limit, ReturnedCount: limit},
				}, nil
			},
		}

		agg, _ := NewPagedAggregator(stub, 10, 0)

		result, err := agg.FetchAll(context.Background(), 0)
		require.Nil(t, result) // accumulated first page is discarded
		require.Equal(t, expectedErr, err)
	})
	t.Run("pathological always-full source trips the request bound", func(t *testing.T) {
		t.Parallel()

		stub := &testsCommon.FetcherStub{
			FetchPollsHandler: func(_ context.Context, skip int, limit int) (*common.PollsPage, error) {
				return &common.PollsPage{
					Polls:      makePolls(limit),
					Pagination: common.Pagination{Skip: skip, Limit: limit, ReturnedCount: limit},
				}, nil
			},
		}

		agg, _ := NewPagedAggregator(stub, 10, 5)

		result, err := agg.FetchAll(context.Background(), 0)
		require.Nil(t, result)

		var limitErr *LimitExceededError
		require.True(t, errors.As(err, &limitErr))
		require.Equal(t, uint32(5), limitErr.Requests)
	})
}
