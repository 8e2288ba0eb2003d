package fetcher

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/iulianpascalau/polly-api-client/services/client/common"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const pollsPath = "/polls"

var log = logger.GetOrCreate("fetcher")

type httpFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher creates a new HTTP-based polls fetcher with a default timeout
func NewHTTPFetcher(baseURL string, timeout time.Duration) *httpFetcher {
	return &httpFetcher{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchPolls performs one paginated GET on the /polls endpoint. A successful
// call returns the decoded polls along with the pagination window actually
// honored by the server (ReturnedCount equals the number of decoded polls).
func (f *httpFetcher) FetchPolls(ctx context.Context, skip int, limit int) (*common.PollsPage, error) {
	endpoint := f.baseURL + pollsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Warn("polls endpoint unreachable", "url", endpoint, "error", err)
		return nil, &common.ConnectionError{URL: f.baseURL, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &common.ConnectionError{URL: f.baseURL, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := common.NewAPIError(resp.StatusCode, body)
		log.Warn("polls request rejected", "status code", resp.StatusCode, "detail", apiErr.Detail)
		return nil, apiErr
	}

	var polls []common.Poll
	err = json.Unmarshal(body, &polls)
	if err != nil {
		return nil, &common.DecodeError{Err: err}
	}

	log.Debug("successfully fetched polls", "returned", len(polls), "skip", skip, "limit", limit)

	return &common.PollsPage{
		Polls: polls,
		Pagination: common.Pagination{
			Skip:          skip,
			Limit:         limit,
			ReturnedCount: len(polls),
		},
	}, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (f *httpFetcher) IsInterfaceNil() bool {
	return f == nil
}
