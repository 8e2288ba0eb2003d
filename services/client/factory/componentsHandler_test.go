package factory

import (
	"fmt"
	"testing"

	"github.com/iulianpascalau/polly-api-client/services/client/aggregator"
	"github.com/iulianpascalau/polly-api-client/services/client/config"
	"github.com/iulianpascalau/polly-api-client/services/client/testsCommon"
	"github.com/stretchr/testify/assert"
)

// the shared stubs must keep satisfying the interfaces wired here
var _ Registrar = &testsCommon.RegistrarStub{}
var _ aggregator.PollsFetcher = &testsCommon.FetcherStub{}

func TestNewComponentsHandler(t *testing.T) {
	t.Parallel()

	t.Run("invalid page size should error", func(t *testing.T) {
		t.Parallel()

		handler, err := NewComponentsHandler(config.Config{
			BaseURL:                 "http://localhost:8000",
			RequestTimeoutInSeconds: 1,
			PageSize:                0,
		})

		assert.Nil(t, handler)
		assert.Error(t, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		handler, err := NewComponentsHandler(config.Config{
			BaseURL:                 "http://localhost:8000",
			RequestTimeoutInSeconds: 1,
			PageSize:                10,
			MaxRequests:             100,
		})

		assert.NotNil(t, handler)
		assert.Nil(t, err)
	})
}

func TestComponentsHandlerMethods(t *testing.T) {
	t.Parallel()

	handler, _ := NewComponentsHandler(config.Config{
		BaseURL:                 "http://localhost:8000",
		RequestTimeoutInSeconds: 1,
		PageSize:                10,
		MaxRequests:             100,
	})

	fetch := handler.GetFetcher()
	assert.Equal(t, "*fetcher.httpFetcher", fmt.Sprintf("%T", fetch))

	reg := handler.GetRegistrar()
	assert.Equal(t, "*registrar.httpRegistrar", fmt.Sprintf("%T", reg))

	agg := handler.GetAggregator()
	assert.Equal(t, "*aggregator.pagedAggregator", fmt.Sprintf("%T", agg))

	renderer := handler.GetRenderer()
	assert.Equal(t, "*display.textRenderer", fmt.Sprintf("%T", renderer))
}
