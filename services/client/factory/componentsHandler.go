package factory

import (
	"time"

	"github.com/iulianpascalau/polly-api-client/services/client/aggregator"
	"github.com/iulianpascalau/polly-api-client/services/client/config"
	"github.com/iulianpascalau/polly-api-client/services/client/display"
	"github.com/iulianpascalau/polly-api-client/services/client/fetcher"
	"github.com/iulianpascalau/polly-api-client/services/client/registrar"
)

type componentsHandler struct {
	fetcher    aggregator.PollsFetcher
	registrar  Registrar
	aggregator Aggregator
	renderer   Renderer
}

// NewComponentsHandler creates a new components handler. All created
// components are fully synchronous, there is nothing to start or stop.
func NewComponentsHandler(cfg config.Config) (*componentsHandler, error) {
	timeout := time.Duration(cfg.RequestTimeoutInSeconds) * time.Second

	fetch := fetcher.NewHTTPFetcher(cfg.BaseURL, timeout)
	reg := registrar.NewHTTPRegistrar(cfg.BaseURL, timeout)

	agg, err := aggregator.NewPagedAggregator(fetch, cfg.PageSize, cfg.MaxRequests)
	if err != nil {
		return nil, err
	}

	return &componentsHandler{
		fetcher:    fetch,
		registrar:  reg,
		aggregator: agg,
		renderer:   display.NewTextRenderer(),
	}, nil
}

// GetFetcher returns the fetcher component
func (ch *componentsHandler) GetFetcher() aggregator.PollsFetcher {
	return ch.fetcher
}

// GetRegistrar returns the registrar component
func (ch *componentsHandler) GetRegistrar() Registrar {
	return ch.registrar
}

// GetAggregator returns the aggregator component
func (ch *componentsHandler) GetAggregator() Aggregator {
	return ch.aggregator
}

// GetRenderer returns the renderer component
func (ch *componentsHandler) GetRenderer() Renderer {
	return ch.renderer
}
