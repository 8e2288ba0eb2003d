package factory

import (
	"github.com/iulianpascalau/polly-api-client/services/mockapi/api"
	"github.com/iulianpascalau/polly-api-client/services/mockapi/config"
	"github.com/iulianpascalau/polly-api-client/services/mockapi/storage"
)

type componentsHandler struct {
	store  api.Storage
	server Server
}

// NewComponentsHandler creates a new components handler
func NewComponentsHandler(cfg config.Config) (*componentsHandler, error) {
	store := storage.NewMemoryStore()
	store.SeedDemoPolls(cfg.SeedPolls)

	serverArgs := api.ArgsWebServer{
		ListenAddress: cfg.ListenAddress,
		Storage:       store,
	}

	server, err := api.NewServer(serverArgs)
	if err != nil {
		return nil, err
	}

	return &componentsHandler{
		store:  store,
		server: server,
	}, nil
}

// GetStore returns the storage component
func (ch *componentsHandler) GetStore() api.Storage {
	return ch.store
}

// GetServer returns the server component
func (ch *componentsHandler) GetServer() Server {
	return ch.server
}

// Start starts the inner components
func (ch *componentsHandler) Start() {
	ch.server.Start()
}

// Close closes the inner components
func (ch *componentsHandler) Close() {
	_ = ch.server.Close()
	_ = ch.store.Close()
}
