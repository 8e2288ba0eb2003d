package factory

import (
	"context"
	"io"

	"github.com/iulianpascalau/polly-api-client/services/client/common"
)

// Aggregator defines the interface for fetching all polls across pages
type Aggregator interface {
	// FetchAll fetches all polls using repeated paginated requests
	FetchAll(ctx context.Context, maxPolls int) (*common.PollsAggregate, error)

	IsInterfaceNil() bool
}

// Registrar defines the interface for registering new users on the remote service
type Registrar interface {
	// Register creates a new user on the remote service
	Register(ctx context.Context, username string, password string) (*common.RegisteredUser, error)

	IsInterfaceNil() bool
}

// Renderer defines the interface for writing human-readable poll reports
type Renderer interface {
	// Render writes a human-readable report of the provided polls
	Render(w io.Writer, polls []common.Poll)

	IsInterfaceNil() bool
}
