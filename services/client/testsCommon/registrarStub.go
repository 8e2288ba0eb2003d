package testsCommon

import (
	"context"

	"github.com/iulianpascalau/polly-api-client/services/client/common"
)

// RegistrarStub -
type RegistrarStub struct {
	RegisterHandler func(ctx context.Context, username string, password string) (*common.RegisteredUser, error)
}

// Register -
func (stub *RegistrarStub) Register(ctx context.Context, username string, password string) (*common.RegisteredUser, error) {
	if stub.RegisterHandler != nil {
		return stub.RegisterHandler(ctx, username, password)
	}

	return &common.RegisteredUser{}, nil
}

// IsInterfaceNil -
func (stub *RegistrarStub) IsInterfaceNil() bool {
	return stub == nil
}
