package testsCommon

import (
	"github.com/iulianpascalau/polly-api-client/services/mockapi/common"
)

// StoreStub -
type StoreStub struct {
	AddPollHandler      func(question string, ownerID int, optionTexts []string) common.Poll
	ListPollsHandler    func(skip int, limit int) []common.Poll
	RegisterUserHandler func(username string) (common.User, error)
	CloseHandler        func() error
}

// AddPoll -
func (stub *StoreStub) AddPoll(question string, ownerID int, optionTexts []string) common.Poll {
	if stub.AddPollHandler != nil {
		return stub.AddPollHandler(question, ownerID, optionTexts)
	}

	return common.Poll{}
}

// ListPolls -
func (stub *StoreStub) ListPolls(skip int, limit int) []common.Poll {
	if stub.ListPollsHandler != nil {
		return stub.ListPollsHandler(skip, limit)
	}

	return make([]common.Poll, 0)
}

// RegisterUser -
func (stub *StoreStub) RegisterUser(username string) (common.User, error) {
	if stub.RegisterUserHandler != nil {
		return stub.RegisterUserHandler(username)
	}

	return common.User{}, nil
}

// Close -
func (stub *StoreStub) Close() error {
	if stub.CloseHandler != nil {
		return stub.CloseHandler()
	}

	return nil
}

// IsInterfaceNil -
func (stub *StoreStub) IsInterfaceNil() bool {
	return stub == nil
}
