package api

import (
	"github.com/iulianpascalau/polly-api-client/services/mockapi/common"
)

// Storage defines the interface for the polls and users backing store
type Storage interface {
	// AddPoll appends a new poll, assigning poll and option ids
	AddPoll(question string, ownerID int, optionTexts []string) common.Poll

	// ListPolls returns the polls window [skip, skip+limit) in insertion order
	ListPolls(skip int, limit int) []common.Poll

	// RegisterUser adds a new user, rejecting duplicate usernames
	RegisterUser(username string) (common.User, error)

	// Close releases the store resources
	Close() error

	IsInterfaceNil() bool
}
