package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/iulianpascalau/polly-api-client/services/mockapi/common"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("storage")

// memoryStore is the in-memory implementation for polls and users storage.
// The served data lives exactly as long as the process, which is all a demo
// target and the tests need.
type memoryStore struct {
	mut          sync.RWMutex
	polls        []common.Poll
	users        map[string]common.User
	nextPollID   int
	nextOptionID int
	nextUserID   int
}

// NewMemoryStore creates a new empty in-memory store
func NewMemoryStore() *memoryStore {
	return &memoryStore{
		polls:        make([]common.Poll, 0),
		users:        make(map[string]common.User),
		nextPollID:   1,
		nextOptionID: 1,
		nextUserID:   1,
	}
}

// AddPoll appends a new poll, assigning poll and option ids
func (s *memoryStore) AddPoll(question string, ownerID int, optionTexts []string) common.Poll {
	s.mut.Lock()
	defer s.mut.Unlock()

	poll := common.Poll{
		ID:        s.nextPollID,
		Question:  question,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		OwnerID:   ownerID,
		Options:   make([]common.PollOption, 0, len(optionTexts)),
	}
	s.nextPollID++

	for _, text := range optionTexts {
		poll.Options = append(poll.Options, common.PollOption{
			ID:     s.nextOptionID,
			Text:   text,
			PollID: poll.ID,
		})
		s.nextOptionID++
	}

	s.polls = append(s.polls, poll)

	return poll
}

// ListPolls returns the polls window [skip, skip+limit) in insertion order.
// An out-of-range skip yields an empty slice, never an error.
func (s *memoryStore) ListPolls(skip int, limit int) []common.Poll {
	s.mut.RLock()
	defer s.mut.RUnlock()

	if skip < 0 {
		skip = 0
	}
	if skip >= len(s.polls) || limit < 1 {
		return make([]common.Poll, 0)
	}

	end := skip + limit
	if end > len(s.polls) {
		end = len(s.polls)
	}

	window := make([]common.Poll, end-skip)
	copy(window, s.polls[skip:end])

	return window
}

// RegisterUser adds a new user, rejecting duplicate usernames
func (s *memoryStore) RegisterUser(username string) (common.User, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	_, exists := s.users[username]
	if exists {
		return common.User{}, errUsernameTaken(username)
	}

	user := common.User{
		ID:       s.nextUserID,
		Username: username,
	}
	s.nextUserID++
	s.users[username] = user

	return user, nil
}

// SeedDemoPolls fabricates the requested number of polls, each with three options
func (s *memoryStore) SeedDemoPolls(count int) {
	for i := 1; i <= count; i++ {
		s.AddPoll(
			fmt.Sprintf("Demo question #%d?", i),
			i,
			[]string{"Yes", "No", "Maybe"},
		)
	}

	log.Debug("seeded demo polls", "count", count)
}

// Close is a no-op kept for symmetry with persistent store implementations
func (s *memoryStore) Close() error {
	return nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (s *memoryStore) IsInterfaceNil() bool {
	return s == nil
}
