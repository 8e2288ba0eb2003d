package common

// PollOption defines one selectable answer belonging to exactly one poll
type PollOption struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	PollID int    `json:"poll_id"`
}

// Poll defines a question with an ordered set of selectable options, owned by a user
type Poll struct {
	ID        int          `json:"id"`
	Question  string       `json:"question"`
	CreatedAt string       `json:"created_at"`
	OwnerID   int          `json:"owner_id"`
	Options   []PollOption `json:"options"`
}

// Pagination holds the window parameters of one page request and the actual returned count
type Pagination struct {
	Skip          int `json:"skip"`
	Limit         int `json:"limit"`
	ReturnedCount int `json:"returned_count"`
}

// PollsPage is the result of one successful paginated /polls call.
// Pagination.ReturnedCount always equals len(Polls).
type PollsPage struct {
	Polls      []Poll     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// RegisteredUser is the body returned by a successful /register call
type RegisteredUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// PaginationInfo summarizes the paging work done by an aggregation run
type PaginationInfo struct {
	PageSize      int `json:"page_size"`
	TotalRequests int `json:"total_requests"`
}

// PollsAggregate is the combined result of fetching all pages
type PollsAggregate struct {
	Polls          []Poll         `json:"data"`
	TotalCount     int            `json:"total_count"`
	PaginationInfo PaginationInfo `json:"pagination_info"`
}
