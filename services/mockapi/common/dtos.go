package common

// PollOption defines one selectable answer of a stored poll
type PollOption struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	PollID int    `json:"poll_id"`
}

// Poll defines a stored poll as served on the /polls endpoint
type Poll struct {
	ID        int          `json:"id"`
	Question  string       `json:"question"`
	CreatedAt string       `json:"created_at"`
	OwnerID   int          `json:"owner_id"`
	Options   []PollOption `json:"options"`
}

// User defines a registered user as returned by the /register endpoint
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
