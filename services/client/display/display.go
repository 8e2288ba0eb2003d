package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/iulianpascalau/polly-api-client/services/client/common"
)

const (
	displayTimeLayout = "2006-01-02 15:04:05"
	missingValue      = "N/A"
	headerLine        = 60
	pollSeparatorLine = 40
)

type textRenderer struct {
}

// NewTextRenderer creates a new plain-text polls renderer
func NewTextRenderer() *textRenderer {
	return &textRenderer{}
}

// Render writes a human-readable report of the provided polls. It is a pure
// formatter: it never fails, missing fields are rendered with placeholders.
func (r *textRenderer) Render(w io.Writer, polls []common.Poll) {
	if len(polls) == 0 {
		_, _ = fmt.Fprintln(w, "No polls to display")
		return
	}

	_, _ = fmt.Fprintf(w, "Displaying %d polls:\n", len(polls))
	_, _ = fmt.Fprintln(w, strings.Repeat("=", headerLine))

	for _, poll := range polls {
		r.renderPoll(w, poll)
	}
}

func (r *textRenderer) renderPoll(w io.Writer, poll common.Poll) {
	question := poll.Question
	if len(question) == 0 {
		question = missingValue
	}

	_, _ = fmt.Fprintf(w, "Poll ID: %d\n", poll.ID)
	_, _ = fmt.Fprintf(w, "Question: %s\n", question)
	_, _ = fmt.Fprintf(w, "Owner ID: %d\n", poll.OwnerID)
	_, _ = fmt.Fprintf(w, "Created: %s\n", formatCreatedAt(poll.CreatedAt))

	if len(poll.Options) == 0 {
		_, _ = fmt.Fprintln(w, "Options: none")
	} else {
		_, _ = fmt.Fprintln(w, "Options:")
		for i, option := range poll.Options {
			text := option.Text
			if len(text) == 0 {
				text = missingValue
			}
			_, _ = fmt.Fprintf(w, "   %d. %s (ID: %d)\n", i+1, text, option.ID)
		}
	}

	_, _ = fmt.Fprintln(w, strings.Repeat("-", pollSeparatorLine))
}

// formatCreatedAt reformats an RFC3339 timestamp for display, falling back to
// the raw string when it can not be parsed
func formatCreatedAt(raw string) string {
	if len(raw) == 0 {
		return missingValue
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}

	return parsed.UTC().Format(displayTimeLayout)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (r *textRenderer) IsInterfaceNil() bool {
	return r == nil
}
