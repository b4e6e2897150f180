package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt (typed "y" or "yes").
	Accepted bool
	// Cancelled is true if reading input failed.
	Cancelled bool
}

// ConfirmReset asks before every stored activity and the profile are erased.
// Callers skip the prompt in non-interactive sessions and require --force
// instead.
//
// The prompt defaults to "No" when the user presses Enter without input.
// Valid inputs: "y", "Y", "yes", "Yes", "YES" for acceptance; anything else declines.
func ConfirmReset(writer io.Writer, reader io.Reader, activityCount int) PromptResult {
	fmt.Fprintf(writer, "This will permanently delete %d activities and your profile.\n", activityCount)
	fmt.Fprint(writer, "? Continue? [y/N] ")

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		// EOF without error - treat as decline (user pressed Ctrl+D)
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
