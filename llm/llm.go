// Package llm provides the text-generation client used for analysis reports.
package llm

import "context"

// Client generates text from a prompt. Failures are returned as-is; callers
// decide how to surface them. There is no retry policy.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
