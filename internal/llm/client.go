package llm

import (
	"context"
)

// Client is the upstream menu-plan producer. It is constructed
// explicitly in main and injected into the menu service; nothing
// in this package holds package-level state.
type Client interface {
	GeneratePlan(ctx context.Context, prompt string) (string, error)
}
