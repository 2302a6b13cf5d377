package commands

import (
	"context"

	"jd/internal/application"
	"jd/internal/domain"
	"jd/internal/ports"
)

// ValidateResult contains the findings about a stored index
type ValidateResult struct {
	Summary     application.Summary
	Diagnostics []domain.Diagnostic
}

// OK reports whether the index passed validation
func (r *ValidateResult) OK() bool {
	return len(r.Diagnostics) == 0
}

// ValidateCommand checks a stored index without touching the tree
type ValidateCommand struct {
	store ports.IndexStore
	Root  string
}

// NewValidateCommand creates a new ValidateCommand
func NewValidateCommand(store ports.IndexStore, root string) *ValidateCommand {
	return &ValidateCommand{store: store, Root: root}
}

// Execute runs the validate command. A corrupt file is an error; numbering
// problems are returned as diagnostics.
func (c *ValidateCommand) Execute(ctx context.Context) (*ValidateResult, error) {
	if err := application.ValidateRequired("root", c.Root); err != nil {
		return nil, err
	}

	m, err := c.store.Load(c.Root, ports.LoadOptions{})
	if err != nil {
		return nil, err
	}

	return &ValidateResult{
		Summary:     application.Summarize(m),
		Diagnostics: domain.Validate(m),
	}, nil
}
