package commands

import (
	"context"

	"jd/internal/application"
	"jd/internal/domain"
	"jd/internal/ports"
)

// ResolveResult contains a resolution and the absolute path of its target
type ResolveResult struct {
	Resolution domain.Resolution
	Path       string
}

// ResolveCommand resolves a JD number to a folder, e.g. for "cd"
type ResolveCommand struct {
	store  ports.IndexStore
	Root   string
	Query  string
	Strict bool
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(store ports.IndexStore, root, query string) *ResolveCommand {
	return &ResolveCommand{
		store: store,
		Root:  root,
		Query: query,
	}
}

// Validate checks if the resolve operation is valid
func (c *ResolveCommand) Validate() error {
	if err := application.ValidateRequired("root", c.Root); err != nil {
		return err
	}
	return application.ValidateRequired("number", c.Query)
}

// Execute runs the resolve command
func (c *ResolveCommand) Execute(ctx context.Context) (*ResolveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m, err := c.store.Load(c.Root, ports.LoadOptions{Strict: c.Strict})
	if err != nil {
		return nil, err
	}

	res, err := domain.Resolve(m, c.Query)
	if err != nil {
		return nil, err
	}
	return &ResolveResult{Resolution: res, Path: m.Abs(res.Target)}, nil
}
