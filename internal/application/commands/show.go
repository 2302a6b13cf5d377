package commands

import (
	"context"

	"jd/internal/application"
	"jd/internal/domain"
	"jd/internal/ports"
)

// ShowResult contains the lines of a listing
type ShowResult struct {
	Model *domain.Model
	Lines []domain.Line
}

// ShowCommand lists the index, or the part of it around one number
type ShowCommand struct {
	store  ports.IndexStore
	Root   string
	Query  string
	Strict bool
}

// NewShowCommand creates a new ShowCommand. An empty query shows everything.
func NewShowCommand(store ports.IndexStore, root, query string) *ShowCommand {
	return &ShowCommand{
		store: store,
		Root:  root,
		Query: query,
	}
}

// Validate checks if the show operation is valid
func (c *ShowCommand) Validate() error {
	return application.ValidateRequired("root", c.Root)
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m, err := c.store.Load(c.Root, ports.LoadOptions{Strict: c.Strict})
	if err != nil {
		return nil, err
	}

	lines, err := domain.Listing(m, c.Query)
	if err != nil {
		return nil, err
	}
	return &ShowResult{Model: m, Lines: lines}, nil
}

// ListCommand returns every indexed ID number in order
type ListCommand struct {
	store  ports.IndexStore
	Root   string
	Strict bool
}

// NewListCommand creates a new ListCommand
func NewListCommand(store ports.IndexStore, root string) *ListCommand {
	return &ListCommand{store: store, Root: root}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]domain.Entry, error) {
	if err := application.ValidateRequired("root", c.Root); err != nil {
		return nil, err
	}

	m, err := c.store.Load(c.Root, ports.LoadOptions{Strict: c.Strict})
	if err != nil {
		return nil, err
	}

	var ids []domain.Entry
	for _, e := range m.Entries() {
		if e.Number.Level() == domain.LevelID {
			ids = append(ids, e)
		}
	}
	return ids, nil
}
