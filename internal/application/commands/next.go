package commands

import (
	"context"

	"jd/internal/application"
	"jd/internal/domain"
	"jd/internal/ports"
)

// NextCommand reports the number "add" would allocate, without creating it
type NextCommand struct {
	store  ports.IndexStore
	Root   string
	Parent string
	Strict bool
}

// NewNextCommand creates a new NextCommand
func NewNextCommand(store ports.IndexStore, root, parent string) *NextCommand {
	return &NextCommand{store: store, Root: root, Parent: parent}
}

// Validate checks if the next operation is valid
func (c *NextCommand) Validate() error {
	if err := application.ValidateRequired("root", c.Root); err != nil {
		return err
	}
	_, err := application.ValidateNumber("parent", c.Parent, domain.LevelCategory, domain.LevelArea)
	return err
}

// Execute returns the lowest free ID of a category, or the lowest free
// category of an area
func (c *NextCommand) Execute(ctx context.Context) (domain.Number, error) {
	if err := c.Validate(); err != nil {
		return domain.Number{}, err
	}
	parent, _ := domain.ParseNumber(c.Parent)

	m, err := c.store.Load(c.Root, ports.LoadOptions{Strict: c.Strict})
	if err != nil {
		return domain.Number{}, err
	}

	if parent.Level() == domain.LevelArea {
		return domain.NextFreeCategory(m, parent)
	}
	return domain.NextFreeID(m, parent)
}
