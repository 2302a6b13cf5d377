package commands

import (
	"context"
	"fmt"
	"path"
	"strings"

	"jd/internal/application"
	"jd/internal/domain"
	"jd/internal/logger"
	"jd/internal/ports"
)

// AddResult contains the result of allocating a new number
type AddResult struct {
	Entry   domain.Entry
	Path    string // absolute path of the created folder
	Message string
}

// AddCommand allocates the next free number under a parent and creates its
// folder. A category parent gets a new ID; an area parent gets a new category.
type AddCommand struct {
	store   ports.IndexStore
	folders ports.FolderStore
	catalog ports.Catalog
	log     logger.Logger
	Root    string
	Parent  string
	Label   string
	Strict  bool // refuse to allocate when the index has diagnostics
}

// NewAddCommand creates a new AddCommand. catalog may be nil.
func NewAddCommand(store ports.IndexStore, folders ports.FolderStore, catalog ports.Catalog, log logger.Logger, root, parent, label string) *AddCommand {
	return &AddCommand{
		store:   store,
		folders: folders,
		catalog: catalog,
		log:     orNop(log),
		Root:    root,
		Parent:  parent,
		Label:   label,
	}
}

// Validate checks if the add operation is valid
func (c *AddCommand) Validate() error {
	if err := application.ValidateRequired("root", c.Root); err != nil {
		return err
	}
	if _, err := application.ValidateNumber("parent", c.Parent, domain.LevelCategory, domain.LevelArea); err != nil {
		return err
	}
	return application.ValidateLabel("label", strings.TrimSpace(c.Label))
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context) (*AddResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	parent, _ := domain.ParseNumber(c.Parent)
	label := strings.TrimSpace(c.Label)

	m, err := c.store.Load(c.Root, ports.LoadOptions{Strict: c.Strict})
	if err != nil {
		return nil, err
	}

	var e domain.Entry
	if parent.Level() == domain.LevelArea {
		e, err = c.addCategory(m, parent, label)
	} else {
		e, err = c.addID(m, parent, label)
	}
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(m.Root, m); err != nil {
		return nil, fmt.Errorf("created %s but failed to save index (run \"jd index\"): %w", e.Path, err)
	}
	syncCatalog(c.catalog, c.log, m)

	return &AddResult{
		Entry:   e,
		Path:    m.Abs(e),
		Message: fmt.Sprintf("Created %s", e.Name()),
	}, nil
}

func (c *AddCommand) addID(m *domain.Model, category domain.Number, label string) (domain.Entry, error) {
	n, err := domain.NextFreeID(m, category)
	if err != nil {
		return domain.Entry{}, err
	}

	cat := m.Category(category)
	e := domain.Entry{
		Number: n,
		Label:  label,
		Path:   path.Join(cat.Path, domain.FormatFolderName(n, label)),
	}
	if err := c.folders.CreateFolder(m.Root, e.Path); err != nil {
		return domain.Entry{}, err
	}

	cat.AddID(e)
	c.log.Debugf("allocated %s in %s", n, cat.Path)
	return e, nil
}

func (c *AddCommand) addCategory(m *domain.Model, area domain.Number, label string) (domain.Entry, error) {
	n, err := domain.NextFreeCategory(m, area)
	if err != nil {
		return domain.Entry{}, err
	}

	a := m.Area(area)
	e := domain.Entry{
		Number: n,
		Label:  label,
		Path:   path.Join(a.Path, domain.FormatFolderName(n, label)),
	}
	if err := c.folders.CreateFolder(m.Root, e.Path); err != nil {
		return domain.Entry{}, err
	}

	a.AddCategory(e)
	c.log.Debugf("allocated %s in %s", n, a.Path)
	return e, nil
}
