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

// RenameResult contains the result of a rename operation
type RenameResult struct {
	Old     domain.Entry
	New     domain.Entry
	Message string
}

// RenameCommand changes the label of an area, category or ID. The number
// never changes; paths below a renamed folder are updated in the index.
type RenameCommand struct {
	store   ports.IndexStore
	folders ports.FolderStore
	catalog ports.Catalog
	log     logger.Logger
	Root    string
	Number  string
	Label   string
	Strict  bool
}

// NewRenameCommand creates a new RenameCommand. catalog may be nil.
func NewRenameCommand(store ports.IndexStore, folders ports.FolderStore, catalog ports.Catalog, log logger.Logger, root, number, label string) *RenameCommand {
	return &RenameCommand{
		store:   store,
		folders: folders,
		catalog: catalog,
		log:     orNop(log),
		Root:    root,
		Number:  number,
		Label:   label,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCommand) Validate() error {
	if err := application.ValidateRequired("root", c.Root); err != nil {
		return err
	}
	if _, err := application.ValidateNumber("number", c.Number); err != nil {
		return err
	}
	return application.ValidateLabel("label", strings.TrimSpace(c.Label))
}

// Execute runs the rename command
func (c *RenameCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	label := strings.TrimSpace(c.Label)

	m, err := c.store.Load(c.Root, ports.LoadOptions{Strict: c.Strict})
	if err != nil {
		return nil, err
	}

	loc, err := domain.Locate(m, c.Number)
	if err != nil {
		return nil, err
	}

	old := loc.Entry()
	if old.Number.Level() == domain.LevelID {
		isFile, err := c.folders.IsFile(m.Root, old.Path)
		if err != nil {
			return nil, err
		}
		if isFile {
			label = keepExt(label, old.Label)
		}
	}

	updated := domain.Entry{
		Number: old.Number,
		Label:  label,
		Path:   path.Join(path.Dir(old.Path), domain.FormatFolderName(old.Number, label)),
	}
	if updated.Path == old.Path {
		return nil, &application.RenameError{Number: old.Number.String(), Reason: "label is unchanged"}
	}

	if err := c.folders.RenameFolder(m.Root, old.Path, updated.Path); err != nil {
		return nil, err
	}
	relocate(loc, updated)

	if err := c.store.Save(m.Root, m); err != nil {
		return nil, fmt.Errorf("renamed %s but failed to save index (run \"jd index\"): %w", old.Path, err)
	}
	syncCatalog(c.catalog, c.log, m)

	return &RenameResult{
		Old:     old,
		New:     updated,
		Message: fmt.Sprintf("Renamed %s to %s", old.Name(), updated.Name()),
	}, nil
}

// keepExt carries the extension of a file over to its new label, unless
// the new label already ends with it
func keepExt(label, oldLabel string) string {
	ext := path.Ext(oldLabel)
	if ext == "" || ext == oldLabel {
		return label
	}
	if len(label) > len(ext) && strings.EqualFold(label[len(label)-len(ext):], ext) {
		return label
	}
	return label + ext
}

// relocate stores the renamed entry and moves every descendant path under
// the new folder name
func relocate(loc domain.Location, updated domain.Entry) {
	switch {
	case loc.IDIndex >= 0:
		loc.Category.IDs[loc.IDIndex] = updated
	case loc.Category != nil:
		oldPath := loc.Category.Path
		loc.Category.Entry = updated
		rebaseIDs(loc.Category, oldPath, updated.Path)
	default:
		oldPath := loc.Area.Path
		loc.Area.Entry = updated
		for _, cat := range loc.Area.Categories {
			catOld := cat.Path
			cat.Path = rebase(cat.Path, oldPath, updated.Path)
			rebaseIDs(cat, catOld, cat.Path)
		}
	}
}

func rebaseIDs(cat *domain.Category, oldPrefix, newPrefix string) {
	for i := range cat.IDs {
		cat.IDs[i].Path = rebase(cat.IDs[i].Path, oldPrefix, newPrefix)
	}
}

func rebase(p, oldPrefix, newPrefix string) string {
	if rest, ok := strings.CutPrefix(p, oldPrefix+"/"); ok {
		return newPrefix + "/" + rest
	}
	return p
}
