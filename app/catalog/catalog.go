// Package catalog holds the SharePoint admin pages offered by the palette and
// turns them into palette records for a given site and environment.
package catalog

import (
	"embed"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/Guerrilla-Interactive/sp-command-palette/app/launch"
	"github.com/Guerrilla-Interactive/sp-command-palette/app/palette"
)

// Every *.json file in this directory is a list of entries.
//
//go:embed *.json
var catalogFiles embed.FS

// Target names which host a path is resolved against.
type Target string

const (
	TargetPage         Target = "page"
	TargetCentralAdmin Target = "central-admin"
	TargetSPOAdmin     Target = "spo-admin"
	TargetSPOMySite    Target = "spo-mysite"
)

// Entry is one command as written in a catalog file.
type Entry struct {
	Label   string   `json:"label"`
	Target  Target   `json:"target"`
	Path    string   `json:"path"`
	Exclude []string `json:"exclude,omitempty"`
	Source  string   `json:"-"`
}

// URL resolves the entry against site.
func (e Entry) URL(site Site) string {
	switch e.Target {
	case TargetCentralAdmin:
		return site.CentralAdminURL(e.Path)
	case TargetSPOAdmin:
		return site.SPOAdminURL(e.Path)
	case TargetSPOMySite:
		return site.SPOMySiteURL(e.Path)
	default:
		return site.PageURL(e.Path)
	}
}

// Applicability converts the exclude list into the environments the entry applies
// to. Nil means everywhere.
func (e Entry) Applicability() []palette.Environment {
	if len(e.Exclude) == 0 {
		return nil
	}
	excluded := make(map[palette.Environment]bool, len(e.Exclude))
	for _, name := range e.Exclude {
		if env, ok := ParseVersion(name); ok {
			excluded[env] = true
		}
	}
	return lo.Filter(allEnvironments, func(env palette.Environment, _ int) bool {
		return !excluded[env]
	})
}

// AppliesTo reports whether env is not excluded.
func (e Entry) AppliesTo(env palette.Environment) bool {
	for _, name := range e.Exclude {
		if excluded, ok := ParseVersion(name); ok && excluded == env {
			return false
		}
	}
	return true
}

var allEnvironments = []palette.Environment{palette.EnvironmentOnPremise, palette.EnvironmentOnline}

// entries holds every embedded entry in file order.
var entries []Entry

func init() {
	loaded, err := loadEntries(catalogFiles)
	if err != nil {
		panic(errors.Wrap(err, "failed to load command catalog"))
	}
	entries = loaded
}

func loadEntries(fsys fs.FS) ([]Entry, error) {
	paths, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	var all []Entry
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read file %s", path)
		}
		var fileEntries []Entry
		if err := json.Unmarshal(data, &fileEntries); err != nil {
			return nil, errors.Wrapf(err, "could not parse %s", path)
		}
		source := filepath.Base(path)
		for i := range fileEntries {
			if err := validate(fileEntries[i]); err != nil {
				return nil, errors.Wrapf(err, "%s entry %d", path, i)
			}
			fileEntries[i].Source = source
		}
		all = append(all, fileEntries...)
	}
	return all, nil
}

func validate(e Entry) error {
	if e.Label == "" {
		return errors.New("missing label")
	}
	switch e.Target {
	case TargetPage, TargetCentralAdmin, TargetSPOAdmin, TargetSPOMySite:
	default:
		return errors.Newf("unknown target %q", e.Target)
	}
	for _, name := range e.Exclude {
		if _, ok := ParseVersion(name); !ok {
			return errors.Newf("unknown version type %q", name)
		}
	}
	return nil
}

// Entries returns a copy of every catalog entry in file order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Assemble builds the palette records that apply to env. Each action resolves its
// URL against site and hands it to opener. Filtering happens here, once; the
// controller sorts.
func Assemble(env palette.Environment, site Site, opener launch.Opener) []palette.Record {
	return AssembleFrom(entries, env, site, opener)
}

// AssembleFrom is Assemble over an explicit entry list.
func AssembleFrom(list []Entry, env palette.Environment, site Site, opener launch.Opener) []palette.Record {
	applicable := lo.Filter(list, func(e Entry, _ int) bool {
		return e.AppliesTo(env)
	})
	return lo.Map(applicable, func(e Entry, _ int) palette.Record {
		url := e.URL(site)
		return palette.Record{
			Label:         e.Label,
			Detail:        url,
			Applicability: e.Applicability(),
			// Failures are the opener's to report; see launch.Recorder.
			Action: func() { _ = opener.Open(url) },
		}
	})
}
