package graph

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/the-maldridge/brwatch/pkg/types"
)

// New returns a graph with no packages loaded.
func New(opts ...Option) *Graph {
	g := Graph{
		l:       hclog.NewNullLogger(),
		rootDir: ".",
		atom: types.Atom{
			Pkgs: make(map[string]*types.PkgInfo),
		},
	}
	for _, o := range opts {
		o(&g)
	}
	return &g
}

// ImportAll runs show-info in the Buildroot tree and replaces the
// package set with the report's contents.  The report is printed by
// make as one JSON object covering every configured package.
func (g *Graph) ImportAll() error {
	cmd := exec.Command("make", "-s", "--no-print-directory", "show-info")
	cmd.Dir = g.rootDir
	out, err := cmd.Output()
	if err != nil {
		g.l.Error("Error running show-info", "error", err)
		return err
	}

	raw := make(map[string]map[string]interface{})
	if err := json.Unmarshal(out, &raw); err != nil {
		g.l.Error("Error decoding show-info output", "error", err)
		return err
	}

	pkgs, err := FromShowInfo(g.l, raw)
	if err != nil {
		return err
	}
	g.atom.Pkgs = pkgs
	g.l.Info("Imported packages", "count", len(pkgs))
	return nil
}

// FromShowInfo converts a decoded show-info report into the tracked
// package set.  Construction is two-pass: every record is built first
// with an empty dependency list, then the declared dependency names
// are wired by lookup into the completed set.  Wiring edges any
// earlier would need forward-reference placeholders for packages that
// haven't been seen yet.
func FromShowInfo(l hclog.Logger, raw map[string]map[string]interface{}) (map[string]*types.PkgInfo, error) {
	pkgs := make(map[string]*types.PkgInfo, len(raw))

	for name, entry := range raw {
		// Skeleton and root FS pseudo-packages are build system
		// internals, not worth monitoring.
		if strings.HasPrefix(name, "skeleton") || strings.HasPrefix(name, "host-skeleton") {
			continue
		}
		if t, ok := entry["type"].(string); ok && t == "rootfs" {
			continue
		}

		p, err := pkgFromEntry(name, entry)
		if err != nil {
			return nil, fmt.Errorf("`%s` package: %w", name, err)
		}
		pkgs[name] = p
	}

	for name, p := range pkgs {
		depNames, err := entryStringList(raw[name], "dependencies")
		if err != nil {
			return nil, fmt.Errorf("`%s` package: %w", name, err)
		}
		for _, dep := range depNames {
			if _, ok := pkgs[dep]; !ok {
				// The name points at a package that was
				// skipped or isn't configured.
				l.Debug("Dropping untracked dependency", "package", name, "dependency", dep)
				continue
			}
			p.Depends = append(p.Depends, dep)
		}
	}

	return pkgs, nil
}

// pkgFromEntry validates one show-info entry and builds its record.
// The dependency list is left empty; FromShowInfo wires it in its
// second pass.
func pkgFromEntry(name string, entry map[string]interface{}) (*types.PkgInfo, error) {
	virtual, err := entryBool(entry, "virtual")
	if err != nil {
		return nil, err
	}
	version, err := entryString(entry, "version")
	if err != nil {
		return nil, err
	}
	licenses, err := entryString(entry, "licenses")
	if err != nil {
		return nil, err
	}
	dlDir, err := entryString(entry, "dl_dir")
	if err != nil {
		return nil, err
	}
	typeStr, err := entryReqString(entry, "type")
	if err != nil {
		return nil, err
	}

	p := types.PkgInfo{
		Name:     name,
		Virtual:  virtual,
		Version:  version,
		Licenses: licenses,
		DlDir:    dlDir,
	}

	switch typeStr {
	case "target":
		p.Type = types.PkgTarget
		if p.InstallTarget, err = entryBool(entry, "install_target"); err != nil {
			return nil, err
		}
		if p.InstallStaging, err = entryBool(entry, "install_staging"); err != nil {
			return nil, err
		}
		if p.InstallImages, err = entryBool(entry, "install_images"); err != nil {
			return nil, err
		}
	case "host":
		p.Type = types.PkgHost
	default:
		return nil, fmt.Errorf("unknown `type` entry value: `%s`", typeStr)
	}

	return &p, nil
}

// entryBool reads an optional bool field, false when absent.
func entryBool(entry map[string]interface{}, key string) (bool, error) {
	v, ok := entry[key]
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("wrong `%s` entry type: %T", key, v)
	}
	return b, nil
}

// entryString reads an optional string field, empty when absent.  An
// empty string in the report means the same as absent.
func entryString(entry map[string]interface{}, key string) (string, error) {
	v, ok := entry[key]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("wrong `%s` entry type: %T", key, v)
	}
	return s, nil
}

// entryReqString is entryString for fields that must be present.
func entryReqString(entry map[string]interface{}, key string) (string, error) {
	if _, ok := entry[key]; !ok {
		return "", fmt.Errorf("missing `%s` entry", key)
	}
	return entryString(entry, key)
}

// entryStringList reads an optional list-of-strings field, empty when
// absent.
func entryStringList(entry map[string]interface{}, key string) ([]string, error) {
	v, ok := entry[key]
	if !ok {
		return nil, nil
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("wrong `%s` entry type: %T", key, v)
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("wrong `%s` entry element type: %T", key, e)
		}
		out = append(out, s)
	}
	return out, nil
}
