package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/garden-match/internal/games/garden/levels/formats"
)

// Load reads a level pack from a YAML file, or every YAML file in a
// directory. Pack levels replace the built-in level with the same number
// and levels past the end of the campaign extend it. The result must
// stay contiguous from level 1.
func Load(path string) (*Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("levels: cannot stat %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = packFiles(path)
		if err != nil {
			return nil, err
		}
	}

	set := Default()
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", f, err)
		}
		pack, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: parsing %s: %w", f, err)
		}
		if err := set.merge(pack); err != nil {
			return nil, fmt.Errorf("levels: %s: %w", f, err)
		}
		if pack.Name != "" {
			set.Name = pack.Name
		}
	}
	return set, nil
}

// LoadOrDefault returns the built-in campaign when path is empty.
func LoadOrDefault(path string) (*Set, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(expandHome(path))
}

func (s *Set) merge(p formats.Pack) error {
	for _, lvl := range p.Levels {
		switch {
		case lvl.Level <= len(s.Levels):
			s.Levels[lvl.Level-1] = lvl
		case lvl.Level == len(s.Levels)+1:
			s.Levels = append(s.Levels, lvl)
		default:
			return fmt.Errorf("level %d leaves a gap after level %d", lvl.Level, len(s.Levels))
		}
	}
	return nil
}

// packFiles lists YAML files in dir, sorted by name.
func packFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("levels: reading dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if slices.Contains(formats.FormatExtensions(), ext) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
