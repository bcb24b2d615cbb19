package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"listcmp/internal/model"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// StdinPath is the path argument that reads a plain-text list from stdin.
const StdinPath = "-"

// ListsFile is the structured (YAML/JSON) list file layout.
type ListsFile struct {
	Lists []ListEntry `yaml:"lists" json:"lists"`
}

// ListEntry is one list in a structured file. Questions may be written as a
// block string or as a sequence of titles.
type ListEntry struct {
	Name      string    `yaml:"name" json:"name"`
	Questions Questions `yaml:"questions" json:"questions"`
}

// Questions holds the raw newline separated text of a list.
type Questions string

func (q *Questions) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*q = Questions(node.Value)
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := node.Decode(&lines); err != nil {
			return err
		}
		*q = Questions(strings.Join(lines, "\n"))
		return nil
	default:
		return fmt.Errorf("line %d: questions must be a string or a list of strings", node.Line)
	}
}

func (q *Questions) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*q = Questions(s)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(b, &lines); err != nil {
		return fmt.Errorf("questions must be a string or a list of strings")
	}
	*q = Questions(strings.Join(lines, "\n"))
	return nil
}

// ParseLists decodes list data according to the file extension of name.
// Unknown extensions are read as a single plain-text list named after the file.
func ParseLists(name string, b []byte) ([]model.List, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var f ListsFile
		if err := yaml.Unmarshal(b, &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return f.toLists(), nil
	case ".json":
		var f ListsFile
		if err := json.Unmarshal(b, &f); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return f.toLists(), nil
	default:
		return []model.List{{
			ID:        NewListID(),
			Name:      listNameFromPath(name),
			Questions: string(b),
		}}, nil
	}
}

func (f ListsFile) toLists() []model.List {
	out := make([]model.List, 0, len(f.Lists))
	for _, e := range f.Lists {
		out = append(out, model.List{
			ID:        NewListID(),
			Name:      e.Name,
			Questions: string(e.Questions),
		})
	}
	return out
}

func listNameFromPath(p string) string {
	if p == StdinPath {
		return "stdin"
	}
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadFile reads the lists stored at path. StdinPath reads stdin.
func LoadFile(path string, stdin io.Reader) ([]model.List, error) {
	var (
		b   []byte
		err error
	)
	if path == StdinPath {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(filepath.Clean(path))
	}
	if err != nil {
		return nil, fmt.Errorf("read lists %s: %w", path, err)
	}
	return ParseLists(path, b)
}

// LoadFiles reads every path concurrently and returns the lists in argument order.
func LoadFiles(ctx context.Context, paths []string, stdin io.Reader) ([]model.List, error) {
	stdinCount := 0
	for _, p := range paths {
		if p == StdinPath {
			stdinCount++
		}
	}
	if stdinCount > 1 {
		return nil, fmt.Errorf("stdin (%s) can only be read once", StdinPath)
	}

	perPath := make([][]model.List, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lists, err := LoadFile(p, stdin)
			if err != nil {
				return err
			}
			perPath[i] = lists
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []model.List
	for _, lists := range perPath {
		out = append(out, lists...)
	}
	return out, nil
}
