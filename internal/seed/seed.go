package seed

import (
	"embed"
	"path"
	"strings"

	"listcmp/internal/model"
)

//go:embed data/*.txt
var dataFS embed.FS

// Dataset describes one built-in list.
type Dataset struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

var datasets = []Dataset{
	{Name: "neetcode150", Title: "NeetCode 150"},
	{Name: "grind169", Title: "Grind 169"},
}

// Datasets returns the built-in lists in their default display order.
func Datasets() []Dataset {
	return append([]Dataset(nil), datasets...)
}

// Names returns the dataset names in display order.
func Names() []string {
	names := make([]string, 0, len(datasets))
	for _, d := range datasets {
		names = append(names, d.Name)
	}
	return names
}

func lookup(name string) (Dataset, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range datasets {
		if d.Name == name {
			return d, true
		}
	}
	return Dataset{}, false
}

// Get returns the raw text of a dataset, one title per line.
func Get(name string) (Dataset, string, bool) {
	d, ok := lookup(name)
	if !ok {
		return Dataset{}, "", false
	}
	b, err := dataFS.ReadFile(path.Join("data", d.Name+".txt"))
	if err != nil {
		return Dataset{}, "", false
	}
	return d, string(b), true
}

// List builds a List for the named dataset with the given id.
func List(name, id string) (model.List, bool) {
	d, text, ok := Get(name)
	if !ok {
		return model.List{}, false
	}
	return model.List{ID: id, Name: d.Title, Questions: text}, true
}
