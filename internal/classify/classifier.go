package classify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type topicKeywords struct {
	Topic    Topic
	Keywords []string
}

// Classifier maps titles to topics using an ordered keyword table.
// A Classifier is immutable once built.
type Classifier struct {
	table []topicKeywords
}

var defaultClassifier = &Classifier{table: builtinKeywords}

// Default returns the classifier backed by the built-in keyword table.
func Default() *Classifier {
	return defaultClassifier
}

// ClassifyTopic classifies text with the built-in table.
func ClassifyTopic(text string) Topic {
	return defaultClassifier.Topic(text)
}

// Topic returns the topic owning the longest keyword contained in text.
// Equal lengths keep the first match in table order. No match yields Other.
func (c *Classifier) Topic(text string) Topic {
	lower := strings.ToLower(text)
	best := Other
	bestLen := 0
	for _, tk := range c.table {
		for _, kw := range tk.Keywords {
			if len(kw) > bestLen && strings.Contains(lower, kw) {
				best = tk.Topic
				bestLen = len(kw)
			}
		}
	}
	return best
}

// Keywords returns a copy of the keyword list for t.
func (c *Classifier) Keywords(t Topic) []string {
	for _, tk := range c.table {
		if tk.Topic == t {
			return append([]string(nil), tk.Keywords...)
		}
	}
	return nil
}

// WithOverrides returns a classifier where each topic named in overrides uses
// the given keywords instead of its built-in ones. Other cannot take keywords.
func (c *Classifier) WithOverrides(overrides map[string][]string) (*Classifier, error) {
	if len(overrides) == 0 {
		return c, nil
	}
	repl := make(map[Topic][]string, len(overrides))
	for name, words := range overrides {
		t, ok := ParseTopic(name)
		if !ok {
			return nil, unknownTopicError{name: name}
		}
		if t == Other {
			return nil, fmt.Errorf("topic %q cannot have keywords", Other)
		}
		repl[t] = normalizeKeywordList(words)
	}

	table := make([]topicKeywords, 0, len(c.table))
	for _, tk := range c.table {
		if words, ok := repl[tk.Topic]; ok {
			table = append(table, topicKeywords{Topic: tk.Topic, Keywords: words})
			continue
		}
		table = append(table, tk)
	}
	return &Classifier{table: table}, nil
}

// LoadOverrides reads a YAML document mapping topic names to keyword lists.
func LoadOverrides(path string) (map[string][]string, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read topic overrides: %w", err)
	}
	overrides := map[string][]string{}
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return nil, fmt.Errorf("decode topic overrides %s: %w", path, err)
	}
	return overrides, nil
}

// FromFile builds a classifier from the built-in table plus the overrides at path.
// An empty path returns the default classifier.
func FromFile(path string) (*Classifier, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	overrides, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return Default().WithOverrides(overrides)
}

func normalizeKeywordList(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	res := make([]string, 0, len(words))
	for _, w := range words {
		normed := strings.ToLower(strings.TrimSpace(w))
		if normed == "" {
			continue
		}
		if _, ok := seen[normed]; ok {
			continue
		}
		seen[normed] = struct{}{}
		res = append(res, normed)
	}
	return res
}

type unknownTopicError struct {
	name string
}

func (e unknownTopicError) Error() string {
	return fmt.Sprintf("unknown topic: %q", e.name)
}
