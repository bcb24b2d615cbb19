package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestParseLists_PlainText(t *testing.T) {
	t.Parallel()

	lists, err := ParseLists("/tmp/blind75.txt", []byte("Two Sum\nJump Game\n"))
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "blind75", lists[0].Name)
	assert.Equal(t, "Two Sum\nJump Game\n", lists[0].Questions)
	assert.True(t, strings.HasPrefix(lists[0].ID, "list-"))
}

func TestParseLists_YAMLBlockAndSequence(t *testing.T) {
	t.Parallel()

	lists, err := ParseLists("lists.yaml", []byte(`
lists:
  - name: Mine
    questions: |
      Two Sum (Easy)
      Jump Game (Medium)
  - name: Theirs
    questions:
      - Two Sum (Easy)
      - Climbing Stairs (Easy)
  - name: ""
`))
	require.NoError(t, err)
	require.Len(t, lists, 3)
	assert.Equal(t, "Mine", lists[0].Name)
	assert.Equal(t, "Two Sum (Easy)\nJump Game (Medium)\n", lists[0].Questions)
	assert.Equal(t, "Two Sum (Easy)\nClimbing Stairs (Easy)", lists[1].Questions)
	assert.Equal(t, "", lists[2].Questions)
	assert.NotEqual(t, lists[0].ID, lists[1].ID)
}

func TestParseLists_JSON(t *testing.T) {
	t.Parallel()

	lists, err := ParseLists("lists.JSON", []byte(`{"lists":[{"name":"A","questions":"x\ny"},{"name":"B","questions":["x","z"]}]}`))
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "x\ny", lists[0].Questions)
	assert.Equal(t, "x\nz", lists[1].Questions)
}

func TestParseLists_BadQuestions(t *testing.T) {
	t.Parallel()

	_, err := ParseLists("lists.yml", []byte("lists:\n  - name: A\n    questions: {a: b}\n"))
	require.Error(t, err)

	_, err = ParseLists("lists.json", []byte(`{"lists":[{"name":"A","questions":3}]}`))
	require.Error(t, err)
}

func TestLoadFiles_KeepsArgumentOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "one")
	b := writeFile(t, dir, "b.yaml", "lists:\n  - name: B1\n    questions: two\n  - name: B2\n    questions: three\n")
	c := writeFile(t, dir, "c.txt", "four")

	lists, err := LoadFiles(context.Background(), []string{a, b, StdinPath, c}, strings.NewReader("five\n"))
	require.NoError(t, err)

	var names []string
	for _, l := range lists {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"a", "B1", "B2", "stdin", "c"}, names)
}

func TestLoadFiles_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadFiles(context.Background(), []string{filepath.Join(t.TempDir(), "missing.txt")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")

	_, err = LoadFiles(context.Background(), []string{StdinPath, StdinPath}, strings.NewReader(""))
	require.Error(t, err)
}

func TestNewListID_Unique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewListID()
		require.True(t, strings.HasPrefix(id, "list-"), id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
