package main

import (
	"os"
	"path/filepath"
	"strings"

	"listcmp/internal/cli"
)

var subcommands = map[string]bool{
	"compare":    true,
	"docs":       true,
	"classify":   true,
	"topics":     true,
	"seeds":      true,
	"config":     true,
	"help":       true,
	"completion": true,
}

func isListSource(s string) bool {
	s = strings.TrimSpace(s)
	if s == "-" {
		return true
	}
	switch strings.ToLower(filepath.Ext(s)) {
	case ".txt", ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// rewriteCompareShortcutArgs turns `listcmp a.txt b.txt` into
// `listcmp compare a.txt b.txt`. Cobra treats the first positional token as
// a subcommand, so argv is rewritten before parsing.
func rewriteCompareShortcutArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--format":     true,
		"--color":      true,
		"--config-dir": true,
		"--template":   true,
	}

	insert := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "compare")
		return append(out, argv[i:]...)
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isListSource(argv[i+1]) {
				return insert(i)
			}
			return argv
		}
		if a == "-" {
			return insert(i)
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if subcommands[a] || !isListSource(a) {
			return argv
		}
		return insert(i)
	}
	return argv
}

func main() {
	os.Args = rewriteCompareShortcutArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
