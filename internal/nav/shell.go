package nav

import (
	"fmt"
	"sort"
)

var shellSnippets = map[string]string{
	"bash": `tn() {
    local dir
    dir="$(tutel nav "$1")" && cd "$dir"
}
`,
	"zsh": `tn() {
    local dir
    dir="$(tutel nav "$1")" && cd "$dir"
}
`,
	"fish": `function tn
    set -l dir (tutel nav $argv[1]); and cd $dir
end
`,
}

// Shells returns the shells ShellInit supports.
func Shells() []string {
	out := make([]string, 0, len(shellSnippets))
	for name := range shellSnippets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ShellInit returns the tn helper function for shell.
func ShellInit(shell string) (string, error) {
	snippet, ok := shellSnippets[shell]
	if !ok {
		return "", fmt.Errorf("no such shell %q", shell)
	}
	return snippet, nil
}
