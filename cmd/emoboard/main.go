package main

import (
	"os"
	"strings"

	"emoboard/internal/cli"
	"emoboard/internal/model"
)

func isEmotionType(s string) bool {
	_, err := model.ParseEmotionType(s)
	return err == nil
}

// rewriteDirectAddArgs makes `emoboard joy "great day"` work like `emoboard add joy "great day"`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten before parsing.
// Persistent flags may come first (`emoboard --dir ... joy`), so we look for the first
// positional token rather than argv[1].
func rewriteDirectAddArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--dir":     true,
		"--backend": true,
		"--config":  true,
		"--format":  true,
	}
	boolFlags := map[string]bool{
		"--pretty":  true,
		"--verbose": true,
		"-v":        true,
	}

	insertAdd := func(at int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:at]...)
		out = append(out, "add")
		out = append(out, argv[at:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// `emoboard -- joy` => `emoboard add -- joy`
			if i+1 < len(argv) && isEmotionType(argv[i+1]) {
				return insertAdd(i)
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}

		if isEmotionType(a) {
			return insertAdd(i)
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteDirectAddArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
