package recipe

import "strings"

// maxCommandLabel is the widest the command portion of a label may be,
// ellipsis included. Longer commands keep their tail, where the interesting
// part of a long make invocation is usually its final targets.
const maxCommandLabel = 40

// SuggestName derives the default display label for a (dir, command)
// pair: the last two path segments of the directory, " | ", then the
// command, tail-truncated to 40 characters with a "..." prefix when
// longer. Used both to pre-fill the name prompt when adding a recipe
// and as the selection label in the interactive picker.
func SuggestName(dir, command string) string {
	return shortDir(dir) + " | " + shortCommand(command)
}

func shortDir(dir string) string {
	segs := []string{}
	for _, s := range strings.Split(dir, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	if len(segs) >= 2 {
		return segs[len(segs)-2] + "/" + segs[len(segs)-1]
	}
	if len(segs) == 1 {
		return segs[0]
	}
	return dir
}

func shortCommand(command string) string {
	runes := []rune(command)
	if len(runes) <= maxCommandLabel {
		return command
	}
	return "..." + string(runes[len(runes)-(maxCommandLabel-3):])
}
