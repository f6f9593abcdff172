package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/1970jjh/alpagoteam/internal/game"
)

// render prints the board with one row of cells and one row of group
// markers. Groups alternate between two background colors.
func render(b game.Board, res game.Result, noColor bool) string {
	palette := []*color.Color{
		color.New(color.FgBlack, color.BgCyan),
		color.New(color.FgBlack, color.BgYellow),
	}
	if noColor {
		for _, c := range palette {
			c.DisableColor()
		}
	}

	var idx, cells, groups strings.Builder
	for i, c := range b {
		idx.WriteString(fmt.Sprintf("%3d", i))

		text := fmt.Sprintf("%3s", c.String())
		mark := "  ."
		if id, ok := res.Groups[i]; ok {
			text = palette[id%len(palette)].Sprint(text)
			mark = fmt.Sprintf("%3s", groupLabel(id))
		}
		cells.WriteString(text)
		groups.WriteString(mark)
	}

	var sb strings.Builder
	sb.WriteString("cell " + idx.String() + "\n")
	sb.WriteString("     " + cells.String() + "\n")
	sb.WriteString("     " + groups.String() + "\n")
	sb.WriteString(fmt.Sprintf("score %d (%d runs, %d groups)\n", res.Score, len(res.Runs), groupCount(res.Groups)))
	return sb.String()
}

// groupLabel names group ids a, b, c, …; a board holds at most ten groups.
func groupLabel(id int) string { return string(rune('a' + id)) }

func groupCount(groups map[int]int) int {
	seen := make(map[int]struct{})
	for _, id := range groups {
		seen[id] = struct{}{}
	}
	return len(seen)
}
