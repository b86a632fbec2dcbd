package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/tilepath/core"
	"github.com/katalvlaran/tilepath/puzzle"
)

// writeBoards prints each board row by row followed by a blank line.
func writeBoards(w io.Writer, boards []puzzle.Board) error {
	for _, b := range boards {
		if _, err := fmt.Fprintf(w, "%s\n\n", b); err != nil {
			return err
		}
	}

	return nil
}

// writeNodes prints nodes space-separated on one line.
func writeNodes(w io.Writer, nodes []core.Node) error {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))

	return err
}
