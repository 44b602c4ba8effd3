package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Doct0rLekter/minesweeper/internal/mines"
)

// Render draws the board with column letters across the top and 1-based row
// numbers down the side, followed by a status line.
func Render(w io.Writer, g *mines.Game) error {
	var (
		bw       = bufio.NewWriter(w)
		rowWidth = len(strconv.Itoa(g.Height()))
		colWidth = len(ColumnLabel(g.Width() - 1))
	)

	fmt.Fprintf(bw, "%*s ", rowWidth, "")
	for col := range g.Width() {
		fmt.Fprintf(bw, " %*s", colWidth, ColumnLabel(col))
	}
	fmt.Fprintln(bw)

	for row := range g.Height() {
		fmt.Fprintf(bw, "%*d ", rowWidth, row+1)
		for col := range g.Width() {
			fmt.Fprintf(bw, " %*s", colWidth, g.Tile(g.IndexOf(row, col)))
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, "Mines remaining: %d  Turn: %d  Status: %s\n",
		g.MinesRemaining(), g.Turn(), g.Phase())
	return bw.Flush()
}
