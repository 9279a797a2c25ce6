package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	au aurora.Aurora
}

// NewTerminalRenderer creates a renderer drawing live cells red when colors is set
func NewTerminalRenderer(colors bool) *TerminalRenderer {
	return &TerminalRenderer{au: aurora.NewAurora(colors)}
}

// LiveCell returns the text drawn for a live cell
func (r *TerminalRenderer) LiveCell() string {
	return r.au.Red(gridPosBlock).String()
}

// DeadCell returns the text drawn for a dead cell
func (r *TerminalRenderer) DeadCell() string {
	return gridPosEmpty
}

// Render writes one line per grid row to w
func (r *TerminalRenderer) Render(w io.Writer, g *Grid) error {
	var (
		bw   = bufio.NewWriter(w)
		live = r.LiveCell()
	)
	for row := range g.Rows() {
		for col := range g.Cols() {
			if g.IsAlive(row, col) {
				bw.WriteString(live)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[Render] failed to write grid")
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	if err := r.Render(os.Stdout, g); err != nil {
		fmt.Println("Error rendering grid:", err)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
