package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// progressLine keeps a single status line up to date by rewriting it in
// place.
type progressLine struct {
	w     io.Writer
	mu    sync.Mutex
	width int
}

func newProgressLine(w io.Writer) *progressLine {
	return &progressLine{w: w}
}

func (p *progressLine) Update(fulfilled, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := fmt.Sprintf("%d of %d requested", fulfilled, total)
	pad := ""
	if len(s) < p.width {
		pad = strings.Repeat(" ", p.width-len(s))
	}
	fmt.Fprintf(p.w, "\r%s%s", s, pad)
	if len(s) > p.width {
		p.width = len(s)
	}
}

// Clear blanks the line and returns the cursor to its start.
func (p *progressLine) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.width == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
	p.width = 0
}
