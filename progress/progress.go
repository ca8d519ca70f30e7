package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Progress is the display contract the converter drives while scanning.
type Progress interface {
	Start(total int)
	Update(n int)
	Finish()
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)  {}
func (Nop) Update(int) {}
func (Nop) Finish()    {}

const defaultBarWidth = 50

// Bar draws "[=====     ]  50%" on a single line. It only redraws when the
// integer percentage changes, so per-pixel updates stay cheap.
type Bar struct {
	out         *termenv.Output
	width       int
	total       int
	lastPercent int
	finished    bool
}

// NewBar returns a bar drawing on w. Colour is used only when w is a terminal.
func NewBar(w io.Writer) *Bar {
	return &Bar{out: termenv.NewOutput(w), width: defaultBarWidth, lastPercent: -1}
}

func (b *Bar) Start(total int) {
	b.total = total
	b.lastPercent = -1
	b.finished = false
	b.draw(0)
}

func (b *Bar) Update(n int) {
	if b.finished {
		return
	}
	b.draw(b.percent(n))
}

func (b *Bar) Finish() {
	if b.finished {
		return
	}
	b.draw(100)
	fmt.Fprintln(b.out)
	b.finished = true
}

func (b *Bar) percent(n int) int {
	if b.total <= 0 {
		return 100
	}
	if n < 0 {
		n = 0
	}
	if n > b.total {
		n = b.total
	}
	return n * 100 / b.total
}

func (b *Bar) draw(pct int) {
	if pct == b.lastPercent {
		return
	}
	b.lastPercent = pct

	filled := pct * b.width / 100
	bar := strings.Repeat("=", filled)
	if b.out.Profile != termenv.Ascii {
		bar = b.out.String(bar).Foreground(b.out.Color("2")).String()
	}
	fmt.Fprintf(b.out, "\r[%s%s] %3d%%", bar, strings.Repeat(" ", b.width-filled), pct)
}
