package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/textobj/internal/app"
	"github.com/dshills/textobj/internal/engine/buffer"
)

// ui drives the terminal playground around a session.
type ui struct {
	screen  tcell.Screen
	session *app.Session
	log     *app.Logger

	typed   string
	insert  string
	message string
}

func newUI(session *app.Session, log *app.Logger) (*ui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &ui{
		screen:  screen,
		session: session,
		log:     log.WithComponent("ui"),
	}, nil
}

func (u *ui) run() error {
	defer u.screen.Fini()

	for {
		u.draw()
		ev := u.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if u.session.InsertPending() {
				u.handleInsertKey(ev)
				continue
			}
			u.handleKey(ev)
		}
	}
}

func (u *ui) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		u.session.CancelPending()
		u.session.ExitVisual()
		u.typed = ""
		u.message = ""
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	r := ev.Rune()
	if !u.session.Pending() {
		switch r {
		case 'h':
			u.moveCursor(-1)
			return
		case 'l':
			u.moveCursor(1)
			return
		case 'v':
			u.session.EnterVisual()
			return
		}
	}

	u.typed += string(r)
	if err := u.session.HandleKey(r); err != nil {
		u.message = err.Error()
		u.typed = ""
		return
	}
	if !u.session.Pending() {
		u.typed = ""
		u.message = ""
	}
}

func (u *ui) handleInsertKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		if err := u.session.Insert(u.insert); err != nil {
			u.message = err.Error()
		}
		u.insert = ""
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(u.insert) > 0 {
			u.insert = u.insert[:len(u.insert)-1]
		}
	case tcell.KeyRune:
		u.insert += string(ev.Rune())
	}
}

func (u *ui) moveCursor(dir int) {
	text := u.session.Text()
	head := u.session.Selection().Head
	if dir < 0 {
		u.session.MoveTo(buffer.PrevOffset(text, head))
	} else {
		u.session.MoveTo(buffer.NextOffset(text, head))
	}
}

func (u *ui) draw() {
	u.screen.Clear()
	width, height := u.screen.Size()
	if height < 2 {
		u.screen.Show()
		return
	}

	sel := u.session.Selection()
	region := sel.Range()
	cursorStyle := tcell.StyleDefault.Reverse(true)
	selStyle := tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)

	buf := u.session.Buffer()
	for line := 0; line < buf.LineCount() && line < height-1; line++ {
		lineStart := buf.LineStart(line)
		x := 0
		g := uniseg.NewGraphemes(buf.LineText(line))
		off := lineStart
		for g.Next() && x < width {
			cluster := g.Str()
			style := tcell.StyleDefault
			if sel.Active && region.Contains(off) {
				style = selStyle
			}
			if off == sel.Head {
				style = cursorStyle
			}
			runes := g.Runes()
			u.screen.SetContent(x, line, runes[0], runes[1:], style)
			x += uniseg.StringWidth(cluster)
			off += buffer.ByteOffset(len(cluster))
		}
		// Cursor sits on the newline or past the last character.
		if sel.Head == buf.LineEnd(line) && x < width {
			u.screen.SetContent(x, line, ' ', nil, cursorStyle)
		}
	}

	u.drawStatus(width, height-1)
	u.screen.Show()
}

func (u *ui) drawStatus(width, y int) {
	mode := "NORMAL"
	switch {
	case u.session.InsertPending():
		mode = "INSERT"
	case u.session.Selection().Active:
		mode = "VISUAL"
	}

	status := fmt.Sprintf(" %s  %s", mode, u.typed)
	if u.session.InsertPending() {
		status = fmt.Sprintf(" %s  %s", mode, u.insert)
	}
	if u.message != "" {
		status += "  | " + u.message
	}

	for uniseg.StringWidth(status) < width {
		status += " "
	}
	status = truncateToWidth(status, width)

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	g := uniseg.NewGraphemes(status)
	for g.Next() && x < width {
		runes := g.Runes()
		u.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += uniseg.StringWidth(g.Str())
	}
}

// truncateToWidth cuts a string at grapheme boundaries so it fits the
// given cell width.
func truncateToWidth(s string, width int) string {
	var b strings.Builder
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := uniseg.StringWidth(g.Str())
		if w+cw > width {
			break
		}
		b.WriteString(g.Str())
		w += cw
	}
	return b.String()
}
