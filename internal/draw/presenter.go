package draw

import (
	"fmt"
	"io"

	"github.com/tomz197/spaceship/internal/loop/config"
)

// Menu is what the title screen shows.
type Menu struct {
	Title    string
	Items    []string
	HostCode string // Room code once hosting, empty otherwise
	Entering bool   // Code entry field open
	Entry    string // Digits typed so far
	Status   string
}

// TerminalOptions configures a Terminal.
type TerminalOptions struct {
	SizeFunc TermSizeFunc
	Sprites  map[SpriteID]Sprite // Defaults to DefaultSprites
	Sounds   map[SoundID]string  // Defaults to DefaultSounds
	Mute     bool
}

// Terminal draws frames with half-block characters. Unknown sprite and
// sound IDs are skipped.
type Terminal struct {
	w        io.Writer
	canvas   *Canvas
	out      *ChunkWriter
	sizeFunc TermSizeFunc
	sprites  map[SpriteID]Sprite
	sounds   map[SoundID]string
	mute     bool

	// Overlays collected during the frame, written after the canvas.
	score    int
	hasScore bool
	status   string
	menu     *Menu
	sound    string
}

// NewTerminal creates a presenter writing to w.
func NewTerminal(w io.Writer, opts TerminalOptions) *Terminal {
	if opts.SizeFunc == nil {
		opts.SizeFunc = DefaultTermSizeFunc
	}
	if opts.Sprites == nil {
		opts.Sprites = DefaultSprites()
	}
	if opts.Sounds == nil {
		opts.Sounds = DefaultSounds()
	}

	width, height, _ := opts.SizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := ClampTermSize(width, height)
	canvas := NewScaledCanvas(renderWidth, renderHeight, config.ScreenWidth, config.ScreenHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Terminal{
		w:        w,
		canvas:   canvas,
		out:      NewChunkWriter(w, offsetCol, offsetRow),
		sizeFunc: opts.SizeFunc,
		sprites:  opts.Sprites,
		sounds:   opts.Sounds,
		mute:     opts.Mute,
	}
}

// Start prepares the terminal for drawing.
func (t *Terminal) Start() {
	HideCursor(t.w)
	ClearScreen(t.w)
}

// Stop clears the screen and restores the cursor.
func (t *Terminal) Stop() {
	ClearScreen(t.w)
	ShowCursor(t.w)
}

// Begin starts a frame on the given background.
func (t *Terminal) Begin(background SpriteID) {
	t.updateSize()
	t.canvas.Clear()
	t.hasScore = false
	t.status = ""
	t.menu = nil
	t.sound = ""
	t.DrawSprite(background, 0, 0)
}

// updateSize follows terminal resizes, clearing the screen when the render
// area moves so no stale cells survive outside it.
func (t *Terminal) updateSize() {
	width, height, err := t.sizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := ClampTermSize(width, height)

	c := t.canvas
	if renderWidth != c.TerminalWidth() || renderHeight != c.TerminalHeight() ||
		offsetCol != c.OffsetCol() || offsetRow != c.OffsetRow() {
		t.out.WriteString("\033[H\033[2J")
		c.Resize(renderWidth, renderHeight)
		c.ForceRedraw()
	}
	c.SetOffset(offsetCol, offsetRow)
	t.out.SetOffset(offsetCol, offsetRow)
}

// DrawSprite draws the sprite with its top-left corner at logical (x,y).
func (t *Terminal) DrawSprite(id SpriteID, x, y float64) {
	s, ok := t.sprites[id]
	if !ok {
		return
	}

	for _, d := range s.Dots {
		t.canvas.SetFloat(x+d.X*s.W, y+d.Y*s.H)
	}

	if len(s.Outline) > 0 {
		pts := t.canvas.BorrowPoints(len(s.Outline))
		for i, p := range s.Outline {
			pts[i] = Point{X: x + p.X*s.W, Y: y + p.Y*s.H}
		}
		t.canvas.DrawPolygon(pts, s.Filled)
	}
}

// DrawHealthBar draws the ship's health in the top-left corner.
func (t *Terminal) DrawHealthBar(hp int) {
	const x, y, h = 10, 10, 30
	width := float64(max(0, min(hp*config.HealthBarMax/config.ShipStartHP, config.HealthBarMax)))

	c := t.canvas
	c.DrawPolygon([]Point{{x, y}, {x + config.HealthBarMax, y}, {x + config.HealthBarMax, y + h}, {x, y + h}}, false)
	c.FillRect(x, y, width, h)
}

// DrawScore shows the score in the top-right corner.
func (t *Terminal) DrawScore(score int) {
	t.score = score
	t.hasScore = true
}

// DrawStatus shows a one-line message at the bottom of the screen.
func (t *Terminal) DrawStatus(text string) {
	t.status = text
}

// DrawMenu shows the title screen over the background.
func (t *Terminal) DrawMenu(m Menu) {
	t.menu = &m
}

// PlaySound queues a sound for this frame. At most one plays per frame.
func (t *Terminal) PlaySound(id SoundID) {
	if t.mute {
		return
	}
	if s, ok := t.sounds[id]; ok {
		t.sound = s
	}
}

// End writes the frame to the terminal.
func (t *Terminal) End() error {
	t.canvas.Render(t.out)
	t.canvas.RenderBorder(t.out)

	width := t.canvas.TerminalWidth()
	height := t.canvas.TerminalHeight()

	if t.hasScore {
		// Fixed width so a shorter score leaves no stale digits.
		text := fmt.Sprintf("Score: %-6d", t.score)
		t.writeText(width-len(text), 1, text)
	}
	if t.status != "" {
		t.writeText(2, height, t.status)
	}
	if t.menu != nil {
		t.drawMenu(width/2, height/2)
	}
	if t.sound != "" {
		t.out.WriteString(t.sound)
	}

	return t.out.Flush()
}

// writeText writes s at a canvas position and schedules those cells for repaint.
func (t *Terminal) writeText(col, row int, s string) {
	if row < 1 || row > t.canvas.TerminalHeight() {
		return
	}
	col = max(col, 1)
	t.out.WriteAt(col, row, s)
	t.canvas.MarkTextDirty(col, row, len([]rune(s)))
}

func (t *Terminal) drawMenu(centerX, centerY int) {
	m := t.menu
	center := func(row int, s string) {
		t.writeText(centerX-len([]rune(s))/2, row, s)
	}

	row := centerY - len(m.Items) - 3
	t.out.WriteString(ColorYellow)
	center(row, m.Title)
	t.out.WriteString(ColorReset)

	row += 2
	for _, item := range m.Items {
		center(row, item)
		row++
	}

	row++
	if m.Entering {
		center(row, fmt.Sprintf("Code: [%-6s]", m.Entry))
		row++
	}
	if m.HostCode != "" {
		center(row, "Your Code: "+m.HostCode)
		row++
	}
	if m.Status != "" {
		center(row, m.Status)
	}
}
