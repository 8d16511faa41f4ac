package overlay

import (
	"strings"

	"deskfolio/internal/content"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	panelWidth  float32 = 560
	panelHeight float32 = 380
	padding     float32 = 24
	titleSize   int32   = 28
	bodySize    int32   = 18
	lineSpacing float32 = 26
)

// Overlay is the 2D content panel drawn over the 3D scene. The
// interaction layer only ever calls Show; hiding is wired to the close
// button and background clicks here.
type Overlay struct {
	visible bool
	section content.Section
	log     *zap.Logger
}

func New(log *zap.Logger) *Overlay {
	if log == nil {
		log = zap.NewNop()
	}
	return &Overlay{log: log}
}

// Show displays the panel for a content id, replacing whatever is
// currently shown. Unknown ids are logged and ignored.
func (o *Overlay) Show(id content.ID) {
	section, ok := content.Lookup(id)
	if !ok {
		o.log.Warn("no section for content id", zap.String("id", string(id)))
		return
	}
	o.section = section
	o.visible = true
}

func (o *Overlay) Hide() {
	o.visible = false
}

func (o *Overlay) Visible() bool {
	return o.visible
}

// Section returns what is currently shown; meaningful only while
// Visible.
func (o *Overlay) Section() content.Section {
	return o.section
}

// Draw renders the panel and handles its own close affordances. Called
// once per frame after the 3D pass.
func (o *Overlay) Draw() {
	if !o.visible {
		return
	}

	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	// Dim the scene behind the panel.
	rl.DrawRectangle(0, 0, int32(screenW), int32(screenH), rl.Fade(rl.Black, 0.5))

	rect := rl.Rectangle{
		X:      (screenW - panelWidth) / 2,
		Y:      (screenH - panelHeight) / 2,
		Width:  panelWidth,
		Height: panelHeight,
	}
	gui.Panel(rect, o.section.Title)

	textX := int32(rect.X + padding)
	textY := int32(rect.Y + padding + 24)
	rl.DrawText(o.section.Title, textX, textY, titleSize, rl.RayWhite)

	y := float32(textY) + float32(titleSize) + padding/2
	for _, line := range strings.Split(o.section.Body, "\n") {
		rl.DrawText(line, textX, int32(y), bodySize, rl.LightGray)
		y += lineSpacing
	}

	closeRect := rl.Rectangle{
		X:      rect.X + rect.Width - 90 - padding,
		Y:      rect.Y + rect.Height - 40 - padding/2,
		Width:  90,
		Height: 40,
	}
	if gui.Button(closeRect, "Close") {
		o.Hide()
		return
	}

	// Click outside the panel also closes it.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) &&
		!rl.CheckCollisionPointRec(rl.GetMousePosition(), rect) {
		o.Hide()
	}
}
