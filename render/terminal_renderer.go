package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sacrifices/config"
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

// TerminalRenderer draws the world onto a tcell screen
// The play area is scaled to fit between the HUD row and the controls row
type TerminalRenderer struct {
	screen   tcell.Screen
	width    int
	height   int
	controls string
}

// NewTerminalRenderer creates a renderer sized to the current screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize picks up the current screen dimensions
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// SetControls sets the footer line
func (r *TerminalRenderer) SetControls(text string) {
	r.controls = text
}

// RenderFrame draws one frame of the world
func (r *TerminalRenderer) RenderFrame(world *engine.World) {
	bg := tcell.StyleDefault.Background(RgbBackground.Tcell())
	r.fill(bg)

	r.drawAllies(world, bg)
	r.drawEnemies(world, bg)
	r.drawPickups(world, bg)
	r.drawPlayers(world, bg)

	r.drawHUD(world, bg)
	r.drawText(0, r.height-1, r.controls, bg.Foreground(RgbControls.Tcell()))

	if world.GameOver {
		mid := r.height / 2
		r.drawCentered(mid, parameter.GameOverText, bg.Foreground(RgbGameOver.Tcell()).Bold(true))
		r.drawCentered(mid+1, parameter.RestartHintText, bg.Foreground(RgbControls.Tcell()))
	}

	r.screen.Show()
}

// RenderMenu draws the mode selection screen
func (r *TerminalRenderer) RenderMenu() {
	bg := tcell.StyleDefault.Background(RgbMenuBackground.Tcell())
	r.fill(bg)

	mid := r.height / 2
	r.drawCentered(mid-4, parameter.TitleText, bg.Foreground(RgbText.Tcell()).Bold(true))
	r.drawCentered(mid-2, parameter.MenuPromptText, bg.Foreground(RgbControls.Tcell()))
	r.drawCentered(mid, parameter.MenuSingleText, bg.Foreground(RgbText.Tcell()))
	r.drawCentered(mid+1, parameter.MenuTwoText, bg.Foreground(RgbText.Tcell()))

	r.screen.Show()
}

// RenderIntro draws the intro line at the given opacity in [0, 1]
func (r *TerminalRenderer) RenderIntro(alpha float64) {
	bg := tcell.StyleDefault.Background(RgbIntroBg.Tcell())
	r.fill(bg)

	fg := RgbIntroBg.Blend(RgbText, alpha)
	r.drawCentered(r.height/2, parameter.IntroText, bg.Foreground(fg.Tcell()).Bold(true))

	r.screen.Show()
}

// IntroAlpha returns the intro opacity after elapsed seconds: fade in, hold, fade out
func IntroAlpha(elapsed float64) float64 {
	total := parameter.IntroDuration.Seconds()
	fade := parameter.IntroFade.Seconds()
	switch {
	case elapsed <= 0 || elapsed >= total:
		return 0
	case elapsed < fade:
		return elapsed / fade
	case elapsed > total-fade:
		return (total - elapsed) / fade
	}
	return 1
}

// ToCell maps a world position into the play rows; ok is false off screen
func (r *TerminalRenderer) ToCell(world *engine.World, pos vmath.Vec2F) (x, y int, ok bool) {
	rows := r.height - parameter.HUDRows - parameter.FooterRows
	if r.width <= 0 || rows <= 0 {
		return 0, 0, false
	}
	if pos.X < 0 || pos.Y < 0 || pos.X >= world.Width || pos.Y >= world.Height {
		return 0, 0, false
	}
	x = int(pos.X / world.Width * float64(r.width))
	y = parameter.HUDRows + int(pos.Y/world.Height*float64(rows))
	return x, y, true
}

func (r *TerminalRenderer) drawAllies(world *engine.World, bg tcell.Style) {
	for _, a := range world.Allies {
		color := RgbAlly
		if a.Rescued {
			color = RgbAllyRescued
		}
		r.plot(world, a.Pos, parameter.AllyGlyph, bg.Foreground(color.Tcell()))
	}
}

func (r *TerminalRenderer) drawEnemies(world *engine.World, bg tcell.Style) {
	style := bg.Foreground(RgbEnemy.Tcell())
	for _, e := range world.Enemies {
		r.plot(world, e.Pos, parameter.EnemyGlyph, style)
	}
}

func (r *TerminalRenderer) drawPickups(world *engine.World, bg tcell.Style) {
	style := bg.Foreground(RgbPickup.Tcell())
	for _, h := range world.Pickups {
		if h.Active {
			r.plot(world, h.Pos, parameter.PickupGlyph, style)
		}
	}
}

func (r *TerminalRenderer) drawPlayers(world *engine.World, bg tcell.Style) {
	shieldStyle := bg.Foreground(RgbShield.Tcell())
	for _, p := range world.Players {
		if p.Shield.Active {
			radius := p.ProtectRange()
			for k := 0; k < parameter.ShieldRingSamples; k++ {
				angle := 2 * math.Pi * float64(k) / parameter.ShieldRingSamples
				ring := vmath.Vec2F{X: p.Pos.X + radius*math.Cos(angle), Y: p.Pos.Y + radius*math.Sin(angle)}
				r.plot(world, ring, parameter.ShieldGlyph, shieldStyle)
			}
		}

		glyph, color := parameter.PlayerGlyph, FromComponent(p.Color)
		if !p.Alive {
			glyph, color = parameter.PlayerDownGlyph, RgbPlayerDown
		}
		r.plot(world, p.Pos, glyph, bg.Foreground(color.Tcell()).Bold(true))
	}
}

// drawHUD writes score on the left and each player's hearts on the right
func (r *TerminalRenderer) drawHUD(world *engine.World, bg tcell.Style) {
	r.drawText(1, 0, fmt.Sprintf(parameter.ScoreLabelFormat, world.Score, world.Rescued), bg.Foreground(RgbText.Tcell()))

	// Each block is "Pn " plus one glyph per possible heart
	block := 3 + parameter.MaxHearts + 2
	x := r.width - block*len(world.Players)
	for i, p := range world.Players {
		r.drawText(x, 0, p.Name, bg.Foreground(labelColor(i).Tcell()))
		heart := bg.Foreground(FromComponent(p.Color).Tcell())
		for h := 0; h < p.Hearts; h++ {
			r.screen.SetContent(x+3+h, 0, parameter.HeartGlyph, nil, heart)
		}
		x += block
	}
}

func (r *TerminalRenderer) plot(world *engine.World, pos vmath.Vec2F, glyph rune, style tcell.Style) {
	if x, y, ok := r.ToCell(world, pos); ok {
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	r.screen.SetStyle(style)
	r.screen.Clear()
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	r.drawText((r.width-len([]rune(text)))/2, y, text, style)
}

// ControlsLine formats the footer for the active players' bindings
func ControlsLine(keys []config.KeyBindings, players int) string {
	if players >= 2 && len(keys) >= 2 {
		p1, p2 := keys[0], keys[1]
		return fmt.Sprintf(parameter.ControlsTwo,
			moveLabel(p1), keyLabel(p1.Rescue), keyLabel(p1.Shield),
			moveLabel(p2), keyLabel(p2.Rescue), keyLabel(p2.Shield))
	}
	if len(keys) == 0 {
		return ""
	}
	p1 := keys[0]
	return fmt.Sprintf(parameter.ControlsSingle, moveLabel(p1), keyLabel(p1.Rescue), keyLabel(p1.Shield))
}

func moveLabel(k config.KeyBindings) string {
	names := []string{k.Up, k.Left, k.Down, k.Right}
	if strings.EqualFold(strings.Join(names, ","), "up,left,down,right") {
		return "Arrow Keys"
	}
	single := true
	for _, n := range names {
		if len([]rune(n)) != 1 {
			single = false
		}
	}
	if single {
		return strings.ToUpper(strings.Join(names, ""))
	}
	return strings.Join(names, "/")
}

func keyLabel(name string) string {
	if len([]rune(name)) <= 1 {
		return strings.ToUpper(name)
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
