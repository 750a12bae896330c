package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sacrifices/component"
	"github.com/lixenwraith/sacrifices/config"
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/vmath"
)

const (
	testCols = 90
	testRows = 32
)

func newTestRenderer(t *testing.T) (*TerminalRenderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(testCols, testRows)
	return NewTerminalRenderer(screen), screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func rowText(screen tcell.Screen, y int) string {
	var b strings.Builder
	for x := 0; x < testCols; x++ {
		b.WriteRune(runeAt(screen, x, y))
	}
	return b.String()
}

func findRune(screen tcell.Screen, glyph rune) (int, int, bool) {
	for y := 0; y < testRows; y++ {
		for x := 0; x < testCols; x++ {
			if runeAt(screen, x, y) == glyph {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestToCellScalesPlayArea(t *testing.T) {
	r, _ := newTestRenderer(t)
	w := engine.NewDefaultWorld()

	x, y, ok := r.ToCell(w, vmath.Vec2F{X: 0, Y: 0})
	if !ok || x != 0 || y != parameter.HUDRows {
		t.Errorf("Expected origin at (0,%d), got (%d,%d) ok=%v", parameter.HUDRows, x, y, ok)
	}

	x, y, ok = r.ToCell(w, vmath.Vec2F{X: w.Width - 0.01, Y: w.Height - 0.01})
	if !ok || x != testCols-1 || y != testRows-parameter.FooterRows-1 {
		t.Errorf("Expected far corner at last play cell, got (%d,%d)", x, y)
	}

	if _, _, ok = r.ToCell(w, vmath.Vec2F{X: 100, Y: -20}); ok {
		t.Error("Expected off-screen enemy to be skipped")
	}
}

func TestRenderFrameDrawsEntities(t *testing.T) {
	r, screen := newTestRenderer(t)
	w := engine.NewDefaultWorld()
	w.AddPlayer(component.NewPlayer("P1", component.ColorPlayerOne, 450, 300))
	w.AddEnemy(&component.Enemy{Pos: vmath.Vec2F{X: 100, Y: 100}, Radius: 15, Speed: 1, Alive: true})
	w.AddAlly(&component.Ally{Pos: vmath.Vec2F{X: 700, Y: 500}, Radius: 12})
	w.AddPickup(&component.HealPickup{Pos: vmath.Vec2F{X: 200, Y: 450}, Radius: 10, Active: true})
	w.AddPickup(&component.HealPickup{Pos: vmath.Vec2F{X: 800, Y: 100}, Radius: 10, Active: false})
	w.Score, w.Rescued = 300, 2

	r.SetControls(ControlsLine(config.DefaultKeys(), 1))
	r.RenderFrame(w)

	px, py, _ := r.ToCell(w, w.Players[0].Pos)
	if got := runeAt(screen, px, py); got != parameter.PlayerGlyph {
		t.Errorf("Expected player glyph at (%d,%d), got %q", px, py, got)
	}
	ex, ey, _ := r.ToCell(w, w.Enemies[0].Pos)
	if got := runeAt(screen, ex, ey); got != parameter.EnemyGlyph {
		t.Errorf("Expected enemy glyph, got %q", got)
	}
	ax, ay, _ := r.ToCell(w, w.Allies[0].Pos)
	if got := runeAt(screen, ax, ay); got != parameter.AllyGlyph {
		t.Errorf("Expected ally glyph, got %q", got)
	}
	hx, hy, _ := r.ToCell(w, w.Pickups[1].Pos)
	if got := runeAt(screen, hx, hy); got == parameter.PickupGlyph {
		t.Error("Expected consumed pickup hidden")
	}

	hud := rowText(screen, 0)
	if !strings.Contains(hud, "Score: 300  Rescued: 2") {
		t.Errorf("Expected score in HUD, got %q", hud)
	}
	if strings.Count(hud, string(parameter.HeartGlyph)) != parameter.PlayerStartHeart {
		t.Errorf("Expected %d hearts in HUD, got %q", parameter.PlayerStartHeart, hud)
	}

	footer := rowText(screen, testRows-1)
	if !strings.Contains(footer, "Move=WASD") {
		t.Errorf("Expected controls line, got %q", footer)
	}
	if strings.Contains(rowText(screen, testRows/2), parameter.GameOverText) {
		t.Error("Expected no game over banner while playing")
	}
}

func TestShieldRingAndBanner(t *testing.T) {
	r, screen := newTestRenderer(t)
	w := engine.NewDefaultWorld()
	// Above the banner row so the downed glyph stays visible
	p := component.NewPlayer("P1", component.ColorPlayerOne, 450, 150)
	p.Shield.Activate(parameter.ShieldDuration)
	w.AddPlayer(p)

	r.RenderFrame(w)
	if _, _, ok := findRune(screen, parameter.ShieldGlyph); !ok {
		t.Error("Expected shield ring drawn")
	}

	p.Shield = component.ShieldComponent{}
	p.Alive = false
	w.GameOver = true
	r.RenderFrame(w)

	if _, _, ok := findRune(screen, parameter.ShieldGlyph); ok {
		t.Error("Expected ring gone without shield")
	}
	px, py, _ := r.ToCell(w, p.Pos)
	if got := runeAt(screen, px, py); got != parameter.PlayerDownGlyph {
		t.Errorf("Expected downed glyph, got %q", got)
	}
	if !strings.Contains(rowText(screen, testRows/2), parameter.GameOverText) {
		t.Error("Expected game over banner")
	}
}

func TestRescuedAllyGrey(t *testing.T) {
	r, screen := newTestRenderer(t)
	w := engine.NewDefaultWorld()
	w.AddAlly(&component.Ally{Pos: vmath.Vec2F{X: 300, Y: 300}, Radius: 12, Rescued: true})

	r.RenderFrame(w)

	x, y, _ := r.ToCell(w, w.Allies[0].Pos)
	_, _, style, _ := screen.GetContent(x, y)
	fg, _, _ := style.Decompose()
	if fg != RgbAllyRescued.Tcell() {
		t.Errorf("Expected grey rescued ally, got %v", fg)
	}
}

func TestMenuAndIntro(t *testing.T) {
	r, screen := newTestRenderer(t)

	r.RenderMenu()
	found := false
	for y := 0; y < testRows; y++ {
		if strings.Contains(rowText(screen, y), parameter.MenuTwoText) {
			found = true
		}
	}
	if !found {
		t.Error("Expected mode options on menu")
	}

	r.RenderIntro(1)
	if !strings.Contains(rowText(screen, testRows/2), parameter.IntroText) {
		t.Error("Expected intro line")
	}
}

func TestIntroAlpha(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{0.5, 0.5},
		{2.5, 1},
		{4.5, 0.5},
		{5, 0},
	}
	for _, tt := range tests {
		if got := IntroAlpha(tt.elapsed); got != tt.want {
			t.Errorf("IntroAlpha(%v): expected %v, got %v", tt.elapsed, tt.want, got)
		}
	}
}

func TestControlsLine(t *testing.T) {
	single := ControlsLine(config.DefaultKeys(), 1)
	if single != "P1 Move=WASD | Rescue=E | Shield=Q" {
		t.Errorf("Unexpected single line %q", single)
	}
	two := ControlsLine(config.DefaultKeys(), 2)
	if !strings.Contains(two, "P2 Arrow Keys Move | Rescue=Enter | Shield=/") {
		t.Errorf("Unexpected two player line %q", two)
	}
}
