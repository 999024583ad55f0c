package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/globe-backdrop/internal/scene"
)

// inputPoller turns ebiten's per-tick input state into tracker events.
// Positions are only forwarded when they change, so a still cursor does
// not count as movement.
type inputPoller struct {
	cursorX, cursorY int
	touchX, touchY   int
	touching         bool

	touchIDs []ebiten.TouchID
	touches  []scene.Vec2
	chars    []rune
	keys     []ebiten.Key
}

func (p *inputPoller) poll(tr *scene.Tracker, width, height int) {
	x, y := ebiten.CursorPosition()
	if x != p.cursorX || y != p.cursorY {
		p.cursorX, p.cursorY = x, y
		tr.PointerMoved(float64(x), float64(y), width, height)
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	p.touches = p.touches[:0]
	for _, id := range p.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		p.touches = append(p.touches, scene.Vec2{X: float64(tx), Y: float64(ty)})
	}
	if len(p.touches) > 0 {
		tx, ty := int(p.touches[0].X), int(p.touches[0].Y)
		if !p.touching || tx != p.touchX || ty != p.touchY {
			p.touchX, p.touchY = tx, ty
			tr.TouchMoved(p.touches, width, height)
		}
	}
	p.touching = len(p.touches) > 0

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	if len(p.chars) > 0 || hasEditKey(p.keys) {
		tr.TextInput()
	}
}

// hasEditKey reports whether keys contains a key that edits text without
// producing a character.
func hasEditKey(keys []ebiten.Key) bool {
	for _, k := range keys {
		switch k {
		case ebiten.KeyBackspace, ebiten.KeyDelete, ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			return true
		}
	}
	return false
}
