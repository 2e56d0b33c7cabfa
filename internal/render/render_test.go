package render

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/vovakirdan/maze-master/internal/core"
	mock_core "github.com/vovakirdan/maze-master/internal/core/mock"
	"github.com/vovakirdan/maze-master/internal/levels"
	"github.com/vovakirdan/maze-master/internal/maze"
)

func snapshotAt(level int, player core.Point, collected int, stars ...core.Point) maze.Snapshot {
	lv := levels.Get(level)
	return maze.Snapshot{
		LevelIndex: level,
		Level:      lv,
		Player:     player,
		Stars:      stars,
		Collected:  collected,
		Quota:      lv.StarQuota,
	}
}

func TestBlinkClock(t *testing.T) {
	c := NewBlinkClock(300 * time.Millisecond)
	if c.On() {
		t.Fatal("clock should start off")
	}
	if c.Update(300 * time.Millisecond) {
		t.Error("clock toggled at exactly one period")
	}
	if !c.Update(301*time.Millisecond) || !c.On() {
		t.Error("clock should toggle on after a period")
	}
	if c.Update(500 * time.Millisecond) {
		t.Error("clock toggled early")
	}
	if !c.Update(602*time.Millisecond) || c.On() {
		t.Error("clock should toggle off after the next period")
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		dim, window, pos, expect int
	}{
		{8, 8, 6, 0},
		{16, 8, 1, 0},
		{16, 8, 7, 3},
		{16, 8, 14, 8},
		{16, 8, 15, 8},
		{12, 8, 10, 4},
		{12, 8, 5, 1},
	}
	for _, tc := range tests {
		got := Offset(tc.dim, tc.window, tc.pos)
		if got != tc.expect {
			t.Errorf("Offset(%d, %d, %d) = %d, expected %d", tc.dim, tc.window, tc.pos, got, tc.expect)
		}
		if got < 0 || got > max(0, tc.dim-tc.window) {
			t.Errorf("Offset(%d, %d, %d) = %d is outside the maze", tc.dim, tc.window, tc.pos, got)
		}
	}
}

func TestComposeWallsAndExit(t *testing.T) {
	s := snapshotAt(0, core.Point{Col: 1, Row: 1}, 0)

	f := Compose(View{Maze: s})
	expected := Frame{0xFF, 0x81, 0xE1, 0x8F, 0xE1, 0x8F, 0x83, 0xFF}
	if f != expected {
		t.Errorf("Compose() = % x, expected % x", f, expected)
	}

	// Player blink phase lights the start cell.
	f = Compose(View{Maze: s, PlayerOn: true})
	if f[1] != 0xC1 {
		t.Errorf("row 1 = %#x, expected 0xc1", f[1])
	}
}

func TestExitBlinksOnlyAfterQuota(t *testing.T) {
	open := snapshotAt(0, core.Point{Col: 1, Row: 1}, 2)

	if f := Compose(View{Maze: open, StarOn: false}); f.Lit(6, 6) {
		t.Error("open exit should follow the star clock off phase")
	}
	if f := Compose(View{Maze: open, StarOn: true}); !f.Lit(6, 6) {
		t.Error("open exit should follow the star clock on phase")
	}

	closed := snapshotAt(0, core.Point{Col: 1, Row: 1}, 1)
	for _, on := range []bool{false, true} {
		if f := Compose(View{Maze: closed, StarOn: on}); !f.Lit(6, 6) {
			t.Errorf("closed exit should be solid (star phase %v)", on)
		}
	}
}

func TestStarsFollowStarClock(t *testing.T) {
	star := core.Point{Col: 3, Row: 2}
	s := snapshotAt(0, core.Point{Col: 1, Row: 1}, 0, star)

	if f := Compose(View{Maze: s, StarOn: false}); f.Lit(3, 2) {
		t.Error("star drawn during the off phase")
	}
	if f := Compose(View{Maze: s, StarOn: true}); !f.Lit(3, 2) {
		t.Error("star missing during the on phase")
	}
}

func TestComposeScrollsLargeMaze(t *testing.T) {
	far := core.Point{Col: 1, Row: 2} // outside the window below
	s := snapshotAt(2, core.Point{Col: 13, Row: 14}, 10, far)

	f := Compose(View{Maze: s, StarOn: true, PlayerOn: true})
	// Offset is (8, 8): player at (5, 6), exit at (6, 6).
	if !f.Lit(5, 6) || !f.Lit(6, 6) {
		t.Errorf("player/exit not mapped into the window: % x", f)
	}
	// Bottom row is the maze border.
	if f[7] != 0xFF {
		t.Errorf("row 7 = %#x, expected border", f[7])
	}
}

func TestMatrixRendererPushesChangedRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := mock_core.NewMockMatrixDisplay(ctrl)

	s := snapshotAt(0, core.Point{Col: 1, Row: 1}, 0)
	r := NewMatrixRenderer(dev)

	dev.EXPECT().Clear()
	dev.EXPECT().SetRow(gomock.Any(), gomock.Any()).Times(MatrixSize)
	r.Init()
	r.Render(View{Maze: s})

	// Identical frame: nothing pushed.
	r.Render(View{Maze: s})

	// Player phase flips: one row.
	dev.EXPECT().SetRow(1, uint8(0xC1))
	r.Render(View{Maze: s, PlayerOn: true})
}

func TestMatrixRendererShowIcon(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := mock_core.NewMockMatrixDisplay(ctrl)
	r := NewMatrixRenderer(dev)

	dev.EXPECT().Clear()
	r.Clear()

	for row, bits := range IconInfo {
		if bits != 0 {
			dev.EXPECT().SetRow(row, bits)
		}
	}
	r.Show(IconInfo)
}

func TestLCDRendererRedrawsOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := mock_core.NewMockTextDisplay(ctrl)
	r := NewLCDRenderer(dev)

	s := snapshotAt(0, core.Point{Col: 1, Row: 1}, 0)

	gomock.InOrder(
		dev.EXPECT().Clear(),
		dev.EXPECT().SetCursor(0, 0),
		dev.EXPECT().Print("Lv:1 Stars:0/2  "),
		dev.EXPECT().SetCursor(0, 1),
		dev.EXPECT().Print("Score: 0        "),
	)
	r.Init()
	r.Render(View{Maze: s})
	r.Render(View{Maze: s, StarOn: true}) // blink phases do not touch the LCD

	s.Collected = 1
	s.Score = 10
	gomock.InOrder(
		dev.EXPECT().SetCursor(0, 0),
		dev.EXPECT().Print("Lv:1 Stars:1/2  "),
		dev.EXPECT().SetCursor(0, 1),
		dev.EXPECT().Print("Score: 10       "),
	)
	r.Render(View{Maze: s})
}

func TestShowTextTruncates(t *testing.T) {
	ctrl := gomock.NewController(t)
	dev := mock_core.NewMockTextDisplay(ctrl)

	gomock.InOrder(
		dev.EXPECT().Clear(),
		dev.EXPECT().SetCursor(0, 0),
		dev.EXPECT().Print("0123456789ABCDEF"),
		dev.EXPECT().SetCursor(0, 1),
		dev.EXPECT().Print("ok"),
	)
	ShowText(dev, "0123456789ABCDEFGH", "ok")
}

var _ Renderer = (*MatrixRenderer)(nil)
var _ Renderer = (*LCDRenderer)(nil)
