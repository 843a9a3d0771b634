package export

import (
	"bytes"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-bingo/internal/games/bingo"
)

func sameRGB(c color.Color, want color.RGBA) bool {
	r, g, b, _ := c.RGBA()
	return uint8(r>>8) == want.R && uint8(g>>8) == want.G && uint8(b>>8) == want.B
}

func testCard() Card {
	s := bingo.Shuffle(bingo.NewState(), rand.New(rand.NewSource(9)))
	s = bingo.Toggle(s, 0)
	return Card{State: s, Theme: bingo.DefaultTheme(), Label: "seed 9"}
}

func TestWritePNGDecodes(t *testing.T) {
	var buf bytes.Buffer
	if err := testCard().WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != CardWidth || b.Dy() != CardHeight {
		t.Errorf("Bounds = %dx%d, expected %dx%d", b.Dx(), b.Dy(), CardWidth, CardHeight)
	}
}

func TestRenderMarkedTileFilled(t *testing.T) {
	card := testCard()
	img, err := card.Render()
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	theme := bingo.DefaultTheme()

	// Inside the border, away from the centered number
	x, y := TileOrigin(0)
	if got := img.At(int(x)+10, int(y)+10); !sameRGB(got, RGBA(theme.Columns[0])) {
		t.Errorf("Marked tile fill = %v, expected column color", got)
	}

	x, y = TileOrigin(1)
	if got := img.At(int(x)+10, int(y)+10); !sameRGB(got, paper) {
		t.Errorf("Unmarked tile fill = %v, expected paper", got)
	}
}

func TestRenderCompletedLine(t *testing.T) {
	s := bingo.NewState()
	for pos := 0; pos < bingo.Size; pos++ {
		s = bingo.Toggle(s, pos)
	}
	card := Card{State: s, Theme: bingo.DefaultTheme()}
	img, err := card.Render()
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	// The gap between tiles 0 and 1 on row 0 carries the line stroke
	x, y := TileOrigin(1)
	if got := img.At(int(x), int(y)+cellSize/2); !sameRGB(got, RGBA(card.Theme.Line)) {
		t.Errorf("Row stroke pixel = %v, expected line color", got)
	}

	// Row 1 has no stroke
	x, y = TileOrigin(6)
	if got := img.At(int(x), int(y)+cellSize/2); !sameRGB(got, paper) {
		t.Errorf("Row 1 gap pixel = %v, expected paper", got)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	if err := testCard().SavePNG(path); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer f.Close()

	if _, err := png.Decode(f); err != nil {
		t.Errorf("Saved file is not a PNG: %v", err)
	}
}

func TestRGBAFallback(t *testing.T) {
	if RGBA(255) != ink {
		t.Error("Unknown color should print as ink")
	}
}
