package twingo_test

import (
	"bytes"
	"testing"

	"github.com/twin-windows/twingo"
	"github.com/twin-windows/twingo/internal/sink/refsink"
)

// A minimal document: scale=0/U8888/REDUCED header, one opaque-blue
// color, a single FILL_RECTANGLES command covering most of the
// canvas, then END_DOCUMENT.
func rectangleDocument() []byte {
	buf := []byte{
		0x72, 0x56, 0x01, // magic, version
		0x40,       // scale=0, enc=U8888, range=REDUCED
		0x14, 0x14, // width=20, height=20
		0x01,                   // color count = 1
		0x00, 0x00, 0xFF, 0xFF, // opaque blue
	}
	// FILL_RECTANGLES, style kind flat (bits 6-7 = 0): cmd index 2.
	buf = append(buf, 0x02)
	// count-1 varuint = 0 (one rectangle), style flat index varuint = 0.
	buf = append(buf, 0x00, 0x00)
	// rectangle: x=2,y=2,w=16,h=16 (REDUCED: 1 byte each).
	buf = append(buf, 2, 2, 16, 16)
	// END_DOCUMENT.
	buf = append(buf, 0x00)
	return buf
}

func TestRenderFillRectanglesProducesVisiblePixels(t *testing.T) {
	data := rectangleDocument()

	w, h, err := twingo.DocumentDimensions(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DocumentDimensions: %v", err)
	}
	if w != 20 || h != 20 {
		t.Fatalf("DocumentDimensions() = (%d,%d), want (20,20)", w, h)
	}

	pm := refsink.NewPixmap(w, h)
	s := refsink.New()
	if err := twingo.Render(bytes.NewReader(data), pm, s); err != nil {
		t.Fatalf("Render: %v", err)
	}

	_, _, b, a := pm.Img.At(10, 10).RGBA()
	if a == 0 {
		t.Fatal("Render() left the rectangle's interior fully transparent")
	}
	if b == 0 {
		t.Errorf("Render() interior pixel has no blue channel, want the document's fill color")
	}
}
