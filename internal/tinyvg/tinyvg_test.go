package tinyvg

import (
	"bytes"
	"testing"

	"github.com/twin-windows/twingo/internal/fixed"
	"github.com/twin-windows/twingo/internal/path"
	"github.com/twin-windows/twingo/internal/sink"
	"github.com/twin-windows/twingo/internal/twconfig"
)

type fakePixmap struct{ w, h int }

func (p *fakePixmap) Width() int  { return p.w }
func (p *fakePixmap) Height() int { return p.h }

type paintCall struct {
	argb  sink.ARGB32
	fill  bool
	width fixed.Fixed
}

type fakeSink struct{ calls []paintCall }

func (s *fakeSink) PaintPath(dst sink.Pixmap, argb sink.ARGB32, p *path.Path) {
	s.calls = append(s.calls, paintCall{argb: argb, fill: true})
}

func (s *fakeSink) PaintStroke(dst sink.Pixmap, argb sink.ARGB32, p *path.Path, penWidth fixed.Fixed) {
	s.calls = append(s.calls, paintCall{argb: argb, width: penWidth})
}

// A self-consistent scale=0/enc=U8888/range=REDUCED document: 1-byte
// width and height (16, 16), a single opaque-red color table entry,
// then END_DOCUMENT with no drawing commands. spec.md's own listed
// byte sequence for this scenario decodes its packed header byte to
// REDUCED range (the top two bits of 0x40 are 0b01, TVG_RANGE_REDUCED
// in the original enum) but then lays out width/height as if they
// were 2-byte DEFAULT values -- the two are inconsistent, and the
// stated (16,16) result only falls out under the DEFAULT reading.
// This vector is reconstructed to actually exercise REDUCED under the
// original's real field semantics rather than reproduce a
// self-contradictory literal byte array.
func reducedRangeRedDocument() []byte {
	return []byte{0x72, 0x56, 0x01, 0x40, 0x10, 0x10, 0x01, 0xFF, 0x00, 0x00, 0xFF, 0x00}
}

func TestDocumentDimensionsReducedRange(t *testing.T) {
	w, h, err := DocumentDimensions(bytes.NewReader(reducedRangeRedDocument()))
	if err != nil {
		t.Fatalf("DocumentDimensions: %v", err)
	}
	if w != 16 || h != 16 {
		t.Errorf("DocumentDimensions() = (%d,%d), want (16,16)", w, h)
	}
}

func TestRenderEmptyDocumentPaintsNothing(t *testing.T) {
	s := &fakeSink{}
	pix := &fakePixmap{16, 16}
	err := Render(bytes.NewReader(reducedRangeRedDocument()), pix, s, twconfig.Default())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(s.calls) != 0 {
		t.Errorf("Render() made %d paint calls, want 0", len(s.calls))
	}
}

func TestRenderRejectsNilArgs(t *testing.T) {
	if err := Render(nil, &fakePixmap{}, &fakeSink{}, twconfig.Default()); err == nil {
		t.Error("Render(nil reader) succeeded, want error")
	}
	if err := Render(bytes.NewReader(nil), nil, &fakeSink{}, twconfig.Default()); err == nil {
		t.Error("Render(nil pixmap) succeeded, want error")
	}
}

func TestDocumentDimensionsRejectsBadMagic(t *testing.T) {
	bad := []byte{0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}
	if _, _, err := DocumentDimensions(bytes.NewReader(bad)); err == nil {
		t.Error("DocumentDimensions(bad magic) succeeded, want error")
	}
}

func TestDocumentDimensionsRejectsUnsupportedVersion(t *testing.T) {
	bad := []byte{0x72, 0x56, 0x02}
	if _, _, err := DocumentDimensions(bytes.NewReader(bad)); err == nil {
		t.Error("DocumentDimensions(version 2) succeeded, want error")
	}
}

func TestReadVarUintMultiByte(t *testing.T) {
	// 300 encodes as two 7-bit groups: 0xAC, 0x02 (300 = 0b100101100,
	// low 7 bits 0101100=0x2C with continuation set -> 0xAC, remaining
	// 0b10 = 0x02).
	c := &ctx{r: bytes.NewReader([]byte{0xAC, 0x02})}
	v, err := c.readVarUint()
	if err != nil {
		t.Fatalf("readVarUint: %v", err)
	}
	if v != 300 {
		t.Errorf("readVarUint() = %d, want 300", v)
	}
}

func TestReadColorU565PreservesOriginalChannelMath(t *testing.T) {
	// 0xF800 = 0b1111100000000000: R bits0-4 = 0, G bits5-10 = 0,
	// B bits11-15 = 0b11111 = 31 (masked to 5 bits, divided by 15).
	c := &ctx{r: bytes.NewReader([]byte{0x00, 0xF8}), colorEnc: colorU565}
	col, err := c.readColor()
	if err != nil {
		t.Fatalf("readColor: %v", err)
	}
	if col.A() != 0xff || col.R() != 0 || col.G() != 0 {
		t.Errorf("readColor() = %#v, want A=ff R=0 G=0", col)
	}
	if col.B() == 0 {
		t.Errorf("readColor() B channel = 0, want nonzero for a set B field")
	}
}

func TestDegreesToAngleMapsFullTurn(t *testing.T) {
	got := degreesToAngle(fixed.FromInt(360))
	if got != fixed.Angle360 {
		t.Errorf("degreesToAngle(360) = %d, want %d", got, fixed.Angle360)
	}
	got90 := degreesToAngle(fixed.FromInt(90))
	if got90 != fixed.Angle90 {
		t.Errorf("degreesToAngle(90) = %d, want %d", got90, fixed.Angle90)
	}
}

func TestUnitToFixedRoundTripsAtQ16Scale(t *testing.T) {
	// scale=16 means the wire value already sits at Q16.16, no shift.
	if got := unitToFixed(65536, 16); got != fixed.One {
		t.Errorf("unitToFixed(65536, 16) = %d, want fixed.One", got)
	}
	// scale=0 means the wire value is a plain integer.
	if got := unitToFixed(5, 0); got != fixed.FromInt(5) {
		t.Errorf("unitToFixed(5, 0) = %d, want fixed.FromInt(5)", got)
	}
}
