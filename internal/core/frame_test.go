package core

import (
	"errors"
	"testing"
)

func TestParseFrame(t *testing.T) {
	f, err := ParseFrame([]string{
		".r.",
		"gWg",
	})
	if err != nil {
		t.Fatalf("ParseFrame failed: %v", err)
	}

	if f.Width() != 3 || f.Height() != 2 {
		t.Errorf("expected 3x2 frame, got %dx%d", f.Width(), f.Height())
	}
	if f[0][1] != ColorRed || f[1][1] != ColorBrightWhite || f[0][0] != ColorClear {
		t.Errorf("unexpected tokens: %v", f)
	}
	if f.String() != ".r.\ngWg" {
		t.Errorf("String() = %q", f.String())
	}
}

func TestParseFrameErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"ragged rows", []string{"rr", "r"}},
		{"unknown token", []string{"rz"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFrame(tc.rows); err == nil {
				t.Errorf("ParseFrame(%v) should fail", tc.rows)
			}
		})
	}
}

func TestFrameCloneIsIndependent(t *testing.T) {
	f, _ := ParseFrame([]string{"rr"})
	c := f.Clone()
	c[0][0] = ColorBlue

	if f[0][0] != ColorRed {
		t.Error("mutating a clone changed the original")
	}
}

func TestFrameRecolorLeavesTemplate(t *testing.T) {
	f, _ := ParseFrame([]string{"r.g"})
	out := f.Recolor(Palette{ColorRed: ColorYellow})

	if out[0][0] != ColorYellow || out[0][2] != ColorGreen || out[0][1] != ColorClear {
		t.Errorf("Recolor produced %v", out)
	}
	if f[0][0] != ColorRed {
		t.Error("Recolor modified the template frame")
	}

	if same := f.Recolor(nil); &same[0][0] != &f[0][0] {
		t.Error("empty palette should return the frame unchanged")
	}
}

func TestFrameEmpty(t *testing.T) {
	blank, _ := ParseFrame([]string{"...", "..."})
	if !blank.Empty() {
		t.Error("all-clear frame should be empty")
	}
	solid, _ := ParseFrame([]string{"..r"})
	if solid.Empty() {
		t.Error("frame with a pixel should not be empty")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	var err error = Configf("animation.CurrentFrame", "frames not set")

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatal("expected ConfigurationError")
	}
	if cfgErr.Op != "animation.CurrentFrame" {
		t.Errorf("Op = %q", cfgErr.Op)
	}

	var inv *InvariantViolation
	if errors.As(err, &inv) {
		t.Error("ConfigurationError must not match InvariantViolation")
	}

	wrapped := errors.Join(errors.New("loading assets"), Invariantf("asset.Validate", "bad lengths"))
	if !errors.As(wrapped, &inv) {
		t.Error("expected wrapped InvariantViolation to be found")
	}
}
