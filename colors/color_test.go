package colors

import (
	"image/color"
	"testing"
)

func TestFromHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FF5722", color.NRGBA{0xFF, 0x57, 0x22, 0xFF}},
		{"4CAF50", color.NRGBA{0x4C, 0xAF, 0x50, 0xFF}},
		{"#666", color.NRGBA{0x66, 0x66, 0x66, 0xFF}},
	}
	for _, c := range cases {
		got, err := FromHex(c.in)
		if err != nil {
			t.Fatalf("FromHex(%q): %v", c.in, err)
		}
		if got.ToNRGBA() != c.want {
			t.Errorf("FromHex(%q) = %v, want %v", c.in, got.ToNRGBA(), c.want)
		}
	}
	for _, bad := range []string{"", "#12", "#GGGGGG", "#1234567"} {
		if _, err := FromHex(bad); err == nil {
			t.Errorf("FromHex(%q) should fail", bad)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, h := range []string{"#FF5722", "#4CAF50", "#FDB813", "#000000", "#FFFFFF"} {
		if got := MustHex(h).Hex(); got != h {
			t.Errorf("Hex() = %s, want %s", got, h)
		}
	}
}

func TestCSS(t *testing.T) {
	if got := Syene.CSS(); got != "#FF5722" {
		t.Errorf("opaque CSS = %s", got)
	}
	if got := SunRay.CSS(); got != "rgba(255, 214, 0, 0.3)" {
		t.Errorf("translucent CSS = %s", got)
	}
	if got := ShadowInk.CSS(); got != "rgba(0, 0, 0, 0.4)" {
		t.Errorf("ShadowInk CSS = %s", got)
	}
}
