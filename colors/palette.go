package colors

// Palette of the two diagrams.
var (
	Syene      = MustHex("#FF5722")
	Alexandria = MustHex("#4CAF50")
	Sun        = MustHex("#FDB813")
	SunRay     = MustHex("#FFD600").WithAlpha(0.3)
	AngleArc   = MustHex("#FF0000")
	Chord      = MustHex("#FFD700")
	GlobeLight = MustHex("#64B5F6")
	GlobeDark  = MustHex("#1565C0")
	GridLine   = White().WithAlpha(0.3)
	Sky        = MustHex("#87CEEB")
	Ground     = MustHex("#8B4513")
	Pillar     = MustHex("#666")
	ShadowInk  = Black().WithAlpha(0.4)
)

func White() Color4 {
	return Color4{R: 1, G: 1, B: 1, A: 1}
}

func Black() Color4 {
	return Color4{R: 0, G: 0, B: 0, A: 1}
}
