package scene

import "github.com/echoflaresat/eratosthenes/colors"

// Style holds the CSS colors of every drawn element. It does not depend on
// the inputs.
type Style struct {
	Sky        string `json:"sky"`
	Ground     string `json:"ground"`
	Pillar     string `json:"pillar"`
	Shadow     string `json:"shadow"`
	Sun        string `json:"sun"`
	SunRay     string `json:"sun_ray"`
	GlobeLight string `json:"globe_light"` // center of the globe gradient
	GlobeDark  string `json:"globe_dark"`  // rim of the globe gradient
	GridLine   string `json:"grid_line"`
	Syene      string `json:"syene"`
	Alexandria string `json:"alexandria"`
	AngleArc   string `json:"angle_arc"`
	Chord      string `json:"chord"`
}

var defaultStyle = Style{
	Sky:        colors.Sky.CSS(),
	Ground:     colors.Ground.CSS(),
	Pillar:     colors.Pillar.CSS(),
	Shadow:     colors.ShadowInk.CSS(),
	Sun:        colors.Sun.CSS(),
	SunRay:     colors.SunRay.CSS(),
	GlobeLight: colors.GlobeLight.CSS(),
	GlobeDark:  colors.GlobeDark.CSS(),
	GridLine:   colors.GridLine.CSS(),
	Syene:      colors.Syene.CSS(),
	Alexandria: colors.Alexandria.CSS(),
	AngleArc:   colors.AngleArc.CSS(),
	Chord:      colors.Chord.CSS(),
}

// DefaultStyle returns the colors of both diagrams.
func DefaultStyle() Style {
	return defaultStyle
}
