// Package scene assembles everything the two diagrams draw for one frame.
//
// Assemble is a pure function of its InputSnapshot: it holds no state, never
// blocks, and can be called from any number of goroutines at once. The caller
// owns the rotation phase and advances it between frames.
package scene

import (
	"math"

	"github.com/echoflaresat/eratosthenes/angles"
	"github.com/echoflaresat/eratosthenes/circumference"
	"github.com/echoflaresat/eratosthenes/colors"
	"github.com/echoflaresat/eratosthenes/light"
	"github.com/echoflaresat/eratosthenes/projection"
	"github.com/echoflaresat/eratosthenes/sites"
	"github.com/echoflaresat/eratosthenes/vectors"
)

// Descriptor is the complete drawable description of one frame.
type Descriptor struct {
	Input         InputSnapshot `json:"input"`
	Globe         GlobeView     `json:"globe"`
	Flat          FlatView      `json:"flat"`
	Circumference Estimate      `json:"circumference"`
	Labels        Labels        `json:"labels"`
	Announcements Announcements `json:"announcements"`
	Style         Style         `json:"style"`
}

// Estimate is the circumference derived from the inputs. Defined is false
// only for snapshots that bypassed Resolve with a non-positive angle.
type Estimate struct {
	Value   int64 `json:"value"`
	Defined bool  `json:"defined"`
}

// GlobeView is the rotating-sphere diagram.
type GlobeView struct {
	projection.Globe
	Equator   projection.Ellipse `json:"equator"`
	Meridians []projection.Curve `json:"meridians"`
	Sun       light.GlobeSun     `json:"sun"`
	Sites     sites.Pair         `json:"sites"`
	Obelisks  [2]Obelisk         `json:"obelisks"`
	// Angle, Chord and Caption are nil when angles are hidden.
	Angle   *AngleArc `json:"angle,omitempty"`
	Chord   *Chord    `json:"chord,omitempty"`
	Caption *Text     `json:"caption,omitempty"`
}

// Obelisk is a short stick standing out of the globe at a site.
type Obelisk struct {
	Name    string       `json:"name"`
	Base    vectors.Vec2 `json:"base"`
	Tip     vectors.Vec2 `json:"tip"`
	LabelAt vectors.Vec2 `json:"label_at"`
	Color   string       `json:"color"`
	Visible bool         `json:"visible"`
}

// AngleArc marks the angle between the two sites at the globe center.
type AngleArc struct {
	Center vectors.Vec2 `json:"center"`
	Radius float64      `json:"radius"`
	From   float64      `json:"from"`
	To     float64      `json:"to"`
	Label  Text         `json:"label"`
}

// Chord is the straight line between the two sites on the globe.
type Chord struct {
	From   vectors.Vec2 `json:"from"`
	To     vectors.Vec2 `json:"to"`
	Length float64      `json:"length"` // on the canvas
	Label  Text         `json:"label"`
}

// Text is a string anchored at a point.
type Text struct {
	At   vectors.Vec2 `json:"at"`
	Text string       `json:"text"`
}

// FlatView is the sun-over-two-pillars diagram.
type FlatView struct {
	Sun       vectors.Vec2 `json:"sun"`
	SunRadius float64      `json:"sun_radius"`
	Elevation float64      `json:"elevation"`
	GroundY   float64      `json:"ground_y"`
	Pillars   [2]Pillar    `json:"pillars"`
	// NoonArc is set only near noon.
	NoonArc *AngleArc `json:"noon_arc,omitempty"`
}

// Pillar is a marker of the flat diagram with its shadow and sun ray.
type Pillar struct {
	Name   string       `json:"name"`
	Shadow light.Shadow `json:"shadow"`
	Ray    light.Ray    `json:"ray"`
}

// Labels are the display strings of the input panel.
type Labels struct {
	Angle         string `json:"angle"`
	AngleValue    string `json:"angle_value"`
	Distance      string `json:"distance"`
	Circumference string `json:"circumference"`
	TimeOfDay     string `json:"time_of_day"`
}

// Announcements are the accessibility messages for the frame.
type Announcements struct {
	Time   string `json:"time"`
	Inputs string `json:"inputs"`
}

// Clone returns a deep copy of d that shares no memory with it.
func (d Descriptor) Clone() Descriptor {
	out := d
	out.Globe.Meridians = append([]projection.Curve(nil), d.Globe.Meridians...)
	out.Globe.Angle = clonePtr(d.Globe.Angle)
	out.Globe.Chord = clonePtr(d.Globe.Chord)
	out.Globe.Caption = clonePtr(d.Globe.Caption)
	out.Flat.NoonArc = clonePtr(d.Flat.NoonArc)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

const undefinedLabel = "undefined"

// Assemble builds the descriptor of one frame. It always returns a complete
// descriptor.
func Assemble(s InputSnapshot) Descriptor {
	est := estimate(s)

	circLabel := undefinedLabel
	if est.Defined {
		circLabel = FormatCircumference(est.Value)
	}

	return Descriptor{
		Input:         s,
		Globe:         globeView(s, circLabel),
		Flat:          flatView(s),
		Circumference: est,
		Labels: Labels{
			Angle:         FormatAngle(s.ShadowAngle),
			AngleValue:    FormatAngleValue(s.ShadowAngle),
			Distance:      FormatDistance(s.SurfaceDistance),
			Circumference: circLabel,
			TimeOfDay:     TimeLabel(s.TimeOfDay),
		},
		Announcements: Announcements{
			Time:   TimeAnnouncement(s.TimeOfDay),
			Inputs: InputAnnouncement(s.ShadowAngle, s.SurfaceDistance),
		},
		Style: DefaultStyle(),
	}
}

func estimate(s InputSnapshot) Estimate {
	v, err := circumference.Estimate(s.ShadowAngle, s.SurfaceDistance)
	if err != nil {
		return Estimate{}
	}
	return Estimate{Value: v, Defined: true}
}

func globeView(s InputSnapshot, circLabel string) GlobeView {
	l := Layout{Width: s.Width, Height: s.Height}
	g := l.Globe()
	c, r := g.Center, g.Radius

	pair := sites.PlaceSites(s.ShadowAngle, s.SurfaceDistance, s.RotationPhase, r, c)

	v := GlobeView{
		Globe:     g,
		Equator:   g.Equator(),
		Meridians: g.Meridians(s.RotationPhase),
		Sun:       light.PlaceGlobeSun(s.Width, c, r, s.RotationPhase),
		Sites:     pair,
		Obelisks: [2]Obelisk{
			obelisk(pair.Baseline, r, colors.Syene),
			obelisk(pair.Offset, r, colors.Alexandria),
		},
	}
	if !s.ShowAngles {
		return v
	}

	from, to := pair.Baseline.OutwardAngle, pair.Offset.OutwardAngle
	mid := (from + to) / 2
	v.Angle = &AngleArc{
		Center: c,
		Radius: r / 2,
		From:   from,
		To:     to,
		Label: Text{
			At:   c.Add(vectors.Polar(r/2+20, mid)),
			Text: FormatAngle(s.ShadowAngle),
		},
	}
	v.Chord = &Chord{
		From:   pair.Baseline.Vec2,
		To:     pair.Offset.Vec2,
		Length: vectors.Distance(pair.Baseline.Vec2, pair.Offset.Vec2),
		Label: Text{
			At:   pair.Baseline.Midpoint(pair.Offset.Vec2),
			Text: FormatDistance(s.SurfaceDistance) + " stadia",
		},
	}
	v.Caption = &Text{
		At:   vectors.Vec2{X: c.X, Y: c.Y + r + 20},
		Text: "Circumference: " + circLabel + " stadia",
	}
	return v
}

// obelisk stands a stick of 5% of the globe radius on the site, along its
// outward direction, with the name a little beyond the tip.
func obelisk(site sites.Site, radius float64, c colors.Color4) Obelisk {
	length := radius * 0.05
	return Obelisk{
		Name:    site.Name,
		Base:    site.Vec2,
		Tip:     site.Add(vectors.Polar(length, site.OutwardAngle)),
		LabelAt: site.Add(vectors.Polar(length+radius*0.02, site.OutwardAngle)),
		Color:   c.CSS(),
		Visible: site.Visible,
	}
}

func flatView(s InputSnapshot) FlatView {
	l := Layout{Width: s.Width, Height: s.Height}
	sun := light.SunPosition(s.TimeOfDay, s.Width, s.Height)
	baseline, offset := l.Markers()

	v := FlatView{
		Sun:       sun,
		SunRadius: light.FlatSunRadius(s.Width),
		Elevation: light.Elevation(s.TimeOfDay),
		GroundY:   l.GroundY(),
		Pillars: [2]Pillar{
			pillar(sites.BaselineName, baseline, sun),
			pillar(sites.OffsetName, offset, sun),
		},
	}
	if IsNoon(s.TimeOfDay) {
		start := -math.Pi / 2
		radius := l.NoonArcRadius()
		v.NoonArc = &AngleArc{
			Center: offset.Base(),
			Radius: radius,
			From:   start,
			To:     start + angles.ToRadians(s.ShadowAngle),
			Label: Text{
				At:   vectors.Vec2{X: offset.X + radius*1.25, Y: offset.GroundY - radius*0.75},
				Text: FormatAngle(s.ShadowAngle),
			},
		}
	}
	return v
}

func pillar(name string, m light.Marker, sun vectors.Vec2) Pillar {
	return Pillar{
		Name:   name,
		Shadow: light.CastShadow(m, sun),
		Ray:    light.SunRay(sun, m),
	}
}
