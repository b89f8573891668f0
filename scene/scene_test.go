package scene

import (
	"math"
	"reflect"
	"sync"
	"testing"

	"github.com/echoflaresat/eratosthenes/earth"
	"github.com/echoflaresat/eratosthenes/light"
	"github.com/echoflaresat/eratosthenes/sites"
)

func TestAssembleDefaults(t *testing.T) {
	d := Assemble(DefaultSnapshot())

	if !d.Circumference.Defined || d.Circumference.Value != 250000 {
		t.Errorf("circumference = %+v, want 250000", d.Circumference)
	}
	want := Labels{
		Angle:         "7.2°",
		AngleValue:    "7.2",
		Distance:      "5000",
		Circumference: "250,000",
		TimeOfDay:     "Noon",
	}
	if d.Labels != want {
		t.Errorf("labels = %+v, want %+v", d.Labels, want)
	}
	if d.Announcements.Time != "Time of day set to Noon" {
		t.Errorf("time announcement = %q", d.Announcements.Time)
	}
	if d.Announcements.Inputs != "Angle: 7.2°, Distance: 5000" {
		t.Errorf("input announcement = %q", d.Announcements.Inputs)
	}
}

func TestAssembleIdempotent(t *testing.T) {
	s := DefaultSnapshot()
	s.RotationPhase = 1.234
	s.TimeOfDay = 37
	a := Assemble(s)
	b := Assemble(s)
	if !reflect.DeepEqual(a, b) {
		t.Error("Assemble is not deterministic")
	}
}

func TestAssembleConcurrent(t *testing.T) {
	s := DefaultSnapshot()
	want := Assemble(s)

	var wg sync.WaitGroup
	results := make([]Descriptor, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Assemble(s)
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("goroutine %d produced a different descriptor", i)
		}
	}
}

func TestGlobeView(t *testing.T) {
	s := DefaultSnapshot()
	d := Assemble(s)
	g := d.Globe

	// 600x400: center (300, 240), radius min(192, 120).
	if g.Center.X != 300 || g.Center.Y != 240 || g.Radius != 120 {
		t.Errorf("globe = %+v", g.Globe)
	}
	if g.Sites.Baseline.Latitude != earth.TropicLatitude {
		t.Errorf("baseline latitude = %v", g.Sites.Baseline.Latitude)
	}
	wantPair := sites.PlaceSites(s.ShadowAngle, s.SurfaceDistance, s.RotationPhase, g.Radius, g.Center)
	if g.Sites != wantPair {
		t.Errorf("sites = %+v, want %+v", g.Sites, wantPair)
	}
	if len(g.Meridians) != 6 {
		t.Errorf("meridians = %d", len(g.Meridians))
	}
	if g.Obelisks[0].Name != "Syene" || g.Obelisks[1].Name != "Alexandria" {
		t.Errorf("obelisks = %q, %q", g.Obelisks[0].Name, g.Obelisks[1].Name)
	}
	if g.Obelisks[0].Color != "#FF5722" || g.Obelisks[1].Color != "#4CAF50" {
		t.Errorf("obelisk colors = %s, %s", g.Obelisks[0].Color, g.Obelisks[1].Color)
	}
	tipLen := math.Hypot(g.Obelisks[0].Tip.X-g.Obelisks[0].Base.X, g.Obelisks[0].Tip.Y-g.Obelisks[0].Base.Y)
	if math.Abs(tipLen-6) > 1e-9 {
		t.Errorf("obelisk length = %v, want 6", tipLen)
	}
	if g.Angle == nil || g.Chord == nil || g.Caption == nil {
		t.Fatal("angle overlays should be present when ShowAngles is set")
	}
	if g.Angle.From != g.Sites.Baseline.OutwardAngle || g.Angle.To != g.Sites.Offset.OutwardAngle {
		t.Errorf("angle arc = %+v", g.Angle)
	}
	if g.Chord.Label.Text != "5000 stadia" {
		t.Errorf("chord label = %q", g.Chord.Label.Text)
	}
	chordLen := math.Hypot(g.Chord.To.X-g.Chord.From.X, g.Chord.To.Y-g.Chord.From.Y)
	if g.Chord.Length <= 0 || math.Abs(g.Chord.Length-chordLen) > 1e-9 {
		t.Errorf("chord length = %v, want %v", g.Chord.Length, chordLen)
	}
	if g.Caption.Text != "Circumference: 250,000 stadia" {
		t.Errorf("caption = %q", g.Caption.Text)
	}
}

func TestHiddenAngles(t *testing.T) {
	s := DefaultSnapshot()
	s.ShowAngles = false
	g := Assemble(s).Globe
	if g.Angle != nil || g.Chord != nil || g.Caption != nil {
		t.Error("angle overlays should be omitted when ShowAngles is false")
	}
}

func TestRotationMovesSites(t *testing.T) {
	s := DefaultSnapshot()
	a := Assemble(s).Globe
	s.RotationPhase = math.Pi / 2
	b := Assemble(s).Globe
	if a.Sites.Offset.X == b.Sites.Offset.X {
		t.Error("rotation should move the offset site horizontally")
	}
	if a.Sites.Offset.Y != b.Sites.Offset.Y {
		t.Error("rotation should not change site height")
	}
	if a.Sun.RayTargets == b.Sun.RayTargets {
		t.Error("decorative rays should turn with the rotation")
	}
}

func TestFlatView(t *testing.T) {
	s := DefaultSnapshot()
	s.TimeOfDay = 20
	f := Assemble(s).Flat

	if f.GroundY != 280 {
		t.Errorf("ground = %v", f.GroundY)
	}
	if f.Sun != light.SunPosition(20, 600, 400) {
		t.Errorf("sun = %+v", f.Sun)
	}
	if f.Pillars[0].Name != "Syene" || f.Pillars[1].Name != "Alexandria" {
		t.Errorf("pillars = %q, %q", f.Pillars[0].Name, f.Pillars[1].Name)
	}
	if f.Pillars[0].Shadow.Marker.X != 180 || f.Pillars[1].Shadow.Marker.X != 420 {
		t.Errorf("pillar x = %v, %v", f.Pillars[0].Shadow.Marker.X, f.Pillars[1].Shadow.Marker.X)
	}
	if f.NoonArc != nil {
		t.Error("no noon arc in the morning")
	}
}

func TestNoonArc(t *testing.T) {
	s := DefaultSnapshot()
	s.TimeOfDay = 51
	f := Assemble(s).Flat
	if f.NoonArc == nil {
		t.Fatal("expected the noon arc at time 51")
	}
	if f.NoonArc.Center.X != 420 || f.NoonArc.Center.Y != 280 {
		t.Errorf("noon arc centered at %+v", f.NoonArc.Center)
	}
	span := f.NoonArc.To - f.NoonArc.From
	if math.Abs(span-7.2*math.Pi/180) > 1e-12 {
		t.Errorf("noon arc spans %v rad", span)
	}

	s.TimeOfDay = 52
	if Assemble(s).Flat.NoonArc != nil {
		t.Error("time 52 is outside the noon window")
	}
}

func TestUndefinedCircumference(t *testing.T) {
	s := DefaultSnapshot()
	s.ShadowAngle = 0
	d := Assemble(s)
	if d.Circumference.Defined {
		t.Error("zero angle must leave the circumference undefined")
	}
	if d.Labels.Circumference != "undefined" {
		t.Errorf("label = %q", d.Labels.Circumference)
	}
	if d.Globe.Sites.Offset.Latitude != d.Globe.Sites.Baseline.Latitude {
		t.Error("zero angle should make the sites coincide")
	}
	if d.Globe.Caption == nil || d.Globe.Caption.Text != "Circumference: undefined stadia" {
		t.Errorf("caption = %+v", d.Globe.Caption)
	}
}

func TestStyle(t *testing.T) {
	d := Assemble(DefaultSnapshot())
	cases := map[string][2]string{
		"syene":     {d.Style.Syene, "#FF5722"},
		"pillar":    {d.Style.Pillar, "#666666"},
		"sun ray":   {d.Style.SunRay, "rgba(255, 214, 0, 0.3)"},
		"grid line": {d.Style.GridLine, "rgba(255, 255, 255, 0.3)"},
		"shadow":    {d.Style.Shadow, "rgba(0, 0, 0, 0.4)"},
	}
	for name, c := range cases {
		if c[0] != c[1] {
			t.Errorf("%s = %q, want %q", name, c[0], c[1])
		}
	}
	if d.Globe.Obelisks[1].Color != d.Style.Alexandria {
		t.Errorf("Alexandria obelisk color %q differs from style %q", d.Globe.Obelisks[1].Color, d.Style.Alexandria)
	}
}

func TestHugeDistanceLabels(t *testing.T) {
	s := DefaultSnapshot()
	s.SurfaceDistance = 1e20
	d := Assemble(s)
	if d.Circumference.Defined {
		t.Error("circumference over 1e20 stadia cannot be represented")
	}
	if d.Labels.Distance != "100000000000000000000" {
		t.Errorf("distance label = %q", d.Labels.Distance)
	}
	if d.Announcements.Inputs != "Angle: 7.2°, Distance: 100000000000000000000" {
		t.Errorf("input announcement = %q", d.Announcements.Inputs)
	}
	if d.Globe.Chord == nil || d.Globe.Chord.Label.Text != "100000000000000000000 stadia" {
		t.Errorf("chord = %+v", d.Globe.Chord)
	}
}

func TestCloneSharesNothing(t *testing.T) {
	d := Assemble(DefaultSnapshot())
	c := d.Clone()
	if !reflect.DeepEqual(c, d) {
		t.Fatal("clone differs from the original")
	}
	c.Globe.Meridians[2].End.Y = -1
	c.Globe.Angle.Radius = -1
	c.Globe.Chord.Label.Text = "edited"
	c.Globe.Caption.Text = "edited"
	c.Flat.NoonArc.To = -1
	if !reflect.DeepEqual(d, Assemble(DefaultSnapshot())) {
		t.Error("editing the clone changed the original")
	}

	hidden := DefaultSnapshot()
	hidden.ShowAngles = false
	hidden.TimeOfDay = 20
	if c := Assemble(hidden).Clone(); c.Globe.Angle != nil || c.Flat.NoonArc != nil {
		t.Error("nil overlays should stay nil")
	}
}
