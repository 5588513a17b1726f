// Package face lays out an analog clock face on a transform stack.
package face

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorustyt/asr/common"
	"github.com/gorustyt/asr/transform"
)

// Part names the pieces of the face, each drawn with its own geometry.
type Part int

const (
	SecondMark Part = iota
	HourMark
	QuarterMark
	HandsAxis
	HourHand
	MinuteHand
	SecondHand
	PartCount
)

type ring struct {
	part   Part
	count  int
	size   float32
	radius float32
	z      float32
	tilt   float32
}

var rings = []ring{
	{part: SecondMark, count: 60, size: 0.015, radius: 1},
	{part: HourMark, count: 12, size: 0.04, radius: 1.007, z: 0.1, tilt: common.QuarterPi},
	{part: QuarterMark, count: 4, size: 0.1, radius: 1.007, z: 0.05, tilt: common.QuarterPi},
}

const handsAxisSize = 0.04

var handScales = map[Part]mgl32.Vec3{
	HourHand:   {0.62, 0.03, 1},
	MinuteHand: {0.72, 0.02, 1},
	SecondHand: {0.82, 0.01, 1},
}

// HandAngles returns the rotation about Z of each hand, zero pointing at
// three o'clock. The hour hand moves with the minutes.
func HandAngles(t time.Time) map[Part]float32 {
	hours := float32(t.Hour()%12) + float32(t.Minute())/60
	return map[Part]float32{
		HourHand:   -hours/12*common.TwoPi + common.HalfPi,
		MinuteHand: -float32(t.Minute())/60*common.TwoPi + common.HalfPi,
		SecondHand: -float32(t.Second())/60*common.TwoPi + common.HalfPi,
	}
}

// Lay walks the clock face in draw order. For every part it leaves the
// part's model matrix on top of the Model stack while draw runs. The stack
// depth is unchanged on return.
func Lay(s *transform.Stack, spin float32, t time.Time, draw func(p Part)) {
	s.SetMode(transform.Model)
	s.LoadIdentity()
	s.Rotate(mgl32.Vec3{0, spin, 0})

	for _, r := range rings {
		for i := 0; i < r.count; i++ {
			angle := common.Fraction(i, r.count) * common.TwoPi
			s.Push()
			s.Translate(mgl32.Vec3{common.Cos(angle) * r.radius, common.Sin(angle) * r.radius, r.z})
			if r.tilt != 0 {
				s.Rotate(mgl32.Vec3{0, 0, r.tilt})
			}
			s.Scale(mgl32.Vec3{r.size, r.size, r.size})
			draw(r.part)
			mustPop(s)
		}
	}

	s.Push()
	s.Scale(mgl32.Vec3{handsAxisSize, handsAxisSize, handsAxisSize})
	draw(HandsAxis)
	mustPop(s)

	angles := HandAngles(t)
	for _, p := range []Part{HourHand, MinuteHand, SecondHand} {
		s.Push()
		s.Rotate(mgl32.Vec3{0, 0, angles[p]})
		s.Scale(handScales[p])
		s.Translate(mgl32.Vec3{0.5, 0, 0})
		draw(p)
		mustPop(s)
	}
}

func mustPop(s *transform.Stack) {
	if err := s.Pop(); err != nil {
		panic(err)
	}
}
