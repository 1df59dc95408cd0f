package rating_test

import (
	"testing"

	"github.com/okian/volley/internal/domain/rating"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExpected(t *testing.T) {
	Convey("Given two ratings", t, func() {
		Convey("When both sides are equal", func() {
			So(rating.Expected(1500, 1500), ShouldAlmostEqual, 0.5)
		})

		Convey("When side A is 400 points stronger", func() {
			e := rating.Expected(1900, 1500)
			So(e, ShouldAlmostEqual, 10.0/11.0, 0.0001)
		})

		Convey("Then expectations are complementary", func() {
			So(rating.Expected(1612, 1473)+rating.Expected(1473, 1612), ShouldAlmostEqual, 1.0)
		})
	})
}

func TestCalculatorUpdate(t *testing.T) {
	Convey("Given a calculator with the default K-factor", t, func() {
		calc := rating.New()

		Convey("When an evenly rated side A wins", func() {
			deltaA, deltaB := calc.Update(1500, 1500, 10, 3)

			Convey("Then A gains exactly half of K", func() {
				So(deltaA, ShouldAlmostEqual, 16.0)
				So(deltaB, ShouldAlmostEqual, -16.0)
			})
		})

		Convey("When an evenly rated side A loses", func() {
			deltaA, deltaB := calc.Update(1500, 1500, 2, 10)
			So(deltaA, ShouldAlmostEqual, -16.0)
			So(deltaB, ShouldAlmostEqual, 16.0)
		})

		Convey("When the match is a draw", func() {
			Convey("Then equal sides do not move", func() {
				deltaA, deltaB := calc.Update(1500, 1500, 7, 7)
				So(deltaA, ShouldAlmostEqual, 0.0)
				So(deltaB, ShouldAlmostEqual, 0.0)
			})

			Convey("And the weaker side still gains", func() {
				deltaA, deltaB := calc.Update(1400, 1600, 5, 5)
				So(deltaA, ShouldBeGreaterThan, 0)
				So(deltaB, ShouldBeLessThan, 0)
			})
		})

		Convey("Then deltas are always antisymmetric", func() {
			cases := [][4]float64{
				{1500, 1500, 10, 0},
				{1516, 1484, 5, 10},
				{1800, 1200, 10, 9},
				{1234.5, 1678.9, 3, 3},
			}
			for _, c := range cases {
				deltaA, deltaB := calc.Update(c[0], c[1], int(c[2]), int(c[3]))
				So(deltaA, ShouldAlmostEqual, -deltaB)
			}
		})

		Convey("And an upset moves more than an expected win", func() {
			upset, _ := calc.Update(1400, 1600, 10, 5)
			expected, _ := calc.Update(1600, 1400, 10, 5)
			So(upset, ShouldBeGreaterThan, expected)
		})
	})

	Convey("Given a calculator with a custom K-factor", t, func() {
		calc := rating.New(rating.WithKFactor(16))

		Convey("Then the swing halves", func() {
			deltaA, _ := calc.Update(1500, 1500, 10, 0)
			So(deltaA, ShouldAlmostEqual, 8.0)
			So(calc.KFactor(), ShouldAlmostEqual, 16.0)
		})
	})

	Convey("Given a non-positive K-factor option", t, func() {
		calc := rating.New(rating.WithKFactor(-5))

		Convey("Then the default is kept", func() {
			So(calc.KFactor(), ShouldAlmostEqual, rating.DefaultKFactor)
		})
	})
}

func TestTeamRating(t *testing.T) {
	Convey("Given member ratings", t, func() {
		Convey("When the side has one player", func() {
			So(rating.TeamRating([]float64{1516}), ShouldAlmostEqual, 1516)
		})

		Convey("When the side has two players", func() {
			So(rating.TeamRating([]float64{1500, 1600}), ShouldAlmostEqual, 1550)
		})

		Convey("When the side is empty", func() {
			So(rating.TeamRating(nil), ShouldAlmostEqual, rating.DefaultBaseline)
		})
	})
}
