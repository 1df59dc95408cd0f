package model_test

import (
	"testing"
	"time"

	"github.com/okian/volley/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGameType(t *testing.T) {
	Convey("Given the game type enum", t, func() {
		Convey("Then only singles and doubles are valid", func() {
			So(model.Singles.Valid(), ShouldBeTrue)
			So(model.Doubles.Valid(), ShouldBeTrue)
			So(model.GameType("triples").Valid(), ShouldBeFalse)
			So(model.GameType("").Valid(), ShouldBeFalse)
		})

		Convey("Then the team size follows the type", func() {
			So(model.Singles.TeamSize(), ShouldEqual, 1)
			So(model.Doubles.TeamSize(), ShouldEqual, 2)
		})
	})
}

func TestWinner(t *testing.T) {
	Convey("Given games with different score lines", t, func() {
		g := model.Game{Teams: [2]model.Team{{Score: 10}, {Score: 3}}}
		So(g.Winner(), ShouldEqual, 1)

		g.Teams[0].Score, g.Teams[1].Score = 3, 10
		So(g.Winner(), ShouldEqual, 2)

		g.Teams[0].Score, g.Teams[1].Score = 7, 7
		So(g.Winner(), ShouldEqual, 0)
	})
}

func TestClone(t *testing.T) {
	Convey("Given a game with participants", t, func() {
		g := &model.Game{
			ID:        "g1",
			Seq:       3,
			Type:      model.Doubles,
			CreatedAt: time.Now().UTC(),
			Teams: [2]model.Team{
				{PlayerIDs: []string{"p1", "p2"}, Score: 10},
				{PlayerIDs: []string{"p3", "p4"}, Score: 6},
			},
			Participants: []model.Participant{
				{PlayerID: "p1", Team: 1, Score: 10, RatingBefore: 1500, RatingAfter: 1508},
				{PlayerID: "p3", Team: 2, Score: 6, RatingBefore: 1500, RatingAfter: 1492},
			},
		}

		Convey("When the game is cloned", func() {
			c := g.Clone()

			Convey("Then the clone is equal but shares no storage", func() {
				So(c, ShouldResemble, g)

				c.Teams[0].PlayerIDs[0] = "px"
				c.Participants[0].RatingAfter = 9999

				So(g.Teams[0].PlayerIDs[0], ShouldEqual, "p1")
				So(g.Participants[0].RatingAfter, ShouldAlmostEqual, 1508)
			})
		})
	})
}

func TestInvolves(t *testing.T) {
	Convey("Given a game with two participants", t, func() {
		g := model.Game{
			Participants: []model.Participant{
				{PlayerID: "p1", Team: 1},
				{PlayerID: "p2", Team: 2},
			},
		}

		So(g.Involves("p1"), ShouldBeTrue)
		So(g.Involves("p2"), ShouldBeTrue)
		So(g.Involves("p3"), ShouldBeFalse)
	})
}
