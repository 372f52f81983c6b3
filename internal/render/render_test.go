package render_test

import (
	"context"
	"testing"

	"github.com/okian/tidemark/internal/domain/model"
	"github.com/okian/tidemark/internal/render"
	. "github.com/smartystreets/goconvey/convey"
)

func rec(date, dateDisplay, event, desc string) model.Record {
	return model.Record{
		Date:         date,
		DateDisplay:  dateDisplay,
		Event:        event,
		EventDisplay: event,
		Description:  desc,
	}
}

func TestRender(t *testing.T) {
	Convey("Given a renderer with default configuration", t, func() {
		r := render.New()
		ctx := context.Background()
		vp := model.Viewport{Width: 1000, Height: 400}

		Convey("When rendering records spanning three dates", func() {
			records := []model.Record{
				rec("2024-01-01", "01/01/2024", "Kickoff", "Project start"),
				rec("2024-01-16", "16/01/2024", "Review", "Midpoint review"),
				rec("2024-01-31", "31/01/2024", "Ship", "Release day"),
			}
			scene, err := r.Render(ctx, records, vp)

			Convey("Then the baseline is centered and inset 50 from each edge", func() {
				So(err, ShouldBeNil)
				So(scene.Baseline.X1, ShouldEqual, 50)
				So(scene.Baseline.X2, ShouldEqual, 950)
				So(scene.Baseline.Y1, ShouldEqual, 200)
				So(scene.Baseline.Y2, ShouldEqual, 200)
			})

			Convey("And one marker per distinct date sits on the time scale", func() {
				So(scene.Markers, ShouldHaveLength, 3)
				So(scene.Markers[0].X, ShouldEqual, 50)
				So(scene.Markers[1].X, ShouldEqual, 500)
				So(scene.Markers[2].X, ShouldEqual, 950)
				for _, m := range scene.Markers {
					So(m.Y, ShouldEqual, 200)
				}
			})

			Convey("And markers rest at radius 5, black, stroke width 2", func() {
				for _, m := range scene.Markers {
					So(m.Style.Radius, ShouldEqual, 5)
					So(m.Style.Fill, ShouldEqual, "#000000")
					So(m.Style.Stroke, ShouldEqual, "#000000")
					So(m.Style.StrokeWidth, ShouldEqual, 2)
				}
			})

			Convey("And every marker has enter, move, and leave intents", func() {
				for _, m := range scene.Markers {
					intents, ok := scene.Intents[m.ID]
					So(ok, ShouldBeTrue)
					So(intents.OnEnter.Event, ShouldEqual, render.PointerEnter)
					So(intents.OnEnter.Style.Radius, ShouldEqual, 8)
					So(intents.OnEnter.Style.Stroke, ShouldEqual, "#ff0000")
					So(intents.OnEnter.Duration.Milliseconds(), ShouldEqual, 200)
					So(intents.OnLeave.Style.Radius, ShouldEqual, 5)
				}
			})
		})

		Convey("When multiple records share one date", func() {
			records := []model.Record{
				rec("2024-01-01", "01/01/2024", "First", "one"),
				rec("2024-01-01", "01/01/2024", "Second", "two"),
				rec("2024-01-01", "01/01/2024", "Third", "three"),
			}
			scene, err := r.Render(ctx, records, vp)

			Convey("Then they collapse into exactly one marker", func() {
				So(err, ShouldBeNil)
				So(scene.Markers, ShouldHaveLength, 1)
				So(scene.Markers[0].Records, ShouldHaveLength, 3)
			})

			Convey("And the degenerate domain centers the marker in the range", func() {
				So(scene.Markers[0].X, ShouldEqual, 500)
			})

			Convey("And the tooltip text lists every record separated by a blank line", func() {
				text := scene.Intents[scene.Markers[0].ID].OnEnter.TooltipText
				So(text, ShouldEqual,
					"01/01/2024\nFirst\none\n\n01/01/2024\nSecond\ntwo\n\n01/01/2024\nThird\nthree")
			})
		})

		Convey("When the record set is empty", func() {
			scene, err := r.Render(ctx, nil, vp)

			Convey("Then only the baseline is drawn and nothing panics", func() {
				So(err, ShouldBeNil)
				So(scene.Markers, ShouldHaveLength, 0)
				So(scene.Baseline.X2, ShouldEqual, 950)
			})
		})

		Convey("When a record's date cannot be parsed", func() {
			records := []model.Record{
				rec("garbage", "Invalid Date", "Bad", ""),
				rec("2024-01-01", "01/01/2024", "Good", ""),
			}
			scene, err := r.Render(ctx, records, vp)

			Convey("Then the unparseable date produces no marker", func() {
				So(err, ShouldBeNil)
				So(scene.Markers, ShouldHaveLength, 1)
				So(scene.Markers[0].Date, ShouldEqual, "2024-01-01")
			})
		})

		Convey("When the viewport is degenerate", func() {
			_, err := r.Render(ctx, nil, model.Viewport{Width: 0, Height: 100})

			Convey("Then it should report an invalid viewport", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "invalid viewport")
			})
		})
	})

	Convey("Given a renderer with custom style options", t, func() {
		r := render.New(
			render.WithAxisInset(25),
			render.WithMarkerStyle(4, 1, "#333333"),
			render.WithHoverStyle(10, 4, "#00ff00"),
			render.WithTooltipOffset(20),
		)

		Convey("When rendering a single record", func() {
			scene, err := r.Render(context.Background(),
				[]model.Record{rec("2024-01-01", "01/01/2024", "E", "")},
				model.Viewport{Width: 100, Height: 50},
			)

			Convey("Then the custom geometry and styles apply", func() {
				So(err, ShouldBeNil)
				So(scene.Baseline.X1, ShouldEqual, 25)
				So(scene.Markers[0].Style.Radius, ShouldEqual, 4)
				So(scene.Markers[0].Style.Fill, ShouldEqual, "#333333")
				in := scene.Intents[scene.Markers[0].ID].OnEnter
				So(in.Style.Radius, ShouldEqual, 10)
				So(in.Style.Stroke, ShouldEqual, "#00ff00")
				So(in.OffsetX, ShouldEqual, 20)
			})
		})
	})
}

func TestTooltipText(t *testing.T) {
	Convey("Given grouped records", t, func() {
		records := []model.Record{
			rec("2024-01-01", "01/01/2024", "A", "first"),
			rec("2024-01-01", "01/01/2024", "B", "second"),
		}

		Convey("When building tooltip text", func() {
			text := render.TooltipText(records)

			Convey("Then records appear in encounter order with blank-line separators", func() {
				So(text, ShouldEqual, "01/01/2024\nA\nfirst\n\n01/01/2024\nB\nsecond")
			})
		})
	})
}
