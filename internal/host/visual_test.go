package host_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/tidemark/internal/domain/model"
	"github.com/okian/tidemark/internal/host"
	"github.com/okian/tidemark/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func eventTable(rows [][]any) model.Table {
	return model.Table{
		Columns: []model.Column{
			{Name: "when", Roles: map[model.Role]bool{model.RoleDate: true}},
			{Name: "what", Roles: map[model.Role]bool{model.RoleEvent: true}},
			{Name: "details", Roles: map[model.Role]bool{model.RoleDescription: true}},
			{Name: "category", Roles: map[model.Role]bool{model.RoleColor: true}},
		},
		Rows: rows,
	}
}

func TestVisualUpdate(t *testing.T) {
	Convey("Given a visual with default options", t, func() {
		v := host.New()
		ctx := context.Background()
		vp := model.Viewport{Width: 800, Height: 300}

		Convey("When the host delivers an update", func() {
			res, err := v.Update(ctx, host.UpdateRequest{
				Table: eventTable([][]any{
					{"2024-01-01", "Kickoff", "Project start", "milestone"},
					{"2024-06-01", "Ship", "Release day", "milestone"},
				}),
				Viewport: vp,
			})

			Convey("Then the cycle produces records, a scene, and an SVG", func() {
				So(err, ShouldBeNil)
				So(res.Records, ShouldHaveLength, 2)
				So(res.Scene.Markers, ShouldHaveLength, 2)
				So(res.SVG, ShouldContainSubstring, "<svg")
				So(res.UpdateID, ShouldNotBeEmpty)
			})

			Convey("And the result is retained as the last output", func() {
				So(v.Last(), ShouldEqual, res)
				So(v.Updates(), ShouldEqual, 1)
			})

			Convey("And hover simulation works through the interpreter", func() {
				id := res.Scene.Markers[0].ID
				So(res.Interpreter.PointerEnter(id, 100, 150), ShouldBeNil)
				So(res.Scene.Marker(id).Style.Radius, ShouldEqual, 8)
				So(res.Scene.Tooltip.Visible, ShouldBeTrue)
				So(res.Scene.Tooltip.Text, ShouldContainSubstring, "Project start")
			})
		})

		Convey("When a second update reuses a category label", func() {
			first, err := v.Update(ctx, host.UpdateRequest{
				Table:    eventTable([][]any{{"2024-01-01", "A", "", "alpha"}}),
				Viewport: vp,
			})
			So(err, ShouldBeNil)

			second, err := v.Update(ctx, host.UpdateRequest{
				Table:    eventTable([][]any{{"2024-02-01", "B", "", "alpha"}}),
				Viewport: vp,
			})

			Convey("Then the label keeps its color across updates", func() {
				So(err, ShouldBeNil)
				So(second.Records[0].Color, ShouldEqual, first.Records[0].Color)
			})

			Convey("And the previous output was fully replaced", func() {
				So(v.Last(), ShouldEqual, second)
				So(v.Last().Records, ShouldHaveLength, 1)
			})
		})

		Convey("When the update carries an invalid viewport", func() {
			_, err := v.Update(ctx, host.UpdateRequest{
				Table:    eventTable(nil),
				Viewport: model.Viewport{},
			})

			Convey("Then the cycle fails and prior output stays cleared", func() {
				So(errors.Is(err, host.ErrUpdateFailed), ShouldBeTrue)
				So(v.Last(), ShouldBeNil)
			})

			Convey("And a following valid update succeeds", func() {
				res, err := v.Update(ctx, host.UpdateRequest{
					Table:    eventTable(nil),
					Viewport: vp,
				})
				So(err, ShouldBeNil)
				So(res.Scene.Markers, ShouldHaveLength, 0)
			})
		})

		Convey("When the encoding state is reset between updates", func() {
			first, err := v.Update(ctx, host.UpdateRequest{
				Table:    eventTable([][]any{{"2024-01-01", "A", "", "alpha"}, {"2024-01-02", "B", "", "beta"}}),
				Viewport: vp,
			})
			So(err, ShouldBeNil)

			v.ResetEncoding()

			second, err := v.Update(ctx, host.UpdateRequest{
				Table:    eventTable([][]any{{"2024-02-01", "C", "", "beta"}}),
				Viewport: vp,
			})

			Convey("Then label assignment starts over", func() {
				So(err, ShouldBeNil)
				So(second.Records[0].Color, ShouldEqual, first.Records[0].Color)
			})
		})

		Convey("When the visual is destroyed", func() {
			_, err := v.Update(ctx, host.UpdateRequest{Table: eventTable(nil), Viewport: vp})
			So(err, ShouldBeNil)

			v.Destroy()

			Convey("Then retained output is released", func() {
				So(v.Last(), ShouldBeNil)
			})
		})
	})
}

func TestVisualSettings(t *testing.T) {
	Convey("Given a visual with default settings", t, func() {
		v := host.New()

		Convey("When enumerating formatting objects", func() {
			objects := v.EnumerateObjects()

			Convey("Then marker and tooltip sections are described", func() {
				So(objects, ShouldHaveLength, 2)
				So(objects[0].ObjectName, ShouldEqual, "marker")
				So(objects[0].Properties["radius"], ShouldEqual, 5.0)
				So(objects[1].ObjectName, ShouldEqual, "tooltip")
				So(objects[1].Properties["show"], ShouldEqual, true)
			})
		})

		Convey("When applying new settings", func() {
			s := v.Settings()
			s.Marker.HighlightColor = "#123456"
			v.ApplySettings(s)

			Convey("Then the descriptor reflects the change", func() {
				objects := v.EnumerateObjects()
				So(objects[0].Properties["highlightColor"], ShouldEqual, "#123456")
			})

			Convey("And rendering still uses the construction-time style", func() {
				res, err := v.Update(context.Background(), host.UpdateRequest{
					Table:    eventTable([][]any{{"2024-01-01", "A", "", ""}}),
					Viewport: model.Viewport{Width: 800, Height: 300},
				})
				So(err, ShouldBeNil)
				So(res.Scene.Markers[0].Style.Stroke, ShouldEqual, "#000000")
				in := res.Scene.Intents[res.Scene.Markers[0].ID].OnEnter
				So(in.Style.Stroke, ShouldEqual, "#ff0000")
			})
		})
	})
}
