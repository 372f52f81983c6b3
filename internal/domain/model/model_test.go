package model_test

import (
	"testing"

	"github.com/okian/tidemark/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolveRoles(t *testing.T) {
	Convey("Given a table with one column per role", t, func() {
		table := model.Table{
			Columns: []model.Column{
				{Name: "when", Roles: map[model.Role]bool{model.RoleDate: true}},
				{Name: "what", Roles: map[model.Role]bool{model.RoleEvent: true}},
				{Name: "details", Roles: map[model.Role]bool{model.RoleDescription: true}},
				{Name: "category", Roles: map[model.Role]bool{model.RoleColor: true}},
				{Name: "kind", Roles: map[model.Role]bool{model.RoleSymbol: true}},
			},
		}

		Convey("When resolving roles", func() {
			idx := model.ResolveRoles(table)

			Convey("Then every role maps to its column index", func() {
				So(idx[model.RoleDate], ShouldEqual, 0)
				So(idx[model.RoleEvent], ShouldEqual, 1)
				So(idx[model.RoleDescription], ShouldEqual, 2)
				So(idx[model.RoleColor], ShouldEqual, 3)
				So(idx[model.RoleSymbol], ShouldEqual, 4)
			})
		})
	})

	Convey("Given a table where two columns carry the same role", t, func() {
		table := model.Table{
			Columns: []model.Column{
				{Name: "first", Roles: map[model.Role]bool{model.RoleDate: true}},
				{Name: "second", Roles: map[model.Role]bool{model.RoleDate: true}},
			},
		}

		Convey("When resolving roles", func() {
			idx := model.ResolveRoles(table)

			Convey("Then the last scanned column wins", func() {
				So(idx[model.RoleDate], ShouldEqual, 1)
			})
		})
	})

	Convey("Given a table with no role flags at all", t, func() {
		table := model.Table{
			Columns: []model.Column{
				{Name: "misc"},
				{Name: "other", Roles: map[model.Role]bool{}},
			},
		}

		Convey("When resolving roles", func() {
			idx := model.ResolveRoles(table)

			Convey("Then every role stays unresolved", func() {
				So(idx, ShouldBeEmpty)
				_, ok := idx[model.RoleDate]
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestParseDate(t *testing.T) {
	Convey("Given the accepted date layouts", t, func() {
		Convey("When parsing ISO dates", func() {
			ts, ok := model.ParseDate("2024-03-05")

			So(ok, ShouldBeTrue)
			So(ts.Year(), ShouldEqual, 2024)
			So(int(ts.Month()), ShouldEqual, 3)
			So(ts.Day(), ShouldEqual, 5)
		})

		Convey("When parsing timestamps with times", func() {
			ts, ok := model.ParseDate("2024-03-05 14:30")

			So(ok, ShouldBeTrue)
			So(ts.Hour(), ShouldEqual, 14)
		})

		Convey("When parsing slash layouts", func() {
			ts, ok := model.ParseDate("05/03/2024")

			So(ok, ShouldBeTrue)
			So(ts.Day(), ShouldEqual, 5)
			So(int(ts.Month()), ShouldEqual, 3)
		})

		Convey("When parsing surrounding whitespace", func() {
			_, ok := model.ParseDate("  2024-01-01  ")
			So(ok, ShouldBeTrue)
		})

		Convey("When parsing garbage", func() {
			_, ok := model.ParseDate("not a date")
			So(ok, ShouldBeFalse)
		})

		Convey("When parsing the empty string", func() {
			_, ok := model.ParseDate("")
			So(ok, ShouldBeFalse)
		})
	})
}
