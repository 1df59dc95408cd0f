package config_test

import (
	"testing"

	"github.com/okian/volley/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.KFactor, convey.ShouldEqual, 32)
			convey.So(cfg.BaselineRating, convey.ShouldEqual, 1500)
			convey.So(cfg.MaxListLimit, convey.ShouldEqual, 100)
		})
	})
}
