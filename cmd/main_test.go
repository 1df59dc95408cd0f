package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/okian/volley/internal/adapters/http/api"
	"github.com/okian/volley/internal/adapters/http/swagger"
	service "github.com/okian/volley/internal/app"
	"github.com/okian/volley/internal/config"
	"github.com/okian/volley/pkg/logger"
	"github.com/okian/volley/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("VOLLEY_ADDR", ":8181")
			_ = os.Setenv("VOLLEY_K_FACTOR", "24")
			defer func() {
				_ = os.Unsetenv("VOLLEY_ADDR")
				_ = os.Unsetenv("VOLLEY_K_FACTOR")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8181")
				convey.So(cfg.KFactor, convey.ShouldEqual, 24)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := service.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := service.New(
					service.WithKFactor(24),
					service.WithBaselineRating(1200),
					service.WithMaxListLimit(50),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When wiring the full router", func() {
			svc := service.New()
			convey.So(svc.Start(context.Background()), convey.ShouldBeNil)
			defer svc.Stop()

			r := chi.NewRouter()
			swagger.Register(r)
			r.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
			api.NewServer(svc, svc).Register(r)

			convey.Convey("Then the health endpoint responds", func() {
				req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})

			convey.Convey("And the metrics endpoint responds", func() {
				req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})

			convey.Convey("And the docs endpoint responds", func() {
				req := httptest.NewRequest(http.MethodGet, "/api-docs", http.NoBody)
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}
