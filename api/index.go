package handler

import (
	"context"
	"net/http"
	"saapadu/config"
	"saapadu/di"
	"saapadu/shared/logger"
	"sync"
)

var (
	app  *di.App
	once sync.Once
)

// Handler serves one request on a serverless platform. The app is built on the first call.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeApp()
		app.Repositories.Load(context.Background())
		app.Services.Analytics.Refresh(context.Background())
	})

	app.HTTP.ServeHTTP(w, r)
}
