package handler

import (
	"net/http"
	"sync"

	"conectapro/config"
	"conectapro/di"
	"conectapro/shared/logger"
	transport "conectapro/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler is the serverless entrypoint; the dependency graph is built on the first invocation.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.Configure(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
