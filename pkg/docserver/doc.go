// Package docserver serves a published openapi.Document over HTTP.
//
// The server mounts the document routes (/openapi.json, /openapi.yaml and the
// Swagger UI under /docs/) next to a /healthz readiness probe, tags every
// request with a chi request id and shuts down gracefully when the context is
// cancelled or the process receives an interrupt or TERM signal.
//
//	srv := docserver.New(doc,
//		docserver.WithAddr(settings.DocsAddr),
//		docserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx); err != nil {
//		log.Error("docs server", logger.Error(err))
//	}
package docserver
