// Package server provides the HTTP server for hestia-task.
//
// The server uses the Gin web framework. Routes are registered by a callback
// on a group rooted at Server.ContextPath (default /api/v1).
//
// # Architecture Overview
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                     HTTP Server :8000                         │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  ginzap.Ginzap (request/response logging, "http")       │  │
//	│  │  ginzap.RecoveryWithZap (panic recovery with stack)     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Router (/api/v1)                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Handlers (registered via callback)                     │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	└───────────────────────────────────────────────────────────────┘
//
// # Server Modes
//
//	┌──────────────┬──────────────────┐
//	│ ServerMode   │ Gin mode         │
//	├──────────────┼──────────────────┤
//	│ "prod"       │ release          │
//	│ anything else│ debug            │
//	└──────────────┴──────────────────┘
//
// Unknown routes return a JSON 404.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
//	    handlers.RegisterHandlers(router, h)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
//
// Start returns nil once Stop has shut the server down. Stop waits for
// in-flight requests until its context ends.
package server
