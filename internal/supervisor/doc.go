// Cityrec - City-Scoped Business Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cityrec

/*
Package supervisor provides process supervision for Cityrec using suture v4.

The tree has two layers:

	RootSupervisor ("cityrec")
	├── EngineSupervisor ("engine-layer")
	│   └── RecommendService (cache warmup, periodic stats)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, which takes a *slog.Logger; pass
logging.NewSlogLogger() so events land in the zerolog stream.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddEngineService(services.NewRecommendService(engine, services.RecommendServiceConfig{WarmOnStartup: true}, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, 15*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Services live in the services sub-package.
*/
package supervisor
