// Larder - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

/*
Package supervisor provides process supervision for Larder using suture v4.

Long-running services are grouped into a small supervisor tree:

	RootSupervisor ("larder")
	├── EngineSupervisor ("engine-layer")
	│   └── StatsReporterService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with backoff once FailureThreshold is
exceeded. Supervisor events are logged through sutureslog onto the
zerolog-backed slog handler from internal/logging.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddEngineService(services.NewStatsReporterService(engine, time.Minute, logger))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

Services live in the services subpackage.
*/
package supervisor
