// Package observe adds OpenTelemetry tracing, metrics and structured
// logging around pipelines without changing what they deliver.
//
// Runs:
//
//	obs, err := observe.New("teams", observe.WithLogger(logger.Get("teams")))
//	err = obs.Run(ctx, pipeline.Fuse(names(company), sink))
//
// Every run gets a span named pipeline.run, a fresh run id, start and
// completion log entries, and the pipeline.runs, pipeline.errors and
// pipeline.run.duration instruments.
//
// Stages:
//
//	counted := observe.Transform(obs, "members", members)
//
// Stage wrappers count each delivered value on pipeline.values and, when
// value logging is enabled, log it at debug level. Those counts are keyed
// by pipeline and stage and are not linked to the run span.
//
// Export:
//
//	shutdown, err := observe.Install(ctx, "teams", "production", cfg, log)
//	defer shutdown(context.Background())
//
// Install points the global providers at an OTLP/HTTP collector; observers
// built by FromConfig then export through it.
package observe
