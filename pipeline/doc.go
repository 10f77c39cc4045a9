// Package pipeline orchestrates a full glyph-art generation run:
// validate → downsample → map → assemble, under a single-flight guard.
//
// What:
//
//   - RenderConfig: the caller-owned per-invocation configuration
//     (character cycle, inversion, target width). No process-wide mutable
//     state exists anywhere in the pipeline.
//   - Renderer.Render: one synchronous, single-threaded pass producing a
//     complete document or an error — never a partial result.
//   - Renderer.Dispatch: the explicit asynchronous task boundary —
//     submit-and-await-completion over a result channel, with the same
//     single-flight discipline instead of ad-hoc timers.
//   - Renderer.Latest: the last successfully published document, replaced
//     atomically by each successful run.
//
// Concurrency model:
//
//   - At most one generation is in flight at a time; concurrent requests
//     queue behind a mutex and run in request order, never in parallel
//     against shared state. Each run has exclusive, run-scoped ownership
//     of its bitmap, sampled field and resulting document.
//   - Context is honored between stages (checked, not preemptive): runs
//     are short and CPU-bound with no blocking I/O inside the pipeline.
//
// Errors:
//
//   - ErrNilBitmap: a run was requested without a decoded source bitmap.
//   - downsample.ErrInvalidDimensions / downsample.ErrEmptyCanvas are
//     propagated from validation and geometry; match with errors.Is.
package pipeline
