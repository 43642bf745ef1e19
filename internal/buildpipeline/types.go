package buildpipeline

import "time"

// Stage describes a high-level pipeline phase.
type Stage string

const (
	// StageGraph reads and parses the entry and its imports.
	StageGraph Stage = "graph"
	// StageTransform rewrites module interfaces and renders the bundle.
	StageTransform Stage = "transform"
	// StageVerify compiles every module body with the embedded runtime.
	StageVerify Stage = "verify"
	// StageWrite writes the bundle and the optional metafile.
	StageWrite Stage = "write"
	// StageRun executes the bundle.
	StageRun Stage = "run"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file (or for the overall pipeline when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}
