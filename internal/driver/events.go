package driver

// Stage identifies a phase of the analysis pipeline for one file.
type Stage uint8

const (
	StageLoad Stage = iota
	StageParse
	StageAnalyze
)

func (s Stage) String() string {
	switch s {
	case StageLoad:
		return "load"
	case StageParse:
		return "parse"
	case StageAnalyze:
		return "analyze"
	default:
		return "unknown"
	}
}

// Status describes how far a file has gotten through its current stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports pipeline progress. File is empty for pipeline-wide
// events such as a stage transition.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// emit sends an event without blocking; a nil or full channel drops it.
// Progress reporting never stalls the pipeline.
func emit(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	select {
	case events <- ev:
	default:
	}
}
