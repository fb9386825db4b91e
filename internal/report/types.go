package report

import (
	"runtime"
	"time"
)

// Report is the renderable form of one evaluation run.
type Report struct {
	Meta    Meta       `json:"meta"`
	Config  ConfigInfo `json:"config"`
	Entries []Entry    `json:"entries"`
}

// Meta identifies the run and the environment that produced it.
type Meta struct {
	RunID       string          `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// ConfigInfo records the generation parameters the run used.
type ConfigInfo struct {
	Scheme  string  `json:"scheme"`
	Seed    uint64  `json:"seed"`
	DupRate float64 `json:"dup_rate"`
	FPRate  float64 `json:"fp_rate"`
}

// Entry is one (structure, dataset size) combination.
type Entry struct {
	Structure string        `json:"structure"`
	Kind      string        `json:"kind"`
	Logins    int           `json:"logins"`
	Queries   int           `json:"queries"`
	TP        int64         `json:"tp"`
	TN        int64         `json:"tn"`
	FP        int64         `json:"fp"`
	FN        int64         `json:"fn"`
	Accuracy  float64       `json:"accuracy"`
	FPRate    float64       `json:"fp_rate"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Passed    bool          `json:"passed"`
	Error     string        `json:"error,omitempty"`
}
