package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	uuid "github.com/satori/go.uuid"
)

type Report struct {
	// Configuration
	RunId          uuid.UUID
	Config         Config
	Verify         bool
	GCPauseMetrics bool

	// Results
	Result        *Result
	Replay        *Result
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Deterministic reports whether the replay, if any, reproduced the run.
func (r *Report) Deterministic() bool {
	return r.Replay == nil || r.Replay.Digest == r.Result.Digest
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tethered Soak Report

Run {{.RunId}}

## Configuration
- **Seed:** {{printf "%q" .Config.Settings.Seed}}
- **Frames:** {{.Config.Frames}}
- **Frame Delta:** {{.Config.MinFrame}} .. {{.Config.MaxFrame}}
- **Stall Every:** {{.Config.StallEvery}} frames
- **Step:** {{.Config.Settings.StepDuration}}
- **Arena:** {{.Config.Settings.Resolution.Width}}x{{.Config.Settings.Resolution.Height}}
- **Spawn:** every {{.Config.Settings.SpawnInterval}} steps, cap {{.Config.Settings.SpawnCap}}

## Simulation
- **Ticks:** {{.Result.Ticks}}
- **Frames Rendered:** {{.Result.Rendered}}
- **Frames Discarded:** {{.Result.Driver.Discarded}}
- **Final Score:** {{printf "%.3f" .Result.Score}}
- **Players Alive:** {{.Result.Alive}}
- **Peak Enemies:** {{.Result.MaxEnemies}}
- **Wall Time:** {{.Result.Elapsed}}

| Event | Count |
|---|---|
{{- range .Result.Events}}
| {{.Kind}} | {{.Count}} |
{{- end}}

## Step Systems
| System | Runs | Avg | Min | Max | Slowest Tick |
|---|---|---|---|---|---|
{{- range .Result.Scheduler.Systems}}
| {{.Name}} | {{.Runs}} | {{.Avg}} | {{.Min}} | {{.Max}} | {{.SlowestTick}} |
{{- end}}

- **Total Step Time:** {{.Result.Scheduler.StepTime}}

## Determinism
- **Digest:** {{hex .Result.Digest}}
{{- if .Verify}}
- **Replay Digest:** {{hex .Replay.Digest}}
- **Result:** {{if .Deterministic}}identical{{else}}MISMATCH{{end}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"hex": func(v uint64) string {
			return fmt.Sprintf("%016x", v)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
