package sim

import (
	"reflect"
	"time"
)

// SchedulerStats summarizes the steps run so far.
type SchedulerStats struct {
	SystemCount int
	Steps       int64
	// LastTick is the tick the most recent step started at.
	LastTick uint64
	// StepTime is the summed wall time of every system across all steps.
	StepTime time.Duration
	Systems  []SystemStats
}

// SystemStats describes how one step system has performed.
type SystemStats struct {
	Name string
	Runs int64
	Last time.Duration
	Min  time.Duration
	Max  time.Duration
	Avg  time.Duration
	// SlowestTick is the tick of the step in which Max was measured.
	SlowestTick uint64
}

// stepTiming accumulates the wall time one system spends per step.
type stepTiming struct {
	name        string
	runs        int64
	total       time.Duration
	last        time.Duration
	fastest     time.Duration
	slowest     time.Duration
	slowestTick uint64
}

func (t *stepTiming) record(tick uint64, d time.Duration) {
	if t.runs == 0 || d < t.fastest {
		t.fastest = d
	}
	if t.runs == 0 || d > t.slowest {
		t.slowest = d
		t.slowestTick = tick
	}
	t.runs++
	t.total += d
	t.last = d
}

func (t *stepTiming) stats() SystemStats {
	s := SystemStats{
		Name:        t.name,
		Runs:        t.runs,
		Last:        t.last,
		Min:         t.fastest,
		Max:         t.slowest,
		SlowestTick: t.slowestTick,
	}
	if t.runs > 0 {
		s.Avg = t.total / time.Duration(t.runs)
	}
	return s
}

// Scheduler executes the registered systems in registration order, once per
// fixed step.
type Scheduler struct {
	systems  []System
	timings  []stepTiming
	steps    int64
	lastTick uint64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Register appends a system to the step pipeline. Its stats are reported
// under the name of its type.
func (s *Scheduler) Register(system System) {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.systems = append(s.systems, system)
	s.timings = append(s.timings, stepTiming{name: t.Name()})
}

// Once executes all registered systems against frame and then flushes the
// events they emitted to sink. Timings are attributed to the tick the step
// started at, since StepCounterSystem advances frame.Tick midway.
func (s *Scheduler) Once(frame *StepFrame, sink EventSink) {
	tick := frame.Tick
	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].record(tick, time.Since(start))
	}
	s.steps++
	s.lastTick = tick

	frame.Events.Flush(sink)
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Steps:       s.steps,
		LastTick:    s.lastTick,
		Systems:     make([]SystemStats, 0, len(s.timings)),
	}
	for i := range s.timings {
		stats.Systems = append(stats.Systems, s.timings[i].stats())
		stats.StepTime += s.timings[i].total
	}
	return stats
}
