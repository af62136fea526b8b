package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	uuid "github.com/satori/go.uuid"

	"github.com/plus3/tethered/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file overlaying the defaults.")
	seed := flag.String("seed", "", "Override the random seed.")
	frames := flag.Int("frames", 20000, "The number of frame callbacks to feed the driver.")
	stallEvery := flag.Int("stall-every", 5000, "Insert a stalled frame every n frames (0 disables).")
	verify := flag.Bool("verify", false, "Run twice and fail if the two digests differ.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	verbose := flag.Bool("verbose", false, "Log spawns and lifecycle transitions.")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	settings := sim.DefaultSettings()
	if *configPath != "" {
		var err error
		if settings, err = sim.LoadSettings(*configPath); err != nil {
			fatalf("Failed to load settings: %v", err)
		}
	}
	if *seed != "" {
		settings.Seed = *seed
	}

	cfg := DefaultConfig(settings)
	cfg.Frames = *frames
	cfg.StallEvery = *stallEvery

	report := &Report{
		RunId:          uuid.Must(uuid.NewV4()),
		Config:         cfg,
		Verify:         *verify,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("[Soak] run %s: %d frames, seed %q", report.RunId, cfg.Frames, settings.Seed)
	result, err := runSoak(cfg)
	if err != nil {
		fatalf("Soak run failed: %v", err)
	}
	report.Result = result

	if *verify {
		replay, err := runSoak(cfg)
		if err != nil {
			fatalf("Replay failed: %v", err)
		}
		report.Replay = replay
	}

	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if !report.Deterministic() {
		fatalf("Replay digest %016x does not match %016x", report.Replay.Digest, report.Result.Digest)
	}
}

func fatalf(format string, args ...any) {
	log.SetOutput(os.Stderr)
	log.Fatalf(format, args...)
}
