package loop

import (
	"context"
	"time"
)

// Run starts d and feeds it a frame at the given interval until the context
// is cancelled, then stops it. Frame timestamps are measured from the call
// to Run.
func Run(ctx context.Context, d *Driver, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	origin := time.Now()
	d.Start()
	defer d.Stop()

	d.Frame(0)
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			d.Frame(now.Sub(origin))
		}
	}
}
