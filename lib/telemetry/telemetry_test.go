package telemetry

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestInstrumentPerfStats(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// runs against the global (noop) meter, must start and stop cleanly
	InstrumentPerfStats(ctx)
	cancel()
	time.Sleep(time.Millisecond * 10)
}

func TestSetupForTestingConcurrent(t *testing.T) {
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cleanup := SetupForTesting(t, "test:telemetry-concurrent")
			cleanup()
		}()
	}
	wg.Wait()
}
