package main

import (
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/logsink"
)

func main() {
	writers := flag.Int("writers", 16, "concurrent writer goroutines")
	perWriter := flag.Int("count", 10000, "entries per writer")
	maxEntries := flag.Int64("max", 1000, "buffer count cap")
	flag.Parse()

	sink, err := logsink.NewBuilder().
		MaxEntries(*maxEntries).
		RetentionPeriod(time.Hour).
		SubscriberBuffer(1024).
		Build()
	if err != nil {
		panic(err)
	}

	// A deliberately slow subscriber to exercise notification dropping
	entries := sink.Subscribe()
	go func() {
		for range entries {
			time.Sleep(time.Millisecond)
		}
	}()

	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < *writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < *perWriter; j++ {
				opID := fmt.Sprintf("w%d-op%d", i, j)
				sink.StartOperation(opID)
				sink.EndOperation(opID, "operation finished", logsink.SeveritySuccess, "stress")
			}
		}(i)
	}
	wg.Wait()

	elapsed := time.Since(start)
	total := *writers * *perWriter
	fmt.Printf("logged %d timed operations in %v (%.0f entries/s)\n",
		total, elapsed, float64(total)/elapsed.Seconds())

	spew.Dump(sink.Stats())
}
