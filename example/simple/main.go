package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/logsink"
)

func main() {
	sink, err := logsink.NewBuilder().
		MaxEntries(100).
		RetentionPeriod(time.Hour).
		Build()
	if err != nil {
		panic(err)
	}

	// Passive observer rendering entries as they arrive
	entries := sink.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			fmt.Printf("[%s] %s: %s\n", e.Severity, e.Source, e.Message)
		}
	}()

	sink.Log("application starting", logsink.SeverityInfo, "main")

	sink.StartOperation("warmup")
	time.Sleep(50 * time.Millisecond)
	sink.EndOperation("warmup", "warmup complete", logsink.SeveritySuccess, "main")

	// End without a start produces the fixed error entry
	sink.EndOperation("missing", "never logged", logsink.SeverityInfo, "main")

	sink.LogWithStack("caught something odd", logsink.SeverityException, "worker",
		"main -> process -> decode")

	// Query the buffer
	for _, e := range sink.FilterBySeverity(logsink.SeverityError) {
		fmt.Println("error entry:", e.Message)
	}

	// Export the full buffer as delimited text
	if err := sink.ExportDelimitedText("./logsink-export.csv"); err != nil {
		fmt.Fprintln(os.Stderr, "export failed:", err)
		os.Exit(1)
	}
	fmt.Println("exported", sink.Len(), "entries to ./logsink-export.csv")

	sink.Unsubscribe(entries)
	<-done
}
