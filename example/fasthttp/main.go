package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/logsink"
	"github.com/lixenwraith/logsink/compat"
)

var sink *logsink.Sink

func main() {
	var err error
	sink, err = logsink.NewBuilder().
		MaxEntries(5000).
		RetentionPeriod(6 * time.Hour).
		Build()
	if err != nil {
		panic(err)
	}

	// Route fasthttp's internal logging into the sink
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		sink,
		compat.WithDefaultSeverity(logsink.SeverityInfo),
		compat.WithSeverityDetector(customSeverityDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:         "logsink-demo",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	sink.Log("server starting on :8080", logsink.SeverityInfo, "main")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	// Time every request through the operation registry
	opID := fmt.Sprintf("req-%d", ctx.ID())
	sink.StartOperation(opID)
	defer sink.EndOperation(opID, "handled "+path, logsink.SeveritySuccess, "http")

	switch path {
	case "/logs":
		ctx.SetContentType("text/plain")
		for _, e := range sink.All() {
			fmt.Fprintf(ctx, "%s [%s] %s: %s\n",
				e.Time.Format(time.RFC3339), e.Severity, e.Source, e.Message)
		}
	case "/export":
		if err := sink.ExportDelimitedText("./requests.csv"); err != nil {
			ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
			return
		}
		fmt.Fprintln(ctx, "exported to ./requests.csv")
	default:
		ctx.SetContentType("text/plain")
		fmt.Fprintf(ctx, "Hello! Path: %s\n", path)
	}
}

func customSeverityDetector(msg string) (logsink.Severity, bool) {
	// Inspect specific fasthttp message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return logsink.SeverityWarning, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return logsink.SeverityError, true
	}

	// Fall back to default detection
	return compat.DetectSeverity(msg)
}
