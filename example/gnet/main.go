package main

import (
	"fmt"
	"time"

	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/logsink"
	"github.com/lixenwraith/logsink/compat"
)

// Echo server that records connection lifecycle in the sink
type echoServer struct {
	gnet.BuiltinEventEngine
	sink *logsink.Sink
}

func (es *echoServer) OnBoot(_ gnet.Engine) gnet.Action {
	es.sink.Log("echo server booted", logsink.SeverityInfo, "echo")
	return gnet.None
}

func (es *echoServer) OnOpen(c gnet.Conn) ([]byte, gnet.Action) {
	es.sink.Log("connection opened from "+c.RemoteAddr().String(), logsink.SeverityInfo, "echo")
	return nil, gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func (es *echoServer) OnClose(c gnet.Conn, err error) gnet.Action {
	if err != nil {
		es.sink.Log("connection closed: "+err.Error(), logsink.SeverityWarning, "echo")
	} else {
		es.sink.Log("connection closed", logsink.SeverityInfo, "echo")
	}
	return gnet.None
}

func main() {
	sink, err := logsink.NewBuilder().
		MaxEntries(2000).
		RetentionPeriod(time.Hour).
		Build()
	if err != nil {
		panic(err)
	}

	// Print entries as the passive observer would
	entries := sink.Subscribe()
	go func() {
		for e := range entries {
			fmt.Printf("[%s] %s: %s\n", e.Severity, e.Source, e.Message)
		}
	}()

	// gnet's own logging also flows into the sink
	gnetAdapter := compat.NewGnetAdapter(sink)

	err = gnet.Run(
		&echoServer{sink: sink},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
