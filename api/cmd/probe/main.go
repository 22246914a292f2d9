// Command probe checks the landing page health endpoints once and reports
// their status. It exits non-zero unless every endpoint is LIVE.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/irgordon/zentra/api/internal/config"
	"github.com/irgordon/zentra/api/internal/core/domain"
	"github.com/irgordon/zentra/api/internal/telemetry"
	"github.com/irgordon/zentra/api/internal/workers"
)

func main() {
	timeout := flag.Duration("timeout", 10*time.Second, "per-endpoint request timeout")
	verbose := flag.Bool("v", false, "log transport errors")
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger := telemetry.NewLogger(os.Stderr, "development", level)

	fmt.Println("Zentra: probing landing page health endpoints...")

	board := domain.NewDocument(domain.ElemRiskStatus, domain.ElemStressStatus)
	targets, err := workers.BindTargets(config.Endpoints(), board)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: %v\n", err)
		os.Exit(2)
	}

	poller := workers.NewHealthPoller(targets, nil, logger, *timeout, 0)
	if err := poller.RunOnce(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: probe interrupted: %v\n", err)
		os.Exit(2)
	}

	snap := poller.Snapshot()
	healthy := true
	for _, ep := range poller.Endpoints() {
		status := snap[ep.Name].Status
		mark := "PASS"
		if status != domain.StatusLive {
			mark = "FAIL"
			healthy = false
		}
		fmt.Printf("%s: %-7s %-8s %s\n", mark, ep.Name, status, ep.URL)
	}

	fmt.Println("--------------------------------------------------")
	if !healthy {
		fmt.Println("VERDICT: at least one endpoint is not LIVE.")
		os.Exit(1)
	}
	fmt.Println("VERDICT: all endpoints LIVE.")
}
