//go:build ignore

// probe-deployments.go checks a list of Campus deployments for liveness and
// reports each platform's version and service health.
//
// Run with: go run scripts/probe-deployments.go [base-url ...]
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/cortexa-campus/campus-go/pkg/client"
)

// Default deployments to probe when no base URLs are given on the command
// line: local dev, staging, and the shared demo instance.
var defaultTargets = []string{
	"http://localhost:8000/api",
	"https://staging.campus.cortexa.dev/api",
	"https://demo.campus.cortexa.dev/api",
}

type result struct {
	target  string
	health  *client.HealthStatus
	err     error
	latency time.Duration
}

func probe(target string) result {
	c := client.New(
		client.WithBaseURL(target),
		client.WithTimeout(8*time.Second),
		client.WithMaxRetries(0),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	h, err := c.Health(ctx)
	return result{target: target, health: h, err: err, latency: time.Since(start)}
}

func main() {
	targets := os.Args[1:]
	if len(targets) == 0 {
		targets = defaultTargets
	}

	results := make(chan result, len(targets))
	var wg sync.WaitGroup
	for _, t := range targets {
		wg.Add(1)
		go func(t string) {
			defer wg.Done()
			results <- probe(t)
		}(t)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var up, down []result
	for r := range results {
		if r.err != nil {
			down = append(down, r)
		} else {
			up = append(up, r)
		}
	}
	sort.Slice(up, func(i, j int) bool { return up[i].target < up[j].target })
	sort.Slice(down, func(i, j int) bool { return down[i].target < down[j].target })

	fmt.Printf("Campus deployment probe — %d targets, %d up, %d down\n\n", len(targets), len(up), len(down))

	for _, r := range up {
		fmt.Printf("✓ %s  (%dms)\n", r.target, r.latency.Milliseconds())
		fmt.Printf("  status %s, version %s\n", r.health.Status, r.health.Version)
		names := make([]string, 0, len(r.health.Services))
		for name := range r.health.Services {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("    %-14s %s\n", name, r.health.Services[name])
		}
		fmt.Println()
	}

	for _, r := range down {
		fmt.Printf("✗ %s — %v\n", r.target, r.err)
	}

	if len(down) > 0 {
		os.Exit(1)
	}
}
