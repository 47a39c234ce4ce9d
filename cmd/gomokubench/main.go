// Command gomokubench exercises the engine end to end: it searches an
// empty board once and reports the search's best move, score, depth
// reached and node throughput. With -serve it also runs the telemetry
// WebSocket server and publishes one progress event with the finished
// search's summary; nothing is published while the search runs. It generalizes
// the teacher's main.go startup/shutdown shape to a one-shot CLI rather
// than a long-lived game server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asebrech/gomoku/engine"
	"github.com/asebrech/gomoku/telemetry"
)

func main() {
	boardSize := flag.Int("size", 15, "board size")
	winLength := flag.Int("win", 5, "stones in a row required to win")
	depth := flag.Int("depth", 8, "max search depth")
	timeBudget := flag.Duration("time", 3*time.Second, "search time budget, 0 for no deadline")
	workers := flag.Int("workers", 4, "number of Lazy-SMP root workers")
	serve := flag.Bool("serve", false, "serve search telemetry on :8080 and publish the finished search's summary")
	flag.Parse()

	cfg := engine.DefaultConfig()
	cfg.BoardSize = *boardSize
	cfg.WinLength = *winLength
	cfg.Workers = *workers
	if err := cfg.Validate(); err != nil {
		log.Fatalf("gomokubench: invalid config: %v", err)
	}

	eng, err := engine.New(cfg)
	if err != nil {
		log.Fatalf("gomokubench: %v", err)
	}

	var hub *telemetry.Hub
	if *serve {
		hub = telemetry.NewHub()
		done := make(chan struct{})
		go hub.Run(done)
		srv := telemetry.NewServer(hub)
		httpServer := &http.Server{Addr: ":8080", Handler: srv.Handler()}
		go func() {
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("gomokubench: telemetry server error: %v", err)
			}
		}()
		log.Println("gomokubench: telemetry listening on :8080/ws/progress")

		sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-sigCtx.Done()
			eng.Stop()
		}()
		defer close(done)
	}

	pos := engine.NewPosition(*boardSize, *winLength)
	start := time.Now()
	result := eng.FindBestMove(pos, *depth, *timeBudget)
	elapsed := time.Since(start)

	if hub != nil {
		hub.Publish(telemetry.ProgressEvent{
			Depth:       result.ReachedDepth,
			Nodes:       result.Stats.Nodes,
			NodesPerSec: float64(result.Stats.Nodes) / elapsed.Seconds(),
			BestRow:     result.BestMove.Row,
			BestCol:     result.BestMove.Col,
			Score:       result.Score,
		})
	}

	fmt.Printf("best move: %s\n", result.BestMove)
	fmt.Printf("score: %.1f\n", result.Score)
	fmt.Printf("depth reached: %d\n", result.ReachedDepth)
	fmt.Printf("nodes: %d in %s (%.0f nodes/sec)\n", result.Stats.Nodes, elapsed, float64(result.Stats.Nodes)/elapsed.Seconds())
	fmt.Printf("tt hit rate: %.1f%%\n", 100*float64(result.Stats.TTHits)/float64(max64(result.Stats.TTProbes, 1)))
	fmt.Printf("tt collisions: %d\n", result.Stats.TTCollisions)
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
