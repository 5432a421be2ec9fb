package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mcvoid/actson"
	"github.com/mcvoid/actson/feeder"
)

var benchChunkSize int

var benchCmd = &cobra.Command{
	Use:   "bench [file]",
	Short: "Time a producer/consumer parse of a JSON document",
	Long: `bench splits a JSON document into fixed-size chunks and feeds them to
the parser through an AsyncFeeder from a separate goroutine, timing how long
the whole event stream takes to drain. It exercises the suspending refill
path that a network or pipe reader would use.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchChunkSize, "chunk-size", 4096, "bytes per slab handed to the parser")
}

func runBench(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	runID := uuid.NewString()
	logger := log.WithFields(log.Fields{
		"run_id": runID,
		"bytes":  len(data),
	})

	af := feeder.NewAsyncFeeder(4)
	p := actson.NewParser(af, parserOptions()...)

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		for off := 0; off < len(data); off += benchChunkSize {
			end := off + benchChunkSize
			if end > len(data) {
				end = len(data)
			}
			if err := af.Send(ctx, data[off:end]); err != nil {
				return fmt.Errorf("send chunk: %w", err)
			}
		}
		af.Close()
		return nil
	})

	var events int
	start := time.Now()

	g.Go(func() error {
		for {
			ev, err := p.NextEvent()
			if err != nil {
				return err
			}
			switch ev {
			case actson.NeedMoreInput:
				if err := af.FillBuf(ctx); err != nil {
					return fmt.Errorf("fill buf: %w", err)
				}
			case actson.Eof:
				return nil
			default:
				events++
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("bench run failed")
		return err
	}

	elapsed := time.Since(start)
	logger.WithFields(log.Fields{
		"events":  events,
		"elapsed": elapsed,
	}).Info("bench run complete")
	fmt.Printf("parsed %d events from %d bytes in %s\n", events, len(data), elapsed)
	return nil
}
