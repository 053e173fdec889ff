// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	log "github.com/sirupsen/logrus"

	"go.amzn.com/flowport/inspect"
	"go.amzn.com/flowport/port"
)

type options struct {
	Count       int    `long:"count" default:"3000" description:"number of items to send through the channel"`
	Start       int    `long:"start" default:"19" description:"first item value"`
	Policy      string `long:"policy" default:"async" choice:"async" choice:"unified" description:"synchronization policy"`
	MaxJitterUs int    `long:"max-jitter-us" default:"100" description:"max random delay between operations, microseconds"`
	InspectAddr string `long:"inspect-addr" default:"" description:"address for the inspection HTTP server, empty to disable"`
	LogLevel    string `long:"log-level" default:"info" description:"log level"`
}

func main() {
	opts := getCLIArgs()
	setLogLevel(opts.LogLevel)

	var policy port.Policy[int]
	switch opts.Policy {
	case "unified":
		policy = port.NewUnifiedAsyncPolicy[int]()
	default:
		policy = port.NewAsyncPolicy[int]()
	}

	var src port.Source[int]
	var snk port.Sink[int]
	coord, err := port.Attach(&src, &snk, policy)
	if err != nil {
		log.WithError(err).Fatal("Failed to attach channel")
	}
	log.WithField("channel", coord.ID()).Info("channel attached")

	if opts.InspectAddr != "" {
		registry := inspect.NewRegistry()
		registry.Register(coord)
		go startInspectServer(opts.InspectAddr, registry)
	}

	received := make([]int, 0, opts.Count)
	var g errgroup.Group

	g.Go(func() error {
		for i := opts.Start; i < opts.Start+opts.Count; i++ {
			jitter(opts.MaxJitterUs)
			if ok, err := src.Inject(i); err != nil || !ok {
				return fmt.Errorf("inject %d failed: ok=%v err=%v", i, ok, err)
			}
			if err := coord.Fill(); err != nil {
				return err
			}
			if err := coord.Push(); err != nil {
				return err
			}
		}
		coord.Exhausted()
		return nil
	})

	g.Go(func() error {
		for {
			jitter(opts.MaxJitterUs)
			if err := coord.Pull(); err != nil {
				if !errors.Is(err, port.ErrDone) {
					return err
				}
				// The source may exhaust right after its final swap,
				// with the last item still sitting in the sink slot.
				if v, ok, err := snk.Extract(); err == nil && ok {
					received = append(received, v)
				}
				return nil
			}
			v, ok, err := snk.Extract()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("pull returned but sink slot is empty")
			}
			received = append(received, v)
			if err := coord.Drain(); err != nil {
				if errors.Is(err, port.ErrDone) {
					return nil
				}
				return err
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Fatal("Channel run failed")
	}

	if sp, ok := policy.(port.StatsProvider); ok {
		stats := sp.Stats()
		log.WithFields(log.Fields{
			"sourceSwaps": stats.SourceSwaps,
			"sinkSwaps":   stats.SinkSwaps,
			"sourceWaits": stats.SourceWaits,
			"sinkWaits":   stats.SinkWaits,
		}).Info("policy stats")
	}

	if err := port.Detach(&src, &snk); err != nil {
		log.WithError(err).Fatal("Failed to detach channel")
	}
	log.WithFields(log.Fields{
		"sent":     opts.Count,
		"received": len(received),
		"state":    coord.State().String(),
	}).Info("channel run complete")
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.IgnoreUnknown)
	if _, err := parser.ParseArgs(os.Args); err != nil {
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}
	return opts
}

func setLogLevel(logLevel string) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func startInspectServer(addr string, registry *inspect.Registry) {
	log.WithField("addr", addr).Info("inspection server starting")
	if err := http.ListenAndServe(addr, inspect.NewHTTPRouter(registry)); err != nil {
		log.WithError(err).Error("inspection server stopped")
	}
}

func jitter(maxUs int) {
	if maxUs <= 0 {
		return
	}
	time.Sleep(time.Duration(rand.Intn(maxUs)) * time.Microsecond)
}
