// GoRetro Catalog
// Copyright (c) 2026 The GoRetro Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of GoRetro Catalog.
//
// GoRetro Catalog is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoRetro Catalog is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoRetro Catalog.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goretro/catalog/internal/telemetry"
	"github.com/goretro/catalog/pkg/cli"
	"github.com/goretro/catalog/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags(nil)

	exit, err := flags.Pre(os.Stdout, os.Args[1:])
	if exit {
		return err
	}

	var logWriters []io.Writer
	if *flags.Watch {
		logWriters = []io.Writer{os.Stderr}
	}

	cfg, err := cli.Setup(*flags.ConfigDir, config.BaseDefaults, logWriters)
	if err != nil {
		return err
	}
	defer telemetry.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			telemetry.Flush()
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	if *flags.Site != "" {
		if err := cli.ApplySite(cfg, *flags.Site); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	defer cli.LogMetrics(reg)

	err = cli.Run(ctx, cli.Env{
		Cfg:      cfg,
		Out:      os.Stdout,
		Registry: reg,
	}, flags)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		return err
	}
	return nil
}
