// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// poold bootstraps a liquid staking pool on a local ledger and runs deposits
// against it.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/liquidstake/pool/log"
	"github.com/liquidstake/pool/metrics"
)

var (
	version   string
	gitCommit string
	gitTag    string

	logger = log.WithContext("pkg", "poold")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func run(ctx *cli.Context) error {
	defer func() { logger.Info("exited") }()

	if err := initLogger(ctx); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx.String(configFlag.Name))
	if err != nil {
		return err
	}

	exitSignal := handleExitSignal()

	enableMetrics := ctx.Bool(enableMetricsFlag.Name)
	if enableMetrics {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := startMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return errors.Wrap(err, "start metrics server")
		}
		defer closeFunc()
		logger.Info("metrics server started", "url", url)
	}

	db, err := openLedgerDB(ctx.String(dataDirFlag.Name))
	if err != nil {
		return err
	}
	defer func() { logger.Info("closing ledger database..."); db.Close() }()

	node, err := newPoolNode(db, cfg)
	if err != nil {
		return err
	}
	if err := node.bootstrap(); err != nil {
		return err
	}
	if err := node.runDeposits(exitSignal); err != nil {
		return err
	}

	state, err := node.state()
	if err != nil {
		return err
	}
	printPool(os.Stdout, node.key, state, ctx.Bool(dumpFlag.Name))

	if enableMetrics {
		logger.Info("serving metrics until interrupted")
		<-exitSignal.Done()
	}
	return nil
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "poold",
		Usage:     "Liquid staking pool runner",
		Copyright: "2025 The VeChainThor developers",
		Flags: []cli.Flag{
			configFlag,
			dataDirFlag,
			verbosityFlag,
			enableMetricsFlag,
			metricsAddrFlag,
			dumpFlag,
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
