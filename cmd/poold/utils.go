// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/liquidstake/pool/log"
	"github.com/liquidstake/pool/lvldb"
	"github.com/liquidstake/pool/metrics"
	"github.com/liquidstake/pool/programs/stakepool"
	"github.com/liquidstake/pool/solana"
)

func initLogger(ctx *cli.Context) error {
	verbosity := ctx.Uint64(verbosityFlag.Name)
	if verbosity > log.LegacyLevelTrace {
		return errors.Errorf("invalid verbosity %d", verbosity)
	}
	useColor := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	log.Init(int(verbosity), os.Stderr, useColor)
	return nil
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		logger.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

// openLedgerDB opens the ledger under dataDir, or an in-memory one if dataDir is empty.
func openLedgerDB(dataDir string) (*lvldb.LevelDB, error) {
	if dataDir == "" {
		return lvldb.NewMem()
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, errors.Wrapf(err, "create data dir at '%v'", dataDir)
	}
	dir := filepath.Join(dataDir, "ledger.db")
	db, err := lvldb.New(dir, lvldb.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open ledger database at '%v'", dir)
	}
	return db, nil
}

func startMetricsServer(addr string) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen metrics addr [%v]", addr)
	}

	router := mux.NewRouter()
	router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
	handler := handlers.CompressHandler(router)

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	var g errgroup.Group
	g.Go(func() error {
		srv.Serve(listener)
		return nil
	})
	return "http://" + listener.Addr().String() + "/metrics", func() {
		srv.Close()
		g.Wait()
	}, nil
}

func printPool(w io.Writer, key solana.Pubkey, pool *stakepool.Pool, dump bool) {
	if dump {
		spew.Fdump(w, pool)
		return
	}
	rate := pool.ExchangeRate
	fmt.Fprintf(w, "Pool          %v\n", key)
	fmt.Fprintf(w, "Manager       %v\n", pool.Manager)
	fmt.Fprintf(w, "Token mint    %v\n", pool.StTokenMint)
	fmt.Fprintf(w, "Exchange rate epoch %d, supply %d, balance %d\n", rate.ComputedInEpoch, rate.StTokenSupply, rate.BaseBalance)
	fmt.Fprintf(w, "Fees          treasury %d%%, validation %d%%, developer %d%%, appreciation %d%%\n",
		pool.FeePolicy.TreasuryFee, pool.FeePolicy.ValidationFee, pool.FeePolicy.DeveloperFee, pool.FeePolicy.AppreciationShare)
	fmt.Fprintf(w, "Deposited     %d lamports in %d deposits\n", pool.Metrics.TotalDeposited, pool.Metrics.DepositAmount.Count)
	fmt.Fprintf(w, "Validators    %d/%d\n", pool.Validators.Len(), pool.Validators.MaximumEntries)
	for _, v := range pool.Validators.Entries {
		fmt.Fprintf(w, "  %v active=%v fee=%v\n", v.Pubkey, v.Entry.Active, v.Entry.FeeAddress)
	}
	fmt.Fprintf(w, "Maintainers   %d/%d\n", pool.Maintainers.Len(), pool.Maintainers.MaximumEntries)
	for _, m := range pool.Maintainers.Entries {
		fmt.Fprintf(w, "  %v\n", m.Pubkey)
	}
}
