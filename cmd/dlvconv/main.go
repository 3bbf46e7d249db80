// dlvconv rates a pipe-delimited switch export offline and writes the
// rated records as CSV or JSON. It runs without a database: the rate
// table is loaded straight from a JSON file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/hexatel/callrater/internal/cdr/decoder"
	"github.com/hexatel/callrater/internal/clock"
	"github.com/hexatel/callrater/internal/config"
	"github.com/hexatel/callrater/internal/export"
	"github.com/hexatel/callrater/internal/logger"
	"github.com/hexatel/callrater/internal/metrics"
	"github.com/hexatel/callrater/internal/pipeline"
	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
	ratesrepository "github.com/hexatel/callrater/internal/rates/repository"
	"github.com/hexatel/callrater/internal/rates/resolver"
	"github.com/hexatel/callrater/internal/rates/selector"
	"go.uber.org/zap"
)

func main() {
	var (
		inPath    = flag.String("in", "-", "input DLV file, or - for stdin")
		ratesPath = flag.String("rates", "", "rate table JSON file (required)")
		outPath   = flag.String("out", "-", "output file, or - for stdout")
		format    = flag.String("format", "csv", "output format: csv or json")
		policy    = flag.String("policy", config.PolicyWeekendEvening, "reduced-rate policy")
		block     = flag.Int("block", 60, "billing block in seconds (6, 30 or 60)")
	)
	flag.Parse()

	log, err := logger.New("info", "dlvconv", "cli", "0.1.0")
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*inPath, *ratesPath, *outPath, *format, *policy, *block, log); err != nil {
		log.Fatal("conversion failed", zap.Error(err))
	}
}

func run(inPath, ratesPath, outPath, format, policy string, block int, log *zap.Logger) error {
	if ratesPath == "" {
		return fmt.Errorf("-rates is required")
	}

	entries, err := ratesrepository.LoadFile(ratesPath)
	if err != nil {
		return err
	}
	table := ratesdomain.NewTable(entries)

	tc := config.DefaultTariffConfig()
	tc.Policy = policy
	tc.BlockSeconds = block
	holder, err := config.NewStaticTariffHolder(tc)
	if err != nil {
		return err
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	clk := clock.NewSystemClock()
	svc := pipeline.New(pipeline.Params{
		Log:      log,
		GenID:    node,
		Decoder:  decoder.New(clk, log),
		Resolver: resolver.New(table, resolver.NewPhoneClassifier(), log),
		Selector: selector.New(table, holder),
		Tariffs:  holder,
		Metrics:  metrics.NewNop(),
	})

	in := os.Stdin
	if inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	records, err := svc.Process(context.Background(), in)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "csv":
		err = export.WriteCSV(out, records)
	case "json":
		err = export.WriteJSON(out, records)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	log.Info("conversion complete",
		zap.Int("records", len(records)),
		zap.String("format", format),
	)
	return nil
}
