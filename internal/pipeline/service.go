// Package pipeline orchestrates rating: decode, resolve, select, split,
// charge, emit.
package pipeline

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	cdrdomain "github.com/hexatel/callrater/internal/cdr/domain"
	"github.com/hexatel/callrater/internal/cdr/decoder"
	"github.com/hexatel/callrater/internal/charge"
	"github.com/hexatel/callrater/internal/config"
	"github.com/hexatel/callrater/internal/metrics"
	"github.com/hexatel/callrater/internal/rates/resolver"
	"github.com/hexatel/callrater/internal/rates/selector"
	"github.com/hexatel/callrater/internal/tariff"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// maxLineBytes bounds a single CDR line; switch exports stay far below it.
const maxLineBytes = 1 << 20

type Service struct {
	log      *zap.Logger
	genID    *snowflake.Node
	decoder  *decoder.Decoder
	resolver *resolver.Resolver
	selector *selector.Selector
	tariffs  *config.TariffConfigHolder
	metrics  *metrics.RatingMetrics
}

type Params struct {
	fx.In

	Log      *zap.Logger
	GenID    *snowflake.Node
	Decoder  *decoder.Decoder
	Resolver *resolver.Resolver
	Selector *selector.Selector
	Tariffs  *config.TariffConfigHolder
	Metrics  *metrics.RatingMetrics
}

func New(p Params) *Service {
	return &Service{
		log:      p.Log.Named("pipeline.service"),
		genID:    p.GenID,
		decoder:  p.Decoder,
		resolver: p.Resolver,
		selector: p.Selector,
		tariffs:  p.Tariffs,
		metrics:  p.Metrics,
	}
}

// Process rates every non-blank line of the input in order. Rating is
// per-record independent and never fatal: malformed records degrade to
// default-rated output rather than aborting the batch.
func (s *Service) Process(ctx context.Context, r io.Reader) ([]cdrdomain.RatedRecord, error) {
	start := time.Now()

	// The tariff config is sampled once per batch so a hot reload cannot
	// split one file across two policies.
	tc := s.tariffs.Get()
	policy, err := tariff.PolicyByName(tc.Policy)
	if err != nil {
		return nil, err
	}
	calc := charge.NewCalculator(tc.BlockSeconds)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	var out []cdrdomain.RatedRecord
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, s.rateLine(line, policy, calc))
	}
	if err := scanner.Err(); err != nil {
		return out, err
	}

	s.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	s.log.Info("batch rated",
		zap.Int("records", len(out)),
		zap.String("policy", policy.Name()),
		zap.Int("block_seconds", tc.BlockSeconds),
	)
	return out, nil
}

func (s *Service) rateLine(line string, policy tariff.Policy, calc charge.Calculator) cdrdomain.RatedRecord {
	rec := s.decoder.CallRecord(s.decoder.Decode(line))
	if rec.TimeFallback {
		s.metrics.TimestampFallbacks.Inc()
	}

	outcome := s.resolver.Resolve(rec.Destination)
	if outcome.SawAmbiguity {
		s.metrics.AmbiguousPrefixes.Inc()
	}
	if outcome.UsedFallback {
		s.metrics.ClassifierFallbacks.Inc()
	}

	economic := resolver.EconomicAccess(rec.Destination)
	rate := s.selector.Select(outcome.CountryCode, outcome.Resolved, rec.Class, economic)
	if rate.RateID == "default" {
		s.metrics.DefaultedDestinations.Inc()
	}

	split := tariff.SplitInterval(policy, rec.AnswerAt, rec.EndAt)
	result := calc.Charge(split, rate)
	s.metrics.RecordsRated.Inc()

	var countryCode *int
	if outcome.Resolved && rec.Class != cdrdomain.ClassLandline && rec.Class != cdrdomain.ClassMobile {
		code := outcome.CountryCode
		countryCode = &code
	}

	return cdrdomain.RatedRecord{
		ID:               s.genID.Generate(),
		NetType:          rec.Raw[cdrdomain.FieldNetType],
		BillType:         rec.Raw[cdrdomain.FieldBillType],
		Subscriber:       rec.Subscriber,
		Destination:      rec.Destination,
		CallClass:        rec.Class,
		Economical:       economic,
		CountryCode:      countryCode,
		AnsDate:          rec.Raw[cdrdomain.FieldAnsDate],
		AnsTime:          rec.Raw[cdrdomain.FieldAnsTime],
		EndDate:          rec.Raw[cdrdomain.FieldEndDate],
		EndTime:          rec.Raw[cdrdomain.FieldEndTime],
		ConversationTime: rec.Raw[cdrdomain.FieldConversationTime],

		CalculatedConversationTime: split.TotalSeconds(),
		StandardSeconds:            split.StandardSeconds,
		ReducedSeconds:             split.ReducedSeconds,
		TotalCharges:               result.Total,
	}
}
