package pipeline

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/hexatel/callrater/internal/cdr/decoder"
	"github.com/hexatel/callrater/internal/clock"
	"github.com/hexatel/callrater/internal/config"
	"github.com/hexatel/callrater/internal/metrics"
	ratesdomain "github.com/hexatel/callrater/internal/rates/domain"
	"github.com/hexatel/callrater/internal/rates/resolver"
	"github.com/hexatel/callrater/internal/rates/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// line builds a pipe-delimited CDR line with the rating-relevant fields
// set; trailing schema fields are left absent, which the decoder treats
// as empty.
func line(ansDate, ansTime, endDate, endTime, caller, nature, called string) string {
	tokens := make([]string, 15)
	tokens[0] = "11"
	tokens[1] = "01"
	tokens[4] = ansDate
	tokens[5] = ansTime
	tokens[6] = endDate
	tokens[7] = endTime
	tokens[8] = "      25"
	tokens[11] = caller
	tokens[13] = nature
	tokens[14] = called
	return strings.Join(tokens, "|")
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	table := ratesdomain.NewTable([]ratesdomain.RateEntry{
		{RateID: "r-6088", CountryCode: 6088, DialPlan: "6088", StandardRate: 0.06, ReducedRate: 0.05, AccessCode: ratesdomain.AccessCodeStandard},
		{RateID: "r-6088e", CountryCode: 6088, DialPlan: "6088", StandardRate: 0.04, ReducedRate: 0.03, AccessCode: ratesdomain.AccessCodeEconomic},
		{RateID: "r-81", CountryCode: 81, DialPlan: "81", StandardRate: 0.35, ReducedRate: 0.25, AccessCode: ratesdomain.AccessCodeStandard},
	})
	holder, err := config.NewStaticTariffHolder(config.DefaultTariffConfig())
	require.NoError(t, err)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	log := zap.NewNop()
	clk := clock.NewFakeClock(time.Date(2024, 8, 13, 12, 0, 0, 0, time.UTC))

	return New(Params{
		Log:      log,
		GenID:    node,
		Decoder:  decoder.New(clk, log),
		Resolver: resolver.New(table, nil, log),
		Selector: selector.New(table, holder),
		Tariffs:  holder,
		Metrics:  metrics.NewNop(),
	})
}

func TestProcessInternationalCall(t *testing.T) {
	s := newTestService(t)

	// Tuesday daytime, 25 seconds to a resolvable destination.
	input := line("13082024", "092305", "13082024", "092330", "0123456789", "3", "0060881234567")
	out, err := s.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	assert.Equal(t, "11", rec.NetType)
	assert.Equal(t, "0123456789", rec.Subscriber)
	assert.Equal(t, "0060881234567", rec.Destination)
	require.NotNil(t, rec.CountryCode)
	assert.Equal(t, 6088, *rec.CountryCode)
	assert.False(t, rec.Economical)
	assert.Equal(t, int64(25), rec.CalculatedConversationTime)
	assert.Equal(t, int64(25), rec.StandardSeconds)
	assert.Equal(t, int64(0), rec.ReducedSeconds)
	// One billed minute at the standard international rate.
	assert.Equal(t, 0.06, rec.TotalCharges)
	assert.NotZero(t, rec.ID)
}

func TestProcessEconomicAccessCall(t *testing.T) {
	s := newTestService(t)

	input := line("13082024", "092305", "13082024", "092330", "0123456789", "3", "09560881234567")
	out, err := s.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	assert.True(t, rec.Economical)
	require.NotNil(t, rec.CountryCode)
	assert.Equal(t, 6088, *rec.CountryCode)
	assert.Equal(t, 0.04, rec.TotalCharges)
}

func TestProcessDomesticLandline(t *testing.T) {
	s := newTestService(t)

	input := line("13082024", "092305", "13082024", "092330", "0123456789", "0", "0387654321")
	out, err := s.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	assert.Nil(t, rec.CountryCode)
	// Landline class override: one minute at 0.05.
	assert.Equal(t, 0.05, rec.TotalCharges)
}

func TestProcessLandlineFiveStandardMinutes(t *testing.T) {
	s := newTestService(t)

	// Weekday 10:00 to 10:05: five standard minutes at the landline rate.
	input := line("13082024", "100000", "13082024", "100500", "0123456789", "0", "0387654321")
	out, err := s.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	assert.Equal(t, int64(300), rec.StandardSeconds)
	assert.Equal(t, 0.25, rec.TotalCharges)
}

func TestProcessLandlineFiveReducedMinutes(t *testing.T) {
	s := newTestService(t)

	// Weekday 03:00 to 03:05: five reduced minutes at the landline rate.
	input := line("13082024", "030000", "13082024", "030500", "0123456789", "0", "0387654321")
	out, err := s.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	assert.Equal(t, int64(300), rec.ReducedSeconds)
	assert.Equal(t, 0.15, rec.TotalCharges)
}

func TestProcessUnresolvedUsesDefaultRate(t *testing.T) {
	s := newTestService(t)

	// No dial plan covers "7"; with no classifier the default rate applies.
	input := line("13082024", "092305", "13082024", "092330", "0123456789", "3", "0079261234567")
	out, err := s.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	assert.Nil(t, rec.CountryCode)
	assert.Equal(t, 0.10, rec.TotalCharges)
}

func TestProcessReducedRateEvening(t *testing.T) {
	s := newTestService(t)

	// Tuesday 20:15, entirely inside the evening reduced window.
	input := line("13082024", "201500", "13082024", "201525", "0123456789", "3", "0060881234567")
	out, err := s.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	assert.Equal(t, int64(0), rec.StandardSeconds)
	assert.Equal(t, int64(25), rec.ReducedSeconds)
	assert.Equal(t, 0.05, rec.TotalCharges)
}

func TestProcessTimestampFallback(t *testing.T) {
	s := newTestService(t)

	// Garbage answer date: both instants collapse to the injected clock,
	// giving a zero-duration, zero-charge record instead of a failure.
	input := line("99999999", "092305", "13082024", "092330", "0123456789", "3", "0060881234567")
	out, err := s.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 1)

	rec := out[0]
	assert.Equal(t, int64(0), rec.CalculatedConversationTime)
	assert.Equal(t, 0.00, rec.TotalCharges)
}

func TestProcessSkipsBlankLines(t *testing.T) {
	s := newTestService(t)

	input := "\n" +
		line("13082024", "092305", "13082024", "092330", "0123456789", "3", "0060881234567") +
		"\n\n   \n" +
		line("13082024", "100000", "13082024", "100100", "0123456789", "3", "00811234567890") +
		"\n"
	out, err := s.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.NotNil(t, out[1].CountryCode)
	assert.Equal(t, 81, *out[1].CountryCode)
}

func TestProcessPreservesOrderAndRawFields(t *testing.T) {
	s := newTestService(t)

	input := line("13082024", "092305", "13082024", "092330", "0111111111", "3", "0060881234567") + "\n" +
		line("13082024", "093000", "13082024", "093100", "0222222222", "3", "0060881234567")
	out, err := s.Process(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "0111111111", out[0].Subscriber)
	assert.Equal(t, "0222222222", out[1].Subscriber)
	assert.Equal(t, "13082024", out[0].AnsDate)
	assert.Equal(t, "092305", out[0].AnsTime)
	assert.Equal(t, "25", out[0].ConversationTime)
}

func TestProcessCancelledContext(t *testing.T) {
	s := newTestService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := line("13082024", "092305", "13082024", "092330", "0123456789", "3", "0060881234567")
	_, err := s.Process(ctx, strings.NewReader(input))
	assert.ErrorIs(t, err, context.Canceled)
}
