package format

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gompdf/invoicepdf/internal/i18n"
	"github.com/gompdf/invoicepdf/internal/invoice"
	"github.com/gompdf/invoicepdf/internal/words"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatCurrency(1234.5, invoice.USD, i18n.English))
	assert.Equal(t, "-$5.00", FormatCurrency(-5, invoice.USD, i18n.English))
	assert.Equal(t, "¥1,235", FormatCurrency(1234.6, invoice.JPY, i18n.English))
	assert.Equal(t, "1.234,50 €", FormatCurrency(1234.5, invoice.EUR, i18n.German))
	assert.True(t, strings.HasSuffix(FormatCurrency(10, invoice.PLN, i18n.Polish), " zł"))
	assert.Equal(t, Sentinel, FormatCurrency(math.NaN(), invoice.USD, i18n.English))
	assert.Equal(t, Sentinel, FormatCurrency(math.Inf(1), invoice.USD, i18n.English))
}

func TestFormatCurrencySignFollowsRounding(t *testing.T) {
	tests := []struct {
		amount float64
		cur    invoice.Currency
		want   string
	}{
		{-0.004, invoice.USD, "$0.00"},
		{-0.005, invoice.USD, "-$0.01"},
		{-0.4, invoice.JPY, "¥0"},
		{-0.6, invoice.JPY, "-¥1"},
		{0.004, invoice.USD, "$0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.amount, tt.cur, i18n.English), "%v %s", tt.amount, tt.cur)
	}
}

func TestFormatCurrencyIsIndependentOfOtherLanguages(t *testing.T) {
	want := make(map[i18n.Language]string)
	for _, l := range i18n.Supported() {
		want[l] = FormatCurrency(98765.43, invoice.EUR, l)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for _, l := range i18n.Supported() {
			wg.Add(1)
			go func(l i18n.Language) {
				defer wg.Done()
				assert.Equal(t, want[l], FormatCurrency(98765.43, invoice.EUR, l))
				assert.Equal(t, "$1,234.50", FormatCurrency(1234.5, invoice.USD, i18n.English))
			}(l)
		}
	}
	wg.Wait()
}

func TestFormatNumberAndQuantity(t *testing.T) {
	assert.Equal(t, "1,234.50", FormatNumber(1234.5, i18n.English))
	assert.Equal(t, "3", FormatQuantity(3, i18n.English))
	assert.Equal(t, "2.5", FormatQuantity(2.5, i18n.English))
	assert.Equal(t, "2,5", FormatQuantity(2.5, i18n.German))
	assert.Equal(t, Sentinel, FormatQuantity(math.NaN(), i18n.English))
}

func TestFormatDate(t *testing.T) {
	d := invoice.NewDate(2025, time.January, 31)

	tests := []struct {
		pattern string
		lang    i18n.Language
		want    string
	}{
		{"MMM D, YYYY", i18n.English, "Jan 31, 2025"},
		{"MMMM D, YYYY", i18n.English, "January 31, 2025"},
		{"YYYY-MM-DD", i18n.English, "2025-01-31"},
		{"DD.MM.YYYY", i18n.Polish, "31.01.2025"},
		{"YYYY.MM.DD", i18n.English, "2025.01.31"},
		{"MM/DD/YY", i18n.English, "01/31/25"},
		{"[Due] D MMMM", i18n.English, "Due 31 January"},
		{"dddd", i18n.English, "Friday"},
		{"D MMMM YYYY", i18n.German, "31 Januar 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(d, tt.pattern, tt.lang))
		})
	}

	assert.Empty(t, FormatDate(invoice.Date{}, "YYYY", i18n.English))
	assert.Contains(t, FormatDate(d, "D MMMM YYYY", i18n.Polish), "stycz")
}

func TestFormatDateIsIndependentOfOtherLanguages(t *testing.T) {
	d := invoice.NewDate(2025, time.March, 3)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.Equal(t, "März 2025", FormatDate(d, "MMMM YYYY", i18n.German))
		}()
		go func() {
			defer wg.Done()
			assert.Equal(t, "March 2025", FormatDate(d, "MMMM YYYY", i18n.English))
		}()
	}
	wg.Wait()
}

func TestAmountInWords(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid input gives sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := NewMockErrorReporter(ctrl)

		for _, v := range []float64{-5, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
			assert.Equal(t, Sentinel, AmountInWords(ctx, v, i18n.English, reporter))
		}
	})

	t.Run("spells the integer part", func(t *testing.T) {
		got := AmountInWords(ctx, 1234.99, i18n.English, NopReporter{})
		assert.NotEqual(t, "1234", got)
		assert.Contains(t, got, "thousand")
		assert.Equal(t, got, AmountInWords(ctx, 1234, i18n.English, NopReporter{}))
		assert.Equal(t, "tysiąc dwieście trzydzieści cztery", AmountInWords(ctx, 1234.5, i18n.Polish, nil))
	})

	t.Run("rounds to cents before taking the integer part", func(t *testing.T) {
		assert.Equal(t, AmountInWords(ctx, 1, i18n.English, nil), AmountInWords(ctx, 0.999, i18n.English, nil))
		assert.Equal(t, "00", FractionalPart(0.999))
		assert.Equal(t, AmountInWords(ctx, 1234, i18n.English, nil), AmountInWords(ctx, 1234.994, i18n.English, nil))
		assert.Equal(t, "99", FractionalPart(1234.994))
	})

	t.Run("speller failure falls back and reports once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reporter := NewMockErrorReporter(ctrl)
		reporter.EXPECT().
			Report(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, err error, tags map[string]string) {
				assert.True(t, errors.Is(err, words.ErrOutOfRange))
				assert.Equal(t, "en", tags["language"])
			}).
			Times(1)

		assert.Equal(t, "10000000000000", AmountInWords(ctx, 1e13, i18n.English, reporter))
	})
}

func TestFractionalPart(t *testing.T) {
	assert.Equal(t, "50", FractionalPart(1234.5))
	assert.Equal(t, "07", FractionalPart(0.07))
	assert.Equal(t, "00", FractionalPart(12))
	assert.Equal(t, "99", FractionalPart(10.99))
	assert.Equal(t, "10", FractionalPart(0.1+0.2-0.2))
	assert.Equal(t, Sentinel, FractionalPart(-1))
	assert.Equal(t, Sentinel, FractionalPart(math.NaN()))
	assert.Equal(t, Sentinel, FractionalPart(math.Inf(1)))
}

func TestFormatVATAndLabels(t *testing.T) {
	assert.Equal(t, "23%", FormatVAT(invoice.Percent(23)))
	assert.Equal(t, "5.5%", FormatVAT(invoice.Percent(5.5)))
	assert.Equal(t, "NP", FormatVAT(invoice.Code("NP")))

	assert.Equal(t, "VAT", TaxLabel("  "))
	assert.Equal(t, "VAT rate", Label("{tax} rate", ""))
	assert.Equal(t, "GST rate", Label("{tax} rate", "GST"))

	f := New(context.Background(), i18n.English, "Sales tax", nil)
	assert.Equal(t, "Total excluding Sales tax", f.Label("Total excluding {tax}"))
	assert.Equal(t, "$1,234.50", f.Currency(1234.5, invoice.USD))
}

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := NewLogReporter(zap.New(core))

	r.Report(context.Background(), errors.New("boom"), map[string]string{"language": "pl"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "formatting fallback", entry.Message)
	assert.Equal(t, "pl", entry.ContextMap()["language"])
	assert.Equal(t, "boom", entry.ContextMap()["error"])
}

func TestSentryReporter(t *testing.T) {
	var (
		mu     sync.Mutex
		events []*sentry.Event
	)
	r, err := NewSentryReporter(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			mu.Lock()
			defer mu.Unlock()
			events = append(events, event)
			return nil
		},
	})
	require.NoError(t, err)

	r.Report(context.Background(), errors.New("speller failed"), map[string]string{"language": "de"})
	r.Flush(time.Second)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	assert.Equal(t, "de", events[0].Tags["language"])
	require.NotEmpty(t, events[0].Exception)
	assert.Equal(t, "speller failed", events[0].Exception[0].Value)
}

func TestMultiReporter(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewMockErrorReporter(ctrl)
	b := NewMockErrorReporter(ctrl)
	a.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	b.EXPECT().Report(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	MultiReporter{a, b}.Report(context.Background(), errors.New("x"), nil)
}
