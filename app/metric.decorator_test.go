package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/go-arrower/recordstore/app"
)

func TestMeteredRequest(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		reader := metric.NewManualReader()
		handler := app.NewMeteredRequest(newMeterProvider(reader), app.TestSuccessRequestHandler[request, response]())

		_, err := handler.H(ctx, request{})
		assert.NoError(t, err)

		counter := collectCounter(t, reader)
		require.Len(t, counter.DataPoints, 1)
		assert.Equal(t, int64(1), counter.DataPoints[0].Value)

		status, _ := counter.DataPoints[0].Attributes.Value("status")
		assert.Equal(t, "success", status.AsString())

		name, _ := counter.DataPoints[0].Attributes.Value("usecase")
		assert.Equal(t, "app_test.request", name.AsString())
	})

	t.Run("failed request", func(t *testing.T) {
		t.Parallel()

		reader := metric.NewManualReader()
		handler := app.NewMeteredRequest(newMeterProvider(reader), app.TestFailureRequestHandler[request, response]())

		_, err := handler.H(ctx, request{})
		assert.Error(t, err)

		counter := collectCounter(t, reader)
		require.Len(t, counter.DataPoints, 1)

		status, _ := counter.DataPoints[0].Attributes.Value("status")
		assert.Equal(t, "failure", status.AsString())
	})
}

func TestMeteredQuery(t *testing.T) {
	t.Parallel()

	reader := metric.NewManualReader()
	handler := app.NewMeteredQuery(newMeterProvider(reader), app.TestSuccessQueryHandler[request, response]())

	_, _ = handler.H(ctx, request{})
	_, _ = handler.H(ctx, request{})

	counter := collectCounter(t, reader)
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(2), counter.DataPoints[0].Value)
	assert.True(t, counter.DataPoints[0].Attributes.HasValue(attribute.Key("usecase")))
}

func newMeterProvider(reader metric.Reader) *metric.MeterProvider {
	return metric.NewMeterProvider(metric.WithReader(reader))
}

func collectCounter(t *testing.T, reader metric.Reader) metricdata.Sum[int64] {
	t.Helper()

	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, "recordstore.application", rm.ScopeMetrics[0].Scope.Name)

	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name == "usecases" {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)

			return sum
		}
	}

	t.Fatal("usecases counter not recorded")

	return metricdata.Sum[int64]{}
}
