package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordRow(t *testing.T) {
	okBefore := testutil.ToFloat64(IngestedRows.WithLabelValues(SourceBulk, OutcomeSuccess))
	errBefore := testutil.ToFloat64(IngestedRows.WithLabelValues(SourceBulk, OutcomeError))

	RecordRow(SourceBulk, nil)
	RecordRow(SourceBulk, nil)
	RecordRow(SourceBulk, errors.New("category field cannot be empty"))

	assert.Equal(t, okBefore+2, testutil.ToFloat64(IngestedRows.WithLabelValues(SourceBulk, OutcomeSuccess)))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(IngestedRows.WithLabelValues(SourceBulk, OutcomeError)))
}

func TestRecordJob(t *testing.T) {
	before := testutil.ToFloat64(JobRecords.WithLabelValues("skipped"))

	RecordJob("national_stats", "SUCCESS", 10, 3)

	assert.Equal(t, before+3, testutil.ToFloat64(JobRecords.WithLabelValues("skipped")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(JobRuns.WithLabelValues("national_stats", "SUCCESS")), 1.0)
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/stats/kpis", "200"))

	RecordAPIRequest("GET", "/api/v1/stats/kpis", 200, 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/stats/kpis", "200")))
}
