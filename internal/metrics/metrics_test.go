package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/branches/:branchSlug/coaches", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/branches/:branchSlug/coaches", "200"))
	assert.Equal(t, float64(1), count)
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("GET", "/gyms", "200", 0.1)
	RecordHTTPRequest("GET", "/gyms", "200", 0.2)
	RecordHTTPRequest("GET", "/gyms", "500", 0.05)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/gyms", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/gyms", "500")))
}

func TestRecordBranchDataQuery(t *testing.T) {
	BranchDataQueriesTotal.Reset()

	RecordBranchDataQuery("coach", "ok")
	RecordBranchDataQuery("coach", "ok")
	RecordBranchDataQuery("membership", "error")

	assert.Equal(t, float64(2), testutil.ToFloat64(BranchDataQueriesTotal.WithLabelValues("coach", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BranchDataQueriesTotal.WithLabelValues("membership", "error")))
}

func TestRecordBranchResolution(t *testing.T) {
	BranchResolutionsTotal.Reset()

	RecordBranchResolution("resolved")
	RecordBranchResolution("cached")
	RecordBranchResolution("cached")

	assert.Equal(t, float64(1), testutil.ToFloat64(BranchResolutionsTotal.WithLabelValues("resolved")))
	assert.Equal(t, float64(2), testutil.ToFloat64(BranchResolutionsTotal.WithLabelValues("cached")))
}

func TestRecordBranchSelection(t *testing.T) {
	BranchSelectionsTotal.Reset()

	RecordBranchSelection("eagle-gym", "qoopa")

	assert.Equal(t, float64(1), testutil.ToFloat64(BranchSelectionsTotal.WithLabelValues("eagle-gym", "qoopa")))
}

func TestRecordCacheLookup(t *testing.T) {
	CacheLookupsTotal.Reset()

	RecordCacheLookup("hit")
	RecordCacheLookup("miss")
	RecordCacheLookup("miss")

	assert.Equal(t, float64(1), testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("miss")))
}

func TestRecordBookingLink(t *testing.T) {
	BookingLinksTotal.Reset()

	RecordBookingLink("membership")
	RecordBookingLink("personal_training")

	assert.Equal(t, float64(1), testutil.ToFloat64(BookingLinksTotal.WithLabelValues("membership")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BookingLinksTotal.WithLabelValues("personal_training")))
}

func TestSetActiveSessions(t *testing.T) {
	SetActiveSessions(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(ActiveSessions))

	SetActiveSessions(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(ActiveSessions))
}
