package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/tarun-vijay/examseat/core/logger"
	coremetrics "github.com/tarun-vijay/examseat/core/metrics"
)

// InfluxSink writes allocation events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string, log logger.Logger) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      log,
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink if the health check fails, so an unreachable store never
// blocks a batch run.
func NewInfluxSinkWithFallback(url, token, org, bucket string, log logger.Logger) coremetrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket, log)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			log.Errorf("influx health check error: %v", err)
		} else {
			log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSessionResult writes the session outcome as a line protocol point.
func (s *InfluxSink) RecordSessionResult(res coremetrics.SessionResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("allocation_session").
		AddTag("run_id", res.RunID).
		AddTag("session", string(res.Session.Label)).
		AddTag("outcome", res.Outcome).
		AddField("date", res.Session.DateString()).
		AddField("candidates", res.Candidates).
		AddField("rooms_used", res.RoomsUsed).
		SetTime(res.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordCourseResult writes the course allocation as a line protocol point.
func (s *InfluxSink) RecordCourseResult(res coremetrics.CourseResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("allocation_course").
		AddTag("run_id", res.RunID).
		AddTag("session", string(res.Session.Label)).
		AddTag("course", res.Course).
		AddField("date", res.Session.DateString()).
		AddField("allotted", res.Allotted).
		AddField("unplaced", res.Unplaced).
		SetTime(res.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }
