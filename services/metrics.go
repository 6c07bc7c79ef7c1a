// Package services - services/metrics.go
package services

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"

	"academy-admin/logger"
)

// Namespace for all academy metrics
const metricsNamespace = "AcademyAdmin"

// MetricsPublisher records lead intake and push delivery counters.
type MetricsPublisher interface {
	LeadCreated(kind string)
	BroadcastCompleted(report BroadcastReport)
}

// NoopMetrics is used when METRICS_ENABLED is off.
type NoopMetrics struct{}

func (NoopMetrics) LeadCreated(string)                 {}
func (NoopMetrics) BroadcastCompleted(BroadcastReport) {}

// CloudWatchMetrics publishes to CloudWatch with one shared client.
type CloudWatchMetrics struct {
	client cloudwatchiface.CloudWatchAPI
}

// NewCloudWatchMetrics builds a client from the default AWS credential chain.
func NewCloudWatchMetrics() (*CloudWatchMetrics, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, err
	}
	return &CloudWatchMetrics{client: cloudwatch.New(sess)}, nil
}

// LeadCreated pushes a LeadsCreated count for the lead kind.
func (m *CloudWatchMetrics) LeadCreated(kind string) {
	m.put("LeadsCreated", 1, cloudwatch.StandardUnitCount, "LeadKind", kind)
}

// BroadcastCompleted pushes the per-outcome counts of one broadcast.
func (m *CloudWatchMetrics) BroadcastCompleted(report BroadcastReport) {
	m.put("PushDelivered", float64(report.Delivered), cloudwatch.StandardUnitCount, "", "")
	m.put("PushPruned", float64(report.Pruned), cloudwatch.StandardUnitCount, "", "")
	m.put("PushFailed", float64(report.Failed), cloudwatch.StandardUnitCount, "", "")
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func (m *CloudWatchMetrics) put(metricName string, value float64, unit, dimName, dimValue string) {
	datum := &cloudwatch.MetricDatum{
		MetricName: aws.String(metricName),
		Timestamp:  aws.Time(time.Now()),
		Value:      aws.Float64(value),
		Unit:       aws.String(unit),
	}
	if dimName != "" {
		datum.Dimensions = []*cloudwatch.Dimension{
			{Name: aws.String(dimName), Value: aws.String(dimValue)},
		}
	}

	_, err := m.client.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{datum},
	})
	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
