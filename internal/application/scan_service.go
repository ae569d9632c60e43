package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/phishguard/phishguard-api/internal/domain/classifier"
	"github.com/phishguard/phishguard-api/internal/domain/entity"
	"github.com/phishguard/phishguard-api/internal/domain/repository"
)

// recentScansLimit caps how many sampled scans the analytics response carries.
const recentScansLimit = 100

// ScanService runs the scan pipeline: validate, classify, persist, and read
// back history and aggregate statistics.
type ScanService struct {
	Scans      repository.ScanRepository
	Classifier classifier.Classifier
	// SampleSize bounds the analytics phishing/legitimate split. Counting over
	// a sample instead of the full table is a deliberate cost tradeoff; the
	// legitimate count is derived by subtraction and is approximate whenever
	// the table outgrows the sample.
	SampleSize int
	Logger     *logrus.Logger
}

func NewScanService(scans repository.ScanRepository, cls classifier.Classifier, sampleSize int, logger *logrus.Logger) *ScanService {
	if sampleSize <= 0 {
		sampleSize = 1000
	}
	return &ScanService{Scans: scans, Classifier: cls, SampleSize: sampleSize, Logger: logger}
}

// Submit classifies the input and writes one immutable scan record for the
// caller. Classification strictly precedes the write; on classifier failure
// nothing is persisted, and on write failure the verdict is carried in the
// error so the result is not silently lost.
func (s *ScanService) Submit(ctx context.Context, userID, text string, kind entity.InputType) (*entity.Scan, error) {
	if strings.TrimSpace(text) == "" || !kind.Valid() {
		return nil, ErrInvalidInput
	}

	verdict, err := s.Classifier.Classify(ctx, text, kind)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("input_type", kind).Error("classifier call failed")
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	scan := &entity.Scan{
		UserID:    userID,
		InputType: kind,
		Content:   text,
		Result:    verdict,
	}
	if err := s.Scans.Create(ctx, scan); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{
				"user_id":     userID,
				"is_phishing": verdict.IsPhishing,
				"confidence":  verdict.Confidence,
			}).Error("scan write failed after successful classification")
		}
		return nil, fmt.Errorf("%w (verdict isPhishing=%t confidence=%.2f not saved): %v",
			ErrPersistence, verdict.IsPhishing, verdict.Confidence, err)
	}
	return scan, nil
}

// History returns every scan owned by userID, most recent first. The ordering
// comes from the stored timestamp, not request arrival order.
func (s *ScanService) History(ctx context.Context, userID string) ([]entity.Scan, error) {
	scans, err := s.Scans.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	return scans, nil
}

// Analytics is the admin aggregate view.
type Analytics struct {
	TotalScans      int64         `json:"totalScans"`
	PhishingCount   int64         `json:"phishingCount"`
	LegitimateCount int64         `json:"legitimateCount"`
	RecentScans     []entity.Scan `json:"recentScans"`
}

// Analytics computes system-wide statistics. TotalScans is exact; the
// phishing split is counted over a bounded sample and LegitimateCount is
// derived as TotalScans - PhishingCount, so the two always sum to the total.
func (s *ScanService) Analytics(ctx context.Context) (*Analytics, error) {
	total, err := s.Scans.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalyticsUnavailable, err)
	}

	sample, err := s.Scans.Sample(ctx, s.SampleSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalyticsUnavailable, err)
	}

	var phishing int64
	for _, scan := range sample {
		if scan.Result.IsPhishing {
			phishing++
		}
	}

	recent := sample
	if len(recent) > recentScansLimit {
		recent = recent[:recentScansLimit]
	}

	return &Analytics{
		TotalScans:      total,
		PhishingCount:   phishing,
		LegitimateCount: total - phishing,
		RecentScans:     recent,
	}, nil
}
