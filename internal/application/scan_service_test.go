package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/phishguard/phishguard-api/internal/domain/entity"
)

// ---- stub classifier ----

type stubClassifier struct {
	verdict  entity.Verdict
	err      error
	calls    int
	lastText string
	lastKind entity.InputType
}

func (s *stubClassifier) Classify(_ context.Context, text string, kind entity.InputType) (entity.Verdict, error) {
	s.calls++
	s.lastText = text
	s.lastKind = kind
	if s.err != nil {
		return entity.Verdict{}, s.err
	}
	return s.verdict, nil
}

// ---- fake scan repository ----

type fakeScanRepo struct {
	scans     []entity.Scan
	seq       int
	createErr error
	countErr  error
	sampleErr error
}

func (r *fakeScanRepo) Create(_ context.Context, s *entity.Scan) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	s.ID = fmt.Sprintf("scan-%d", r.seq)
	s.CreatedAt = time.Unix(int64(1700000000+r.seq), 0)
	r.scans = append(r.scans, *s)
	return nil
}

func (r *fakeScanRepo) ListByUser(_ context.Context, userID string) ([]entity.Scan, error) {
	out := []entity.Scan{}
	for _, s := range r.scans {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeScanRepo) CountAll(_ context.Context) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.scans)), nil
}

func (r *fakeScanRepo) Sample(_ context.Context, limit int) ([]entity.Scan, error) {
	if r.sampleErr != nil {
		return nil, r.sampleErr
	}
	if limit > len(r.scans) {
		limit = len(r.scans)
	}
	return append([]entity.Scan{}, r.scans[:limit]...), nil
}

func urlVerdict(phishing bool, confidence float64) entity.Verdict {
	return entity.Verdict{
		IsPhishing: phishing,
		Confidence: confidence,
		Features: map[string]any{
			"length":    30,
			"has_https": false,
			"has_ip":    false,
		},
	}
}

// ---- submit ----

func TestScanService_Submit(t *testing.T) {
	repo := &fakeScanRepo{}
	cls := &stubClassifier{verdict: urlVerdict(true, 0.93)}
	svc := NewScanService(repo, cls, 1000, nil)

	scan, err := svc.Submit(context.Background(), "user-a", "http://bad-login.example", entity.InputURL)
	require.NoError(t, err)
	require.NotEmpty(t, scan.ID)
	require.Equal(t, "user-a", scan.UserID)
	require.Equal(t, entity.InputURL, scan.InputType)
	require.Equal(t, "http://bad-login.example", scan.Content)
	require.True(t, scan.Result.IsPhishing)
	require.Equal(t, 0.93, scan.Result.Confidence)
	require.False(t, scan.CreatedAt.IsZero())

	require.Equal(t, "http://bad-login.example", cls.lastText)
	require.Equal(t, entity.InputURL, cls.lastKind)
}

func TestScanService_SubmitValidatesBeforeClassifying(t *testing.T) {
	cls := &stubClassifier{verdict: urlVerdict(false, 0.1)}
	svc := NewScanService(&fakeScanRepo{}, cls, 1000, nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "user-a", "", entity.InputURL)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Submit(ctx, "user-a", "   ", entity.InputURL)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Submit(ctx, "user-a", "hello", entity.InputType("sms"))
	require.ErrorIs(t, err, ErrInvalidInput)

	require.Zero(t, cls.calls, "classifier must not be called for invalid input")
}

func TestScanService_SubmitClassifierFailure(t *testing.T) {
	repo := &fakeScanRepo{}
	cls := &stubClassifier{err: errors.New("connection refused")}
	svc := NewScanService(repo, cls, 1000, nil)

	_, err := svc.Submit(context.Background(), "user-a", "http://x.example", entity.InputURL)
	require.ErrorIs(t, err, ErrUpstreamUnavailable)
	require.Empty(t, repo.scans, "no partial record on classifier failure")
}

func TestScanService_SubmitPersistFailureKeepsVerdict(t *testing.T) {
	repo := &fakeScanRepo{createErr: errors.New("disk full")}
	cls := &stubClassifier{verdict: urlVerdict(true, 0.93)}
	svc := NewScanService(repo, cls, 1000, nil)

	_, err := svc.Submit(context.Background(), "user-a", "http://x.example", entity.InputURL)
	require.ErrorIs(t, err, ErrPersistence)
	// The classification result must not be silently discarded.
	require.Contains(t, err.Error(), "isPhishing=true")
	require.Contains(t, err.Error(), "0.93")
}

// ---- history ----

func TestScanService_HistoryOrderAndOwnership(t *testing.T) {
	repo := &fakeScanRepo{}
	cls := &stubClassifier{verdict: urlVerdict(false, 0.2)}
	svc := NewScanService(repo, cls, 1000, nil)
	ctx := context.Background()

	s1, err := svc.Submit(ctx, "user-a", "http://one.example", entity.InputURL)
	require.NoError(t, err)
	s2, err := svc.Submit(ctx, "user-a", "http://two.example", entity.InputURL)
	require.NoError(t, err)
	s3, err := svc.Submit(ctx, "user-a", "http://three.example", entity.InputURL)
	require.NoError(t, err)
	_, err = svc.Submit(ctx, "user-b", "http://other.example", entity.InputURL)
	require.NoError(t, err)

	history, err := svc.History(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, []string{s3.ID, s2.ID, s1.ID},
		[]string{history[0].ID, history[1].ID, history[2].ID})

	other, err := svc.History(ctx, "user-b")
	require.NoError(t, err)
	require.Len(t, other, 1)
	require.Equal(t, "http://other.example", other[0].Content)
}

func TestScanService_HistoryEmpty(t *testing.T) {
	svc := NewScanService(&fakeScanRepo{}, &stubClassifier{}, 1000, nil)

	history, err := svc.History(context.Background(), "user-a")
	require.NoError(t, err)
	require.NotNil(t, history)
	require.Empty(t, history)
}

// ---- analytics ----

func TestScanService_AnalyticsZeroState(t *testing.T) {
	svc := NewScanService(&fakeScanRepo{}, &stubClassifier{}, 1000, nil)

	stats, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.TotalScans)
	require.Zero(t, stats.PhishingCount)
	require.Zero(t, stats.LegitimateCount)
	require.NotNil(t, stats.RecentScans)
	require.Empty(t, stats.RecentScans)
}

func TestScanService_AnalyticsArithmeticInvariant(t *testing.T) {
	repo := &fakeScanRepo{}
	cls := &stubClassifier{}
	// Sample bound of 3 while 5 scans exist: the split is computed over the
	// sample, so the legitimate count is approximate but the sum is exact.
	svc := NewScanService(repo, cls, 3, nil)
	ctx := context.Background()

	phishing := []bool{true, false, false, true, true}
	for i, p := range phishing {
		cls.verdict = urlVerdict(p, 0.8)
		_, err := svc.Submit(ctx, "user-a", fmt.Sprintf("http://site-%d.example", i), entity.InputURL)
		require.NoError(t, err)
	}

	stats, err := svc.Analytics(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, stats.TotalScans)
	require.EqualValues(t, 1, stats.PhishingCount, "only the first 3 rows are sampled")
	require.Equal(t, stats.TotalScans, stats.PhishingCount+stats.LegitimateCount)
	require.Len(t, stats.RecentScans, 3)
}

func TestScanService_AnalyticsReadFailure(t *testing.T) {
	repo := &fakeScanRepo{sampleErr: errors.New("timeout")}
	svc := NewScanService(repo, &stubClassifier{}, 1000, nil)

	_, err := svc.Analytics(context.Background())
	require.ErrorIs(t, err, ErrAnalyticsUnavailable)

	repo = &fakeScanRepo{countErr: errors.New("timeout")}
	svc = NewScanService(repo, &stubClassifier{}, 1000, nil)

	_, err = svc.Analytics(context.Background())
	require.ErrorIs(t, err, ErrAnalyticsUnavailable)
}
