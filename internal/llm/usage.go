package llm

import (
	"context"
	"sync"
	"time"
)

// UsageRecord captures one LLM request for the session usage report.
type UsageRecord struct {
	Purpose      string
	Model        string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	Success      bool
	ErrorMessage string
	At           time.Time
}

// UsageLog accumulates per-request usage within a single run. It is safe
// for concurrent use; generation fans out several requests at once.
type UsageLog struct {
	mu      sync.Mutex
	records []UsageRecord
}

// NewUsageLog creates an empty usage log.
func NewUsageLog() *UsageLog {
	return &UsageLog{}
}

// Append records one request.
func (u *UsageLog) Append(r UsageRecord) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.records = append(u.records, r)
}

// Records returns a copy of everything recorded so far.
func (u *UsageLog) Records() []UsageRecord {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]UsageRecord, len(u.records))
	copy(out, u.records)
	return out
}

// Totals sums token counts and cost across all recorded requests.
func (u *UsageLog) Totals() (requests int, inputTokens int, outputTokens int, costUSD float64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, r := range u.records {
		requests++
		inputTokens += r.InputTokens
		outputTokens += r.OutputTokens
		costUSD += r.CostUSD
	}
	return requests, inputTokens, outputTokens, costUSD
}

// UsageProvider is a decorator that records every LLM request in a UsageLog.
type UsageProvider struct {
	inner Provider
	log   *UsageLog
}

// WithUsageLog wraps a Provider with usage recording.
func WithUsageLog(p Provider, log *UsageLog) Provider {
	return &UsageProvider{inner: p, log: log}
}

func (u *UsageProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := u.inner.Generate(ctx, req)

	rec := UsageRecord{
		Purpose:   PurposeFrom(ctx),
		Model:     u.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		At:        start,
	}
	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		if c := LookupCost(rec.Model); c != nil {
			rec.CostUSD = c.Cost(rec.InputTokens, rec.OutputTokens)
		}
	}
	if err != nil {
		rec.ErrorMessage = err.Error()
	}
	u.log.Append(rec)

	return resp, err
}

func (u *UsageProvider) ModelID() string {
	return u.inner.ModelID()
}
