package status

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/samboofficeota-hue/finance-analysis/internal/external/edinet"
	"github.com/samboofficeota-hue/finance-analysis/pkg/logger"
)

// probeQuery is the keyword used to verify the API key actually works.
// 検索1回で認証の生死がわかる。
const probeQuery = "トヨタ"

// Snapshot is one observation of upstream health.
type Snapshot struct {
	Status       string          `json:"status"` // ok | http_<code> | error | unknown
	APIKeyOK     *bool           `json:"api_key_ok"`
	Detail       string          `json:"detail"`
	EDINETStatus edinet.Document `json:"edinet_status,omitempty"`
	CheckedAt    time.Time       `json:"checked_at"`
}

// Monitor probes the EDINET DB API on a cron schedule and keeps the latest
// snapshot for the /api-status endpoint.
type Monitor struct {
	client *edinet.Client
	logger *logger.Logger
	cron   *cron.Cron
	every  time.Duration

	mu       sync.RWMutex
	snapshot *Snapshot
}

// New creates a new status monitor.
func New(client *edinet.Client, log *logger.Logger, every time.Duration) *Monitor {
	return &Monitor{
		client: client,
		logger: log,
		cron:   cron.New(),
		every:  every,
	}
}

// Start registers the periodic probe and takes an initial snapshot in the
// background.
func (m *Monitor) Start() error {
	schedule := fmt.Sprintf("@every %s", m.every)
	if _, err := m.cron.AddFunc(schedule, m.refresh); err != nil {
		return fmt.Errorf("register status probe: %w", err)
	}

	go m.refresh()
	m.cron.Start()

	m.logger.WithField("interval", m.every.String()).Info("上流ステータス監視を開始")
	return nil
}

// Stop stops the periodic probe.
func (m *Monitor) Stop() {
	m.cron.Stop()
}

// Latest returns the most recent snapshot, or nil before the first probe.
func (m *Monitor) Latest() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

func (m *Monitor) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snap := m.Check(ctx)

	m.mu.Lock()
	m.snapshot = snap
	m.mu.Unlock()

	m.logger.WithFields(map[string]interface{}{
		"status":     snap.Status,
		"api_key_ok": snap.APIKeyOK,
	}).Debug("上流ステータスを更新")
}

// Check performs a live probe: service reachability first, then one search
// request to verify the API key.
func (m *Monitor) Check(ctx context.Context) *Snapshot {
	snap := &Snapshot{
		Status:    "unknown",
		CheckedAt: time.Now(),
	}

	code, doc, err := m.client.Status(ctx)
	if err != nil {
		snap.Status = "error"
		snap.Detail = err.Error()
		return snap
	}
	if code == http.StatusOK {
		snap.Status = "ok"
		snap.EDINETStatus = doc
	} else {
		snap.Status = fmt.Sprintf("http_%d", code)
	}

	// APIキーで検索を1回試行
	result, err := m.client.SearchCompanies(ctx, probeQuery, 1, 1)
	if err != nil {
		ok := false
		snap.APIKeyOK = &ok
		snap.Detail = err.Error()
		return snap
	}

	companies, _ := result["companies"].([]edinet.CompanySummary)
	ok := len(companies) > 0
	snap.APIKeyOK = &ok
	if !ok && snap.Status == "ok" {
		snap.Detail = "検索は成功しましたが0件でした。APIキーは有効な可能性があります。"
	}

	return snap
}
