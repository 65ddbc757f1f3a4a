package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/habitflow/internal/insight"
	"github.com/sandeepkv93/habitflow/internal/model"
)

func (m Model) handleStatsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "g":
		return m.startInsightRequest()
	}
	return m, nil
}

// startInsightRequest fires an asynchronous insight generation. Each
// request carries a sequence number; a response whose sequence no
// longer matches is stale and gets discarded by the update loop.
func (m Model) startInsightRequest() (Model, tea.Cmd) {
	if m.Stats.Loading {
		return m, nil
	}
	m.Stats.seq++
	m.Stats.Loading = true
	m.Status = StatusBar{Text: "generating insight", IsError: false}

	seq := m.Stats.seq
	habits := m.Store.Habits()
	req := m.requester
	return m, tea.Batch(
		m.insightSpinner.Tick,
		func() tea.Msg {
			return InsightResultMsg{Seq: seq, Text: requestInsight(req, habits)}
		},
	)
}

func requestInsight(req InsightRequester, habits []model.Habit) string {
	if req == nil {
		return insight.FallbackNoKey
	}
	return req.Request(context.Background(), habits)
}
