package monitor

import (
	"context"
	"fmt"

	"github.com/accursedgalaxy/liquidation-monitor/internal/source"
)

// MockResponse is the canned answer for one URL.
type MockResponse struct {
	Positions []source.Position
	Err       error
}

// MockFetcher serves canned responses and records the URLs it was asked for.
type MockFetcher struct {
	responses map[string]MockResponse
	Calls     []string
}

func NewMockFetcher(responses map[string]MockResponse) *MockFetcher {
	return &MockFetcher{responses: responses}
}

func (m *MockFetcher) FetchPositions(ctx context.Context, url string) ([]source.Position, error) {
	m.Calls = append(m.Calls, url)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrNetwork, err)
	}

	resp, ok := m.responses[url]
	if !ok {
		return nil, fmt.Errorf("%w: unexpected status code: 404", source.ErrNetwork)
	}
	return resp.Positions, resp.Err
}
