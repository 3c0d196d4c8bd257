// Package analytics answers advisor questions that span clients, positions
// and research: rating exposure, cash drag, holders of a security, asset
// class presence and risk-profile alignment. Every query is a pure read.
package analytics

import (
	"github.com/wagiedev/wealth-mcp-go/internal/clients"
	"github.com/wagiedev/wealth-mcp-go/internal/portfolio"
	"github.com/wagiedev/wealth-mcp-go/internal/research"
)

// Source supplies the dataset an Engine queries.
type Source interface {
	Clients() []clients.Client
	Positions(clientID string) (portfolio.Portfolio, error)
	Recommendation(isin string) (research.Recommendation, error)
}

// Dataset is the Source backed by the client registry, the generated book
// and the research desk.
type Dataset struct {
	Book *portfolio.Book
	Desk *research.Desk
}

var _ Source = (*Dataset)(nil)

// NewDataset returns a Source over book and desk.
func NewDataset(book *portfolio.Book, desk *research.Desk) *Dataset {
	return &Dataset{Book: book, Desk: desk}
}

func (d *Dataset) Clients() []clients.Client {
	return clients.All()
}

func (d *Dataset) Positions(clientID string) (portfolio.Portfolio, error) {
	return d.Book.Positions(clientID)
}

func (d *Dataset) Recommendation(isin string) (research.Recommendation, error) {
	return d.Desk.Get(isin)
}
