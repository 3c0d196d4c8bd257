package portfolio

import (
	"github.com/wagiedev/wealth-mcp-go/internal/clients"
	werrors "github.com/wagiedev/wealth-mcp-go/internal/errors"
)

// Book holds the generated portfolio of every registered client. It is built
// once and read-only afterwards, so concurrent reads need no locking.
type Book struct {
	seed       uint64
	portfolios map[string]Portfolio
}

// NewBook generates a portfolio for each client in cs.
func NewBook(g *Generator, cs []clients.Client) *Book {
	b := &Book{
		seed:       g.Seed(),
		portfolios: make(map[string]Portfolio, len(cs)),
	}

	for _, c := range cs {
		b.portfolios[c.ID] = g.Generate(c)
	}

	return b
}

// Seed returns the seed the book was generated with.
func (b *Book) Seed() uint64 {
	return b.seed
}

// Positions returns a copy of the portfolio of client id. Malformed ids fail
// with a ValidationError and unknown ids with a NotFoundError.
func (b *Book) Positions(id string) (Portfolio, error) {
	if err := clients.ValidateID(id); err != nil {
		return nil, err
	}

	p, ok := b.portfolios[id]
	if !ok {
		return nil, werrors.NotFound(werrors.KindClient, id)
	}

	return p.Clone(), nil
}
