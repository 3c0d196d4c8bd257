// Package wealthmcp serves a synthetic wealth-management dataset as Model
// Context Protocol tools.
//
// The server exposes three read-only tools to an MCP host such as a desktop
// AI assistant:
//
//   - get_clients lists the advisor's clients with filtering, sorting and an
//     AUM summary.
//   - get_client_positions returns one client's equity, bond and cash
//     positions with recommendations and a risk-profile alignment check.
//   - get_recommendations returns BUY/SELL/NEUTRAL analyst views by ISIN.
//
// # Basic Usage
//
// Serve the tools over stdio:
//
//	srv, err := wealthmcp.NewServer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Direct Access
//
// The dataset can be queried without a transport:
//
//	positions, err := srv.GetPositions("BZ-00001")
//	sells, err := srv.Analytics().ClientsWithRating(wealthmcp.RatingSell)
//
// # Determinism
//
// Portfolios are generated once per server from a seeded generator. The same
// seed always yields the same portfolios; see WithSeed.
//
// # Error Handling
//
// Lookups fail with typed errors:
//
//	_, err := srv.GetPositions("BZ-1")
//	if ve, ok := errors.AsType[*wealthmcp.ValidationError](err); ok {
//	    log.Printf("bad %s: %s", ve.Field, ve.Reason)
//	}
//
// Tool calls report the same failures as error results carrying an
// "error_code" such as INVALID_FORMAT or CLIENT_NOT_FOUND.
package wealthmcp
