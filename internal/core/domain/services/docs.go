// Package services provides domain services that work across several
// aggregates of the warehouse: route planning over invoiced orders and
// carriers, spreadsheet header matching for catalog imports, and parsing of
// the published inbound CSV.
//
// The package includes:
//   - RoutePlanner: builds a delivery route from the orders ready to ship
//   - HeaderMatcher: finds the column holding a field among loosely named headers
//   - CatalogMapper: turns spreadsheet rows into products, suppliers or customers
//   - InboundCSVParser: groups published CSV lines into customs lots
//
// Services are stateless and never touch storage; the application layer
// loads the aggregates and persists the results.
package services
