// Package civic exposes the synced records over HTTP for inspection.
//
// The endpoints are read-only; data only changes through sync runs.
//
// # HTTP Endpoints
//
//   - GET /people/{id} : A person with names, links, sources, identifiers, contact details and memberships.
//   - GET /organizations/{id} : An organization with links, sources, identifiers, posts and memberships.
//   - GET /jurisdictions/{id} : Counts of what is stored for a jurisdiction.
//
// Ids are given as-is, slashes included, e.g. /people/ocd-person/0a1b.
package civic
