// Package integrity provides health checks of the sync inputs and outputs.
//
// # Checks Provided
//
//   - Schema: Validates that every table sync writes to has the columns its gorm model expects.
//   - Layout: Counts the people/, retired/ and organizations/ record files of every
//     jurisdiction in the metadata catalog and lists jurisdictions without people.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/layout : Runs the layout check.
package integrity
