// Package utils provides small helpers shared across packages that do not
// belong to a domain package, such as rendering decoded scalars as text.
package utils
