// Package api assembles the gin engine: request logging, panic recovery,
// metrics exposition, the API route group and the static-bundle fallback.
package api
