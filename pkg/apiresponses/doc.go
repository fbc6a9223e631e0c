// Package apiresponses defines the uniform response envelope returned by
// every API endpoint. Outcomes are reported through the envelope code, not
// the HTTP status: the API route always answers 200.
package apiresponses
