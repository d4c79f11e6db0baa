// Package handler renders the JSON envelope shared by every endpoint:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "...", "details": {...}}}
//
// HTTPError values map domain failures to a status code and a stable key.
package handler
