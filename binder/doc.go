// Package binder turns request bodies into flat field values for form
// validation. JSON objects and URL-encoded or multipart forms are accepted;
// anything else yields ErrUnsupportedMediaType.
package binder
