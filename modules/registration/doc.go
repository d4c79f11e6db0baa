// Package registration implements user sign-up: the registration form
// declaration, the service that validates a submission and stores the new
// user under "usuarios/<cpf>", and the HTTP handler around both.
//
// A successful registration tells the client where to go next (the login
// path) and which confirmation to show; presenting it is up to the client.
package registration
