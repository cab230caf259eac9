// Package http implements the HTTP transport layer of agil-auth.
//
// It exposes route wiring, request handlers, and middleware for the account
// API: registration, login and session inspection, plus liveness, version
// and metrics endpoints. Request tracing, access logging, CORS, metrics and
// response compression are handled here before requests reach the service
// layer. Every error response is a JSON body of the form {"error": "<Kind>"}.
package http
