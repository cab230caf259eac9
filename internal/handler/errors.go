package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server config
// enables neither the HTTP nor the gRPC transport.
var errNoHandlersAreCreated = errors.New("no handlers are created: set an HTTP or gRPC address")
