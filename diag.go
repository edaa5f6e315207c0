package elayout

import "log"

// Some layout situations are suspicious or transiently impossible
// without being programming errors: two views that don't share a
// hierarchy yet because a transition is mid-flight, or an alignment
// pairing a physical position with a direction-relative one. Those
// are reported through the package diagnostic handler instead of
// panicking, and the affected operation becomes a no-op.
//
// Contract violations (duplicate views in a distribution, negative
// spreading space and the like) still panic; see the individual
// operations for their preconditions.

var diagHandler func(message string) = nil

// Replaces the handler that receives diagnostic messages. Passing
// nil restores the default handler, which writes to the standard
// logger with an "elayout: " prefix. Handy for routing diagnostics
// into a game's own console, or for silencing them in tests.
func SetDiagnosticHandler(handler func(message string)) {
	diagHandler = handler
}

func diag(message string) {
	if diagHandler != nil {
		diagHandler(message)
	} else {
		log.Print("elayout: ", message)
	}
}
