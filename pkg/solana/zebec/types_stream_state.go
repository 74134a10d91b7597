package zebec

// StreamState is the lifecycle of a stream as tracked by the program. It is
// never read or enforced client side:
//
//	Initialize       -> Active
//	Pause            Active -> Paused
//	Resume           Paused -> Active
//	Cancel           Active, Paused -> Cancelled
//	(end time, drained)       -> Completed
//
// Withdraw and Fund only succeed while the stream is Active or Paused.
type StreamState uint8

const (
	StreamStateActive StreamState = iota
	StreamStatePaused
	StreamStateCancelled
	StreamStateCompleted
)

func (s StreamState) String() string {
	switch s {
	case StreamStateActive:
		return "active"
	case StreamStatePaused:
		return "paused"
	case StreamStateCancelled:
		return "cancelled"
	case StreamStateCompleted:
		return "completed"
	}
	return "unknown"
}

// IsTerminal reports whether no further instructions can affect the stream.
func (s StreamState) IsTerminal() bool {
	return s == StreamStateCancelled || s == StreamStateCompleted
}

// AcceptsFunds reports whether Withdraw and Fund are meaningful in state s.
func (s StreamState) AcceptsFunds() bool {
	return s == StreamStateActive || s == StreamStatePaused
}
