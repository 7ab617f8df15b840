package briefing

// ComposeError means the model call failed; the run stops and no email
// is sent. DeliveryError means the briefing was produced but the send
// failed. They are distinct types so the runner and logs can tell which
// stage broke.

type ComposeError struct {
	Err error
}

func (e *ComposeError) Error() string {
	return "briefing composition failed: " + e.Err.Error()
}

func (e *ComposeError) Unwrap() error {
	return e.Err
}

type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return "briefing delivery failed: " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
