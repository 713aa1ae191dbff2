package nc

// NameConverter is the naming convention tying an enum member of the
// callback identifier enum to its function pointer typedef and its stub.
type NameConverter interface {
	// EventName returns the event short-name of an enum member, ok is false
	// if the member does not follow the convention.
	EventName(member string) (event string, ok bool)
	// TypedefName returns the name of the typedef declaring the signature
	// of event.
	TypedefName(event string) string
	// StubName returns the name of the generated stub for event.
	StubName(event string) string
}
