package sink

// Call tags the kind of a recorded Sink invocation.
type Call int

const (
	CallSetColor Call = iota
	CallBeginPolygon
	CallEndPolygon
	CallBeginLineLoop
	CallEndLineLoop
	CallVertex
)

// Event is one recorded Sink call, with only the fields relevant to its
// Call populated.
type Event struct {
	Call    Call
	R, G, B float64
	X, Y, Z float64
}

// RecordSink is a Sink test double that records every call verbatim, for
// asserting emit order and balance in tests without needing a real
// rendering backend.
type RecordSink struct {
	Events []Event
}

func (r *RecordSink) SetColor(red, g, b float64) {
	r.Events = append(r.Events, Event{Call: CallSetColor, R: red, G: g, B: b})
}

func (r *RecordSink) BeginPolygon() { r.Events = append(r.Events, Event{Call: CallBeginPolygon}) }
func (r *RecordSink) EndPolygon()   { r.Events = append(r.Events, Event{Call: CallEndPolygon}) }

func (r *RecordSink) BeginLineLoop() { r.Events = append(r.Events, Event{Call: CallBeginLineLoop}) }
func (r *RecordSink) EndLineLoop()   { r.Events = append(r.Events, Event{Call: CallEndLineLoop}) }

func (r *RecordSink) Vertex(x, y, z float64) {
	r.Events = append(r.Events, Event{Call: CallVertex, X: x, Y: y, Z: z})
}
