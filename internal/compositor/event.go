package compositor

import "strings"

// EventKind names a recognized compositor event.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventActiveWindow
	EventOpenWindow
	EventCloseWindow
	EventWorkspace
	EventWindowTitle
)

// Event is a single parsed line from the compositor's event socket.
// Only the fields relevant to Kind are populated.
type Event struct {
	Kind      EventKind
	Class     string
	Title     string
	Addr      string
	Workspace string
}

// Parse splits one EVENT>>DATA line and decodes it into an Event. The
// second return value is false for any unrecognized event name or a line
// that doesn't match the expected field count — callers drop these.
func Parse(line string) (Event, bool) {
	name, data, found := strings.Cut(line, ">>")
	if !found {
		return Event{}, false
	}

	switch name {
	case "activewindow":
		// class,title — title absorbs any remaining commas
		class, title, ok := splitN2(data)
		if !ok {
			return Event{}, false
		}
		return Event{Kind: EventActiveWindow, Class: class, Title: title}, true

	case "openwindow":
		// addr,workspace,class,title
		fields := strings.SplitN(data, ",", 4)
		if len(fields) != 4 {
			return Event{}, false
		}
		return Event{Kind: EventOpenWindow, Addr: fields[0], Workspace: fields[1], Class: fields[2], Title: fields[3]}, true

	case "closewindow":
		if data == "" {
			return Event{}, false
		}
		return Event{Kind: EventCloseWindow, Addr: data}, true

	case "workspace", "workspacev2":
		if data == "" {
			return Event{}, false
		}
		return Event{Kind: EventWorkspace, Workspace: data}, true

	case "windowtitle":
		if data == "" {
			return Event{}, false
		}
		return Event{Kind: EventWindowTitle, Addr: data}, true

	case "windowtitlev2":
		// addr,title — title absorbs any remaining commas
		addr, title, ok := splitN2(data)
		if !ok {
			return Event{}, false
		}
		return Event{Kind: EventWindowTitle, Addr: addr, Title: title}, true

	default:
		return Event{}, false
	}
}

// splitN2 splits data on the first comma only, so the second field absorbs
// any remaining commas (per the title field's grammar note).
func splitN2(data string) (first, rest string, ok bool) {
	first, rest, found := strings.Cut(data, ",")
	if !found {
		return "", "", false
	}
	return first, rest, true
}
