// Package compositor isolates everything platform-specific about talking
// to the Wayland compositor's event socket: discovering its path and
// parsing the newline-delimited EVENT>>DATA grammar it speaks. Nothing
// downstream of this package knows the socket exists.
package compositor

import (
	"bufio"
	"net"
	"os"
	"path/filepath"

	"tail/internal/tailerr"
)

// ErrSocketNotFound is returned when the compositor's instance signature or
// runtime directory cannot be resolved into a usable socket path.
var ErrSocketNotFound = tailerr.New(tailerr.KindIPC, "compositor socket not found")

// SocketPath derives the event socket path from XDG_RUNTIME_DIR and
// HYPRLAND_INSTANCE_SIGNATURE, following Hyprland's own layout:
// $XDG_RUNTIME_DIR/hypr/<signature>/.socket2.sock
func SocketPath() (string, error) {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	signature := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if runtimeDir == "" || signature == "" {
		return "", ErrSocketNotFound
	}
	path := filepath.Join(runtimeDir, "hypr", signature, ".socket2.sock")
	if _, err := os.Stat(path); err != nil {
		return "", ErrSocketNotFound
	}
	return path, nil
}

// Reader streams parsed Events off a Unix domain socket connection.
type Reader struct {
	conn net.Conn
	sc   *bufio.Scanner
}

// Dial connects to the compositor's event socket at path.
func Dial(path string) (*Reader, error) {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, tailerr.Wrap(tailerr.KindIPC, "dial compositor socket", err)
	}
	return &Reader{conn: conn, sc: bufio.NewScanner(conn)}, nil
}

// Next blocks until the next recognized line and returns it parsed as an
// Event with ok == true. Unrecognized or malformed lines are skipped
// without being logged. It returns a non-nil error only on a genuine read
// failure (connection closed, I/O error) — which is fatal to the session
// loop per SPEC_FULL.md §7.
func (r *Reader) Next() (Event, bool, error) {
	for r.sc.Scan() {
		line := r.sc.Text()
		ev, ok := Parse(line)
		if ok {
			return ev, true, nil
		}
		// unrecognized event: dropped, keep scanning for the next line
	}
	if err := r.sc.Err(); err != nil {
		return Event{}, false, tailerr.Wrap(tailerr.KindIPC, "read compositor socket", err)
	}
	return Event{}, false, tailerr.New(tailerr.KindIPC, "compositor socket closed")
}

// Close releases the underlying connection.
func (r *Reader) Close() error {
	return r.conn.Close()
}
