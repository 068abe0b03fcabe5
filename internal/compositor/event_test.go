package compositor

import "testing"

func TestParse_ActiveWindow(t *testing.T) {
	ev, ok := Parse("activewindow>>firefox,Mozilla Firefox, tab 2, 3")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if ev.Kind != EventActiveWindow || ev.Class != "firefox" {
		t.Errorf("got %+v", ev)
	}
	if ev.Title != "Mozilla Firefox, tab 2, 3" {
		t.Errorf("expected title to absorb remaining commas, got %q", ev.Title)
	}
}

func TestParse_OpenWindow(t *testing.T) {
	ev, ok := Parse("openwindow>>0x1234,1,firefox,Mozilla Firefox")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if ev.Kind != EventOpenWindow || ev.Addr != "0x1234" || ev.Workspace != "1" || ev.Class != "firefox" || ev.Title != "Mozilla Firefox" {
		t.Errorf("got %+v", ev)
	}
}

func TestParse_CloseWindow(t *testing.T) {
	ev, ok := Parse("closewindow>>0x1234")
	if !ok || ev.Kind != EventCloseWindow || ev.Addr != "0x1234" {
		t.Errorf("got %+v, ok=%v", ev, ok)
	}
}

func TestParse_WorkspaceAndV2(t *testing.T) {
	for _, name := range []string{"workspace", "workspacev2"} {
		ev, ok := Parse(name + ">>3")
		if !ok || ev.Kind != EventWorkspace || ev.Workspace != "3" {
			t.Errorf("%s: got %+v, ok=%v", name, ev, ok)
		}
	}
}

func TestParse_WindowTitleV2AbsorbsCommas(t *testing.T) {
	ev, ok := Parse("windowtitlev2>>0xabcd,foo, bar, baz")
	if !ok || ev.Kind != EventWindowTitle || ev.Addr != "0xabcd" || ev.Title != "foo, bar, baz" {
		t.Errorf("got %+v, ok=%v", ev, ok)
	}
}

func TestParse_UnknownEventDropped(t *testing.T) {
	if _, ok := Parse("somethingelse>>data"); ok {
		t.Error("expected unknown event to be dropped")
	}
	if _, ok := Parse("no-separator-here"); ok {
		t.Error("expected line without separator to be dropped")
	}
}
