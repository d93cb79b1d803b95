package term

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

type sizedScreen struct {
	tcell.Screen
	rows, cols int
	initErr    error
	inits      int
	finis      int
	raw        bool
}

func (s *sizedScreen) Init() error {
	s.inits++
	if s.initErr != nil {
		return s.initErr
	}
	if err := s.Screen.Init(); err != nil {
		return err
	}
	s.raw = true
	s.Screen.SetSize(s.cols, s.rows)
	return nil
}

func (s *sizedScreen) Fini() {
	s.finis++
	s.raw = false
	s.Screen.Fini()
}

func newSizedScreen(rows, cols int) *sizedScreen {
	return &sizedScreen{Screen: tcell.NewSimulationScreen("UTF-8"), rows: rows, cols: cols}
}

func stubTerminal(t *testing.T, interactive bool, screen tcell.Screen) *int {
	t.Helper()
	calls := 0
	prevNewScreen := newScreen
	prevInteractive := isInteractive
	newScreen = func() (tcell.Screen, error) {
		calls++
		return screen, nil
	}
	isInteractive = func() bool { return interactive }
	t.Cleanup(func() {
		newScreen = prevNewScreen
		isInteractive = prevInteractive
	})
	return &calls
}

func readLine(s *Session, row int) string {
	cols, _ := s.screen.Size()
	var buf strings.Builder
	for x := 0; x < cols; x++ {
		ch, _, _, _ := s.screen.GetContent(x, row)
		if ch == 0 {
			ch = ' '
		}
		buf.WriteRune(ch)
	}
	return buf.String()
}

func nextKey(t *testing.T, s *Session) Key {
	t.Helper()
	for {
		k, err := s.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey: %v", err)
		}
		if k.Kind != KeyResize {
			return k
		}
	}
}

func TestAcquireNonInteractiveLeavesTerminalUntouched(t *testing.T) {
	screen := newSizedScreen(10, 40)
	calls := stubTerminal(t, false, screen)

	session, err := Acquire()
	if session != nil {
		t.Fatalf("expected nil session")
	}
	var acqErr *AcquireError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected AcquireError, got %v", err)
	}
	if !errors.Is(err, ErrNotInteractive) {
		t.Fatalf("expected ErrNotInteractive, got %v", err)
	}
	if *calls != 0 || screen.inits != 0 || screen.finis != 0 {
		t.Fatalf("terminal touched: newScreen=%d init=%d fini=%d", *calls, screen.inits, screen.finis)
	}
	if screen.raw {
		t.Fatalf("terminal left in raw mode")
	}
}

func TestAcquireInitFailureIsAcquireError(t *testing.T) {
	screen := newSizedScreen(10, 40)
	screen.initErr = errors.New("no such terminal type")
	stubTerminal(t, true, screen)

	_, err := Acquire()
	var acqErr *AcquireError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected AcquireError, got %v", err)
	}
	if !strings.Contains(err.Error(), "no such terminal type") {
		t.Fatalf("unexpected error text: %v", err)
	}
	if screen.raw || screen.finis != 0 {
		t.Fatalf("unexpected terminal state raw=%v fini=%d", screen.raw, screen.finis)
	}
}

func TestAcquireNewScreenFailure(t *testing.T) {
	prevNewScreen := newScreen
	prevInteractive := isInteractive
	newScreen = func() (tcell.Screen, error) { return nil, errors.New("open /dev/tty: no such device") }
	isInteractive = func() bool { return true }
	t.Cleanup(func() {
		newScreen = prevNewScreen
		isInteractive = prevInteractive
	})

	_, err := Acquire()
	var acqErr *AcquireError
	if !errors.As(err, &acqErr) {
		t.Fatalf("expected AcquireError, got %v", err)
	}
}

func TestReleaseRestoresOnceAndIsIdempotent(t *testing.T) {
	screen := newSizedScreen(10, 40)
	stubTerminal(t, true, screen)

	session, err := Acquire()
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !screen.raw {
		t.Fatalf("expected raw mode while acquired")
	}
	session.Release()
	session.Release()
	if screen.raw {
		t.Fatalf("expected terminal restored")
	}
	if screen.finis != 1 {
		t.Fatalf("Fini called %d times, want 1", screen.finis)
	}
	if _, err := session.ReadKey(); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed after release, got %v", err)
	}
}

func TestSessionSizeReportsRowsThenCols(t *testing.T) {
	screen := newSizedScreen(12, 50)
	session, err := Open(screen)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer session.Release()

	rows, cols := session.Size()
	if rows != 12 || cols != 50 {
		t.Fatalf("Size()=(%d,%d) want (12,50)", rows, cols)
	}
}

func TestWriteAtClipsOutsideGrid(t *testing.T) {
	screen := newSizedScreen(3, 10)
	session, err := Open(screen)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer session.Release()

	session.WriteAt(-1, 0, "above", StyleNormal)
	session.WriteAt(3, 0, "below", StyleNormal)
	session.WriteAt(0, 6, "overflowing", StyleBold)
	session.WriteAt(1, -3, "abcdef", StyleReverse)
	session.WriteAt(2, 8, "界", StyleNormal)
	session.Refresh()

	if got := readLine(session, 0); got != "      over" {
		t.Fatalf("row 0=%q", got)
	}
	if got := readLine(session, 1); got != "def       " {
		t.Fatalf("row 1=%q", got)
	}
	if got := readLine(session, 2); !strings.HasPrefix(got, "        界") {
		t.Fatalf("row 2=%q", got)
	}
}

func TestWriteAtKeepsCombiningMarks(t *testing.T) {
	screen := newSizedScreen(2, 10)
	session, err := Open(screen)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer session.Release()

	session.WriteAt(0, 0, "e\u0301x", StyleNormal)
	session.WriteAt(1, -1, "a\u0301b", StyleNormal)
	session.Refresh()

	mainc, combc, _, _ := session.screen.GetContent(0, 0)
	if mainc != 'e' || len(combc) != 1 || combc[0] != '\u0301' {
		t.Fatalf("cell 0=%q %q, want e with combining acute", mainc, combc)
	}
	if got := readLine(session, 0); !strings.HasPrefix(got, "ex") {
		t.Fatalf("row 0=%q", got)
	}
	mainc, combc, _, _ = session.screen.GetContent(0, 1)
	if mainc != 'b' || len(combc) != 0 {
		t.Fatalf("mark attached to a clipped cell: %q %q", mainc, combc)
	}
}

func TestWriteAtAppliesStyle(t *testing.T) {
	screen := newSizedScreen(2, 10)
	session, err := Open(screen)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer session.Release()

	session.WriteAt(0, 0, "x", StyleReverse|StyleBold)
	_, _, style, _ := screen.GetContent(0, 0)
	want := tcell.StyleDefault.Reverse(true).Bold(true)
	if style != want {
		t.Fatalf("style=%v want %v", style, want)
	}
}

func TestReadKeyDecodesEvents(t *testing.T) {
	screen := newSizedScreen(5, 20)
	session, err := Open(screen)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer session.Release()

	cases := []struct {
		ev   *tcell.EventKey
		want Key
	}{
		{ev: tcell.NewEventKey(tcell.KeyUp, 0, 0), want: Key{Kind: KeyUp}},
		{ev: tcell.NewEventKey(tcell.KeyDown, 0, 0), want: Key{Kind: KeyDown}},
		{ev: tcell.NewEventKey(tcell.KeyLeft, 0, 0), want: Key{Kind: KeyLeft}},
		{ev: tcell.NewEventKey(tcell.KeyRight, 0, 0), want: Key{Kind: KeyRight}},
		{ev: tcell.NewEventKey(tcell.KeyEnter, 0, 0), want: Key{Kind: KeyEnter}},
		{ev: tcell.NewEventKey(tcell.KeyESC, 0, 0), want: Key{Kind: KeyEscape}},
		{ev: tcell.NewEventKey(tcell.KeyBackspace2, 0, 0), want: Key{Kind: KeyBackspace}},
		{ev: tcell.NewEventKey(tcell.KeyCtrlC, 0, 0), want: Key{Kind: KeyInterrupt}},
		{ev: tcell.NewEventKey(tcell.KeyRune, ' ', 0), want: Key{Kind: KeySpace}},
		{ev: tcell.NewEventKey(tcell.KeyRune, ':', 0), want: Rune(':')},
		{ev: tcell.NewEventKey(tcell.KeyRune, 'q', 0), want: Rune('q')},
		{ev: tcell.NewEventKey(tcell.KeyTab, 0, 0), want: Key{Kind: KeyOther}},
	}
	for _, tc := range cases {
		if err := screen.PostEvent(tc.ev); err != nil {
			t.Fatalf("PostEvent: %v", err)
		}
		if got := nextKey(t, session); got != tc.want {
			t.Fatalf("decoded %v as %+v want %+v", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestReadKeyReportsResize(t *testing.T) {
	screen := newSizedScreen(5, 20)
	session, err := Open(screen)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer session.Release()

	screen.SetSize(30, 8)
	if err := screen.PostEvent(tcell.NewEventResize(30, 8)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	k, err := session.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey: %v", err)
	}
	if k.Kind != KeyResize {
		t.Fatalf("expected resize, got %+v", k)
	}
	if rows, cols := session.Size(); rows != 8 || cols != 30 {
		t.Fatalf("Size()=(%d,%d) want (8,30)", rows, cols)
	}
}

func TestKeyPredicates(t *testing.T) {
	if !Rune('7').IsDigit() || Rune('a').IsDigit() {
		t.Fatalf("IsDigit mismatch")
	}
	if !(Key{Kind: KeySpace}).IsPrintable() || (Key{Kind: KeyUp}).IsPrintable() {
		t.Fatalf("IsPrintable mismatch")
	}
	if (Key{Kind: KeySpace}).Char() != ' ' {
		t.Fatalf("space Char mismatch")
	}
	if !Rune('q').IsRune('q') || Rune('q').IsRune('l') {
		t.Fatalf("IsRune mismatch")
	}
	if KeyEscape.String() != "escape" || KeyKind(99).String() != "unknown" {
		t.Fatalf("String mismatch")
	}
}
