// Package launch turns a palette activation into something the user sees: the
// target page opened in a browser, copied to the clipboard, or printed.
package launch

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
	"github.com/pkg/browser"

	"github.com/Guerrilla-Interactive/sp-command-palette/internal/logging"
)

// Supported values for the launch.mode setting.
const (
	ModeBrowser   = "browser"
	ModeClipboard = "clipboard"
	ModePrint     = "print"
)

// ErrUnknownLaunchMode is returned by NewOpener for an unsupported mode.
var ErrUnknownLaunchMode = errors.New("unknown launch mode")

// Opener delivers a URL to the user.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

// BrowserOpener opens URLs with the system browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return errors.Wrapf(err, "open %s in browser", url)
	}
	return nil
}

// ClipboardOpener copies URLs to the system clipboard.
type ClipboardOpener struct{}

func (ClipboardOpener) Open(url string) error {
	if err := clipboard.WriteAll(url); err != nil {
		return errors.Wrap(err, "copy url to clipboard")
	}
	return nil
}

// PrintOpener writes each URL on its own line.
type PrintOpener struct {
	W io.Writer
}

func (p PrintOpener) Open(url string) error {
	if _, err := fmt.Fprintln(p.W, url); err != nil {
		return errors.Wrap(err, "print url")
	}
	return nil
}

// NewOpener returns the Opener for mode. Print mode writes to w.
func NewOpener(mode string, w io.Writer) (Opener, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeBrowser:
		return BrowserOpener{}, nil
	case ModeClipboard:
		return ClipboardOpener{}, nil
	case ModePrint:
		return PrintOpener{W: w}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownLaunchMode, "%q", mode)
	}
}

// Result is the outcome of the most recent launch.
type Result struct {
	URL string
	Err error
}

// Recorder wraps an Opener, logs each launch and remembers the last one, since
// palette actions have no way to hand an error back to the key handler. It is
// owned by the key handler and is not safe for concurrent use.
type Recorder struct {
	next Opener
	last Result
	n    int
}

// NewRecorder wraps next.
func NewRecorder(next Opener) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Open(url string) error {
	err := r.next.Open(url)
	if err != nil {
		logging.Logger.Errorw("launch failed", "url", url, "error", err)
	} else {
		logging.Logger.Infow("launched", "url", url)
	}

	r.last = Result{URL: url, Err: err}
	r.n++
	return err
}

// Last returns the most recent result and whether anything was launched yet.
func (r *Recorder) Last() (Result, bool) {
	return r.last, r.n > 0
}

// Count returns how many launches were attempted.
func (r *Recorder) Count() int {
	return r.n
}
