// Package contact carries out the action behind a profile card row:
// copying its value or opening its link, then confirming with a toast.
package contact

import (
	"github.com/atotto/clipboard"
	"github.com/ncruces/zenity"
	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Entry is one actionable row. Rows with a Link open it; the rest copy Value.
type Entry struct {
	Label string
	Value string
	Link  string
}

type Clipboard interface {
	WriteAll(text string) error
}

type Browser interface {
	OpenURL(url string) error
}

// Notifier raises a short desktop notification.
type Notifier interface {
	Notify(title, text string) error
}

// SystemClipboard writes to the platform clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// SystemBrowser opens URLs in the user's default browser.
type SystemBrowser struct{}

func (SystemBrowser) OpenURL(url string) error { return browser.OpenURL(url) }

// DesktopNotifier shows notifications through the platform's native facility.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, text string) error {
	return zenity.Notify(text, zenity.Title(title), zenity.InfoIcon)
}

// Options selects the backends. Nil fields use the system implementations.
type Options struct {
	Clipboard Clipboard
	Browser   Browser
	Notifier  Notifier
	Logger    *zap.Logger
}

type Handler struct {
	clip    Clipboard
	browser Browser
	notify  Notifier
	log     *zap.Logger
}

func NewHandler(opts Options) *Handler {
	h := &Handler{
		clip:    opts.Clipboard,
		browser: opts.Browser,
		notify:  opts.Notifier,
		log:     opts.Logger,
	}
	if h.clip == nil {
		h.clip = SystemClipboard{}
	}
	if h.browser == nil {
		h.browser = SystemBrowser{}
	}
	if h.notify == nil {
		h.notify = DesktopNotifier{}
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	return h
}

// Activate opens e.Link when set, otherwise copies e.Value. The toast is
// raised only after the action succeeds. A failed toast is logged, not returned.
func (h *Handler) Activate(e Entry) error {
	var title, text string
	if e.Link != "" {
		if err := h.browser.OpenURL(e.Link); err != nil {
			return errors.Wrapf(err, "opening %s", e.Label)
		}
		title, text = "Opened "+e.Label, e.Link
	} else {
		if e.Value == "" {
			return errors.Errorf("%s has nothing to copy", e.Label)
		}
		if err := h.clip.WriteAll(e.Value); err != nil {
			return errors.Wrapf(err, "copying %s", e.Label)
		}
		title, text = "Copied to clipboard", e.Label+": "+e.Value
	}

	if err := h.notify.Notify(title, text); err != nil {
		h.log.Warn("notification failed", zap.String("label", e.Label), zap.Error(err))
	}
	return nil
}
