package contact

import (
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type fakeBrowser struct {
	opened []string
	err    error
}

func (f *fakeBrowser) OpenURL(url string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, url)
	return nil
}

type toast struct{ title, text string }

type fakeNotifier struct {
	toasts []toast
	err    error
}

func (f *fakeNotifier) Notify(title, text string) error {
	f.toasts = append(f.toasts, toast{title, text})
	return f.err
}

func newTestHandler(t *testing.T) (*Handler, *fakeClipboard, *fakeBrowser, *fakeNotifier) {
	t.Helper()
	clip, br, n := &fakeClipboard{}, &fakeBrowser{}, &fakeNotifier{}
	return NewHandler(Options{Clipboard: clip, Browser: br, Notifier: n}), clip, br, n
}

func TestActivateCopiesValue(t *testing.T) {
	h, clip, br, n := newTestHandler(t)

	if err := h.Activate(Entry{Label: "Email", Value: "me@example.com"}); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if clip.text != "me@example.com" {
		t.Errorf("clipboard = %q, want the value", clip.text)
	}
	if len(br.opened) != 0 {
		t.Errorf("copy row opened %v", br.opened)
	}
	if len(n.toasts) != 1 || n.toasts[0].title != "Copied to clipboard" || n.toasts[0].text != "Email: me@example.com" {
		t.Errorf("toasts = %+v", n.toasts)
	}
}

func TestActivateOpensLink(t *testing.T) {
	h, clip, br, n := newTestHandler(t)

	err := h.Activate(Entry{Label: "GitHub", Value: "@someone", Link: "https://github.com/someone"})
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if len(br.opened) != 1 || br.opened[0] != "https://github.com/someone" {
		t.Errorf("opened = %v", br.opened)
	}
	if clip.text != "" {
		t.Errorf("link row touched the clipboard: %q", clip.text)
	}
	if len(n.toasts) != 1 || n.toasts[0].title != "Opened GitHub" {
		t.Errorf("toasts = %+v", n.toasts)
	}
}

func TestActivateFailureSkipsToast(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		clip  error
		open  error
	}{
		{"clipboard unavailable", Entry{Label: "Phone", Value: "+1 555"}, errors.New("no xclip"), nil},
		{"browser unavailable", Entry{Label: "Website", Value: "x", Link: "https://example.com"}, nil, errors.New("no browser")},
		{"empty value", Entry{Label: "Phone"}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, clip, br, n := newTestHandler(t)
			clip.err = tt.clip
			br.err = tt.open

			if err := h.Activate(tt.entry); err == nil {
				t.Error("expected an error")
			}
			if len(n.toasts) != 0 {
				t.Errorf("failed action should not toast, got %+v", n.toasts)
			}
		})
	}
}

func TestActivateNotifyFailureLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	n := &fakeNotifier{err: errors.New("no notification daemon")}
	clip := &fakeClipboard{}
	h := NewHandler(Options{Clipboard: clip, Browser: &fakeBrowser{}, Notifier: n, Logger: zap.New(core)})

	if err := h.Activate(Entry{Label: "Email", Value: "me@example.com"}); err != nil {
		t.Fatalf("toast failure should not fail the action: %v", err)
	}
	if clip.text != "me@example.com" {
		t.Error("value should still be copied")
	}
	if logs.FilterMessage("notification failed").Len() != 1 {
		t.Errorf("expected toast failure to be logged, got %v", logs.All())
	}
}
