package ergo

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() should return nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() should return nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	SetLogger(custom)

	if Logger() != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	ctx := NewContext(8, 8)
	ctx.Paint(NewCanvas(4, 2), ctx.Camera(), func(*Camera) {})

	out := buf.String()
	for _, want := range []string{"paint canvas", "width=4", "height=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q, got: %s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 50

	for range goroutines {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
				return
			}
			l.Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}

func TestDebugEnabled(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	if debugEnabled() {
		t.Error("debugEnabled() should be false for the silent logger")
	}
	SetLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if !debugEnabled() {
		t.Error("debugEnabled() should be true at Debug level")
	}
	SetLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn})))
	if debugEnabled() {
		t.Error("debugEnabled() should be false at Warn level")
	}
}

func TestPaintLogsNestingLevel(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx := NewContext(8, 8)
	outer, inner := NewCanvas(4, 4), NewCanvas(2, 2)
	// Transforms pushed by the caller must not change the reported level.
	ctx.ApplyAll([]Transform{Shift(1, 0), Shift(0, 1), Upscale(2)}, func(ctx *Context) {
		ctx.Paint(outer, ctx.Camera(), func(cam *Camera) {
			ctx.Paint(inner, cam, func(*Camera) {})
		})
	})

	out := buf.String()
	for _, want := range []string{"width=4 height=4 paint_level=1", "width=2 height=2 paint_level=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q, got: %s", want, out)
		}
	}
}

func TestPaintNilCanvasWithDebugLogging(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx := NewContext(6, 3)
	ctx.Paint(nil, ctx.Camera(), func(*Camera) {
		if ctx.Target() != ctx.Screen() {
			t.Error("Paint(nil) should target the screen")
		}
		ctx.Clear(Red)
	})
	assertPixel(t, ctx.Screen(), 2, 1, Red)
	if !strings.Contains(buf.String(), "width=6 height=3 paint_level=1") {
		t.Errorf("log output = %s, want the screen size", buf.String())
	}
}
