// Package hog provides middleware that logs HTTP requests serving rendered markup and recovers from panics using
// zerolog, along with Render, which writes HTML elements as a response.
package hog

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/swdunlop/tagkit-go"
)

// From returns the logger from the provided context, extended by the inject functions.  Middleware stores the
// logger with zerolog's own context key, so zerolog.Ctx works too.
func From(ctx context.Context, injects ...func(zerolog.Context) zerolog.Context) *zerolog.Logger {
	log := zerolog.Ctx(ctx)
	if len(injects) == 0 {
		return log
	}
	z := log.With()
	for _, inject := range injects {
		z = inject(z)
	}
	next := z.Logger()
	return &next
}

// Middleware returns a middleware that logs requests and recovers from panics.  The inject functions (if present) can
// extend the request log context.  See For for the fields added before the request.  Fields logged after the handler
// completes:
//
//   - status: the HTTP status code of the response
//   - wrote: the number of bytes written to the response
//   - took: the number of milliseconds the request took to process
//   - panic: the panic message, if the request panicked
//   - stack: the stack trace, if the request panicked
func Middleware(injects ...func(zerolog.Context) zerolog.Context) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			log := For(r, injects...)
			r = r.WithContext(log.WithContext(r.Context()))
			defer logResponse(log, ww, start)
			next.ServeHTTP(ww, r)
		})
	}
}

// For returns a logger for the provided request with these fields, plus any added by the inject functions:
//
//   - remote_addr: the remote address of the request
//   - method: the HTTP method of the request
//   - path: the path of the request
func For(r *http.Request, injects ...func(zerolog.Context) zerolog.Context) *zerolog.Logger {
	z := zerolog.Ctx(r.Context()).With().
		Str(`remote_addr`, r.RemoteAddr).
		Str(`method`, r.Method).
		Str(`path`, r.URL.Path)
	for _, inject := range injects {
		z = inject(z)
	}
	log := z.Logger()
	return &log
}

// Render writes the elements as a text/html response with an exact Content-Length.  Write failures are logged with
// the request logger, since the status has already been sent.
func Render(w http.ResponseWriter, r *http.Request, status int, elements ...html.Element) {
	p := html.Append(make([]byte, 0, 16384), elements...)
	h := w.Header()
	h.Set(`Content-Type`, `text/html; charset=utf-8`)
	h.Set(`Content-Length`, strconv.Itoa(len(p)))
	w.WriteHeader(status)
	if _, err := w.Write(p); err != nil {
		From(r.Context()).Warn().Err(err).Int(`size`, len(p)).Msg(`could not write markup`)
	}
}

func logResponse(log *zerolog.Logger, ww middleware.WrapResponseWriter, start time.Time) {
	var evt *zerolog.Event
	if e := recover(); e != nil {
		if e == http.ErrAbortHandler {
			panic(e) // rethrow, http will handle it.
		}
		evt = log.WithLevel(zerolog.PanicLevel)
		evt = addStackTrace(evt, 4)
		evt = evt.Str(`panic`, fmt.Sprint(e))
		if ww.Status() == 0 {
			ww.WriteHeader(http.StatusInternalServerError)
		}
	} else {
		status := ww.Status()
		switch {
		case status >= 500:
			evt = log.Error()
		case status >= 400:
			evt = log.Warn()
		default:
			evt = log.Info()
		}
		evt = evt.Int(`status`, status).
			Int(`wrote`, ww.BytesWritten()).
			Int64(`took`, time.Since(start).Milliseconds())
	}
	evt.Msg(``)
}

func addStackTrace(evt *zerolog.Event, skip int) *zerolog.Event {
	var calls [64]uintptr
	n := runtime.Callers(skip+1, calls[:])
	stack := make([]string, 0, n)
	frames := runtime.CallersFrames(calls[:n])
	for {
		frame, more := frames.Next()
		stack = append(stack, frame.Function+`:`+strconv.Itoa(frame.Line))
		if !more {
			break
		}
	}
	return evt.Strs(`stack`, stack)
}
