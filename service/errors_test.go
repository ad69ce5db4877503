package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"syscall"
	"testing"
)

func TestPermanent(t *testing.T) {
	err := fmt.Errorf("Permanent error")
	if Temporary(err) {
		t.Fail()
	}
	err = &url.Error{Err: err}
	if Temporary(err) {
		t.Fail()
	}
	if Temporary(nil) {
		t.Fail()
	}
	if Temporary(context.Canceled) {
		t.Fail()
	}
}

func TestTemporary(t *testing.T) {
	err := MakeTemporary(fmt.Errorf("Temporary error"))
	if !Temporary(err) {
		t.Fail()
	}
	err = fmt.Errorf("Warp: %w", err)
	if !Temporary(err) {
		t.Fail()
	}
	if !Temporary(context.DeadlineExceeded) {
		t.Fail()
	}
	err = fmt.Errorf("Warp: %w", &url.Error{Err: err})
	if !Temporary(err) {
		t.Fail()
	}
	for _, err := range []error{
		syscall.ECONNRESET,
		syscall.EPIPE,
		io.ErrUnexpectedEOF,
		io.EOF,
		errors.New(`net/http: HTTP/1.x transport connection broken: malformed HTTP status code "abc"`),
		errors.New(`malformed HTTP response "garbage"`),
	} {
		if !Temporary(&url.Error{Op: "Get", URL: "http://localhost", Err: fmt.Errorf("read: %w", err)}) {
			t.Errorf("%v must be temporary", err)
		}
	}
}

func TestMergeErrors(t *testing.T) {
	tmp := MakeTemporary(fmt.Errorf("tmp"))
	fatal := fmt.Errorf("fatal")

	if err := MergeErrors(true, nil, nil, nil); err != nil {
		t.Errorf("nil expected, got %v", err)
	}
	if err := MergeErrors(true, nil, tmp, fatal); err == nil || Temporary(err) || !strings.HasPrefix(err.Error(), "fatal") {
		t.Errorf("fatal error expected first, got %v", err)
	}
	if err := MergeErrors(true, nil, tmp, nil); err == nil || !Temporary(err) {
		t.Errorf("temporary error expected, got %v", err)
	}
	if err := MergeErrors(false, nil, tmp, fatal, nil); err != nil {
		t.Errorf("nil expected, got %v", err)
	}
	if err := MergeErrors(false, nil, fatal, tmp); err == nil || !Temporary(err) {
		t.Errorf("temporary error expected, got %v", err)
	}
}

func TestTemporaryStatus(t *testing.T) {
	for code, want := range map[int]bool{200: false, 404: false, 408: true, 429: true, 500: true, 501: false, 503: true} {
		if got := TemporaryStatus(code); got != want {
			t.Errorf("TemporaryStatus(%d) = %v", code, got)
		}
	}
}
