package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrapDefaults(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	if wrapped.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want 200 before any write", wrapped.StatusCode())
	}
	if wrapped.BytesWritten() != 0 {
		t.Errorf("BytesWritten() = %d, want 0", wrapped.BytesWritten())
	}
}

func TestWriteHeaderRecordsOnlyFirstCall(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.WriteHeader(http.StatusTeapot)
	wrapped.WriteHeader(http.StatusInternalServerError)

	if wrapped.StatusCode() != http.StatusTeapot {
		t.Errorf("StatusCode() = %d, want %d", wrapped.StatusCode(), http.StatusTeapot)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("underlying status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestWriteAccumulatesBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	if _, err := wrapped.Write([]byte("hello ")); err != nil {
		t.Fatal(err)
	}
	if _, err := wrapped.Write([]byte("world")); err != nil {
		t.Fatal(err)
	}

	if wrapped.BytesWritten() != len("hello world") {
		t.Errorf("BytesWritten() = %d, want %d", wrapped.BytesWritten(), len("hello world"))
	}
	if wrapped.StatusCode() != http.StatusOK {
		t.Errorf("implicit status = %d, want 200", wrapped.StatusCode())
	}
	if rec.Body.String() != "hello world" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestUnwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)
	if wrapped.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
