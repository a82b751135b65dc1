package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"aisummarizer/internal/domain"
	"aisummarizer/internal/summarizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSummarizer struct {
	summary string
	err     error
	calls   atomic.Int32
	input   atomic.Value
}

func (s *stubSummarizer) Summarize(_ context.Context, input summarizer.Input) (string, error) {
	s.calls.Add(1)
	s.input.Store(input.Text)
	return s.summary, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postSummarize(t *testing.T, h http.Handler, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, SummarizePath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return rec.Code, resp
}

func textBody(text string) string {
	b, _ := json.Marshal(map[string]string{"text": text})
	return string(b)
}

func TestHandlerSuccess(t *testing.T) {
	stub := &stubSummarizer{summary: "A greeting and test statement."}
	h := NewHandler(stub, nil, discardLogger())

	code, resp := postSummarize(t, h, textBody("Hello world, this is a test."))

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "A greeting and test statement.", resp["summary"])
	assert.InDelta(t, 28, resp["originalLength"], 0)
	assert.InDelta(t, 30, resp["summaryLength"], 0)
	assert.Equal(t, "Hello world, this is a test.", stub.input.Load())
}

func TestHandlerLengthsMatchText(t *testing.T) {
	texts := []string{
		"x",
		"  padded input keeps its whitespace  ",
		"привет, мир",
		strings.Repeat("a", domain.MaxTextLength),
	}

	for _, text := range texts {
		stub := &stubSummarizer{summary: "short 😀"}
		h := NewHandler(stub, nil, discardLogger())

		result, err := h.Summarize(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, domain.TextLength(text), result.OriginalLength)
		assert.Equal(t, domain.TextLength(result.Summary), result.SummaryLength)
		assert.Equal(t, 8, result.SummaryLength)
	}
}

func TestHandlerValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "empty string", body: textBody(""), wantMsg: msgTextRequired},
		{name: "whitespace only", body: textBody(" \n\t "), wantMsg: msgTextRequired},
		{name: "missing field", body: `{}`, wantMsg: msgTextRequired},
		{name: "null text", body: `{"text":null}`, wantMsg: msgTextRequired},
		{name: "non-string text", body: `{"text":42}`, wantMsg: msgTextRequired},
		{name: "malformed json", body: `{"text":`, wantMsg: msgTextRequired},
		{name: "byte order mark only", body: `{"text":"\uFEFF"}`, wantMsg: msgTextRequired},
		{name: "byte order mark and spaces", body: `{"text":" \uFEFF\u00A0\n"}`, wantMsg: msgTextRequired},
		{name: "trailing garbage", body: `{"text":"a"} trailing`, wantMsg: msgTextRequired},
		{name: "second json value", body: `{"text":"a"}{"text":"b"}`, wantMsg: msgTextRequired},
		{name: "too long", body: textBody(strings.Repeat("a", domain.MaxTextLength+1)), wantMsg: msgTextTooLong},
		{name: "too long in utf16", body: textBody(strings.Repeat("😀", domain.MaxTextLength/2) + "a"), wantMsg: msgTextTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubSummarizer{summary: "never"}
			h := NewHandler(stub, nil, discardLogger())

			code, resp := postSummarize(t, h, tc.body)

			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tc.wantMsg, resp["error"])
			assert.Zero(t, stub.calls.Load())
		})
	}
}

func TestHandlerAcceptsMaxLength(t *testing.T) {
	stub := &stubSummarizer{summary: "ok"}
	h := NewHandler(stub, nil, discardLogger())

	code, resp := postSummarize(t, h, textBody(strings.Repeat("a", domain.MaxTextLength)))

	require.Equal(t, http.StatusOK, code)
	assert.InDelta(t, domain.MaxTextLength, resp["originalLength"], 0)
	assert.Equal(t, int32(1), stub.calls.Load())
}

func TestHandlerNotConfigured(t *testing.T) {
	for _, h := range []*Handler{
		NewHandler(nil, summarizer.ErrNotConfigured, discardLogger()),
		NewHandler(nil, nil, discardLogger()),
	} {
		code, resp := postSummarize(t, h, textBody("some valid text"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, msgNotConfigured, resp["error"])
	}
}

func TestHandlerNotConfiguredFromFactory(t *testing.T) {
	s, err := summarizer.New(configWithBlankKey())
	h := NewHandler(s, err, discardLogger())

	code, resp := postSummarize(t, h, textBody("some valid text"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, msgNotConfigured, resp["error"])
}

func TestHandlerEmptySummary(t *testing.T) {
	for _, stub := range []*stubSummarizer{
		{summary: ""},
		{err: summarizer.ErrEmptySummary},
	} {
		h := NewHandler(stub, nil, discardLogger())

		code, resp := postSummarize(t, h, textBody("some valid text"))

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, msgFailedToSummarize, resp["error"])
	}
}

func TestHandlerProviderError(t *testing.T) {
	stub := &stubSummarizer{err: errors.New("connection reset by peer")}
	h := NewHandler(stub, nil, discardLogger())

	code, resp := postSummarize(t, h, textBody("some valid text"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "connection reset by peer", resp["error"])
	assert.Equal(t, int32(1), stub.calls.Load())
}

func TestHandlerProviderErrorWithoutMessage(t *testing.T) {
	stub := &stubSummarizer{err: errors.New("")}
	h := NewHandler(stub, nil, discardLogger())

	code, resp := postSummarize(t, h, textBody("some valid text"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, msgUnexpected, resp["error"])
}

func TestHandlerOversizedBody(t *testing.T) {
	stub := &stubSummarizer{summary: "never"}
	h := NewHandler(stub, nil, discardLogger())

	code, resp := postSummarize(t, h, textBody(strings.Repeat("a", maxRequestBodyBytes)))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.NotEmpty(t, resp["error"])
	assert.Zero(t, stub.calls.Load())
}

func TestHandlerAcceptsTrailingWhitespaceAfterBody(t *testing.T) {
	stub := &stubSummarizer{summary: "ok"}
	h := NewHandler(stub, nil, discardLogger())

	code, _ := postSummarize(t, h, textBody("some valid text")+" \n")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int32(1), stub.calls.Load())
}

func TestTrimText(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		" \t\n":             "",
		"\uFEFF":            "",
		"\uFEFFtext\u00A0":  "text",
		"  inner  spaces  ": "inner  spaces",
	}

	for in, want := range cases {
		if got := trimText(in); got != want {
			t.Errorf("trimText(%q) = %q, want %q", in, got, want)
		}
	}
}
