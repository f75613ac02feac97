package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/nmthang194/chapter-flow/internal/scheduler"
	"github.com/nmthang194/chapter-flow/internal/submitter"
)

func TestRender(t *testing.T) {
	r := &scheduler.Report{
		Total: 4,
		Successes: []scheduler.Outcome{
			{Identifier: "intro-video", Result: &submitter.Result{PublicID: "intro-video", AssetID: "abc123"}},
			{Identifier: "lecture-02", Result: &submitter.Result{PublicID: "lecture-02"}},
		},
		Failures: []scheduler.Outcome{
			{Identifier: "missing-video", Err: errors.New("resource not found")},
			{Identifier: "broken-video", Err: errors.New("invalid delivery type")},
		},
	}

	var buf bytes.Buffer
	Render(&buf, r)
	out := buf.String()

	for _, want := range []string{
		"intro-video", "lecture-02", "missing-video", "broken-video",
		"OK", "FAILED",
		"asset abc123",
		"resource not found", "invalid delivery type",
		"Total: 4  Succeeded: 2  Failed: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output missing %q\n%s", want, out)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, &scheduler.Report{})
	out := buf.String()

	if strings.Contains(out, "Video") {
		t.Errorf("Render() printed a table for an empty report:\n%s", out)
	}
	if !strings.Contains(out, "Total: 0  Succeeded: 0  Failed: 0") {
		t.Errorf("Render() output missing zero summary:\n%s", out)
	}
}
