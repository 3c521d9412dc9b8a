package defines

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/dcrodman/objdefs/internal/registry"
)

// Line numbers differ between the source and a rendered header. Comments
// that were not valid in the source encoding do not survive re-encoding.
func normalize(entries []registry.Entry, keepComments bool) []registry.Entry {
	out := make([]registry.Entry, len(entries))
	for i, e := range entries {
		e.Line = 0
		if !keepComments {
			e.Comment = ""
		}
		out[i] = e
	}
	return out
}

func byNamespace(entries []registry.Entry) map[registry.Namespace][]registry.Entry {
	out := make(map[registry.Namespace][]registry.Entry)
	for _, e := range entries {
		out[e.Namespace] = append(out[e.Namespace], e)
	}
	return out
}

func TestRender(t *testing.T) {
	doc := mustParse(t, sampleHeader)
	reg, err := doc.Registry()
	if err != nil {
		t.Fatalf("Registry() returned an unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, reg, RenderOptions{}); err != nil {
		t.Fatalf("Render() returned an unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"#ifndef __DEFINE_OBJ\n#define __DEFINE_OBJ\n",
		"// LAST ID = 189\n",
		"#define MI_FEMALE  12\t// heroine\n",
		"//#define MI_BUFF    15\n",
		"\n#endif\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() output is missing %q:\n%s", want, out)
		}
	}

	rendered := mustParse(t, out)
	if rendered.DeclaredLastID() != 189 {
		t.Errorf("rendered DeclaredLastID() = %d, want 189", rendered.DeclaredLastID())
	}
	if diff := deep.Equal(byNamespace(normalize(doc.Entries(), true)), byNamespace(normalize(rendered.Entries(), true))); diff != nil {
		t.Errorf("rendered header parsed to different entries: %v", diff)
	}
}

func TestRender_DefineObj(t *testing.T) {
	doc, err := ParseFile(defineObjFile)
	if err != nil {
		t.Fatalf("ParseFile() returned an unexpected error: %v", err)
	}
	reg, err := doc.Registry()
	if err != nil {
		t.Fatalf("Registry() returned an unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, reg, RenderOptions{Guard: "__DEFINE_OBJ_H"}); err != nil {
		t.Fatalf("Render() returned an unexpected error: %v", err)
	}
	rendered, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse() of the rendered header returned an unexpected error: %v", err)
	}
	if diff := deep.Equal(byNamespace(normalize(doc.Entries(), false)), byNamespace(normalize(rendered.Entries(), false))); diff != nil {
		t.Errorf("rendered defineObj.h parsed to different entries: %v", diff)
	}

	renderedReg, err := rendered.Registry()
	if err != nil {
		t.Fatalf("Registry() returned an unexpected error: %v", err)
	}
	// The banner now carries the real last ID, so it is no longer stale.
	if n := renderedReg.Validate().Count(registry.StaleLastID); n != 0 {
		t.Errorf("rendered header still has %d stale LAST ID findings", n)
	}
}

func TestRender_CommentStaysOnOneLine(t *testing.T) {
	reg, err := registry.New([]registry.Entry{
		{Namespace: registry.Ctrl, Name: "CI_A", Value: 10, Comment: "first\n#define CI_B 11"},
	})
	if err != nil {
		t.Fatalf("New() returned an unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, reg, RenderOptions{}); err != nil {
		t.Fatalf("Render() returned an unexpected error: %v", err)
	}

	want := []registry.Entry{
		{Namespace: registry.Ctrl, Name: "CI_A", Value: 10, Comment: "first #define CI_B 11"},
	}
	if diff := deep.Equal(normalize(mustParse(t, buf.String()).Entries(), true), want); diff != nil {
		t.Errorf("rendered header does not parse back to one define: %v", diff)
	}
}
