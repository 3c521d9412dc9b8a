package defines

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/encoding"

	"github.com/dcrodman/objdefs/internal/registry"
)

// DefaultGuard is the include guard of defineObj.h.
const DefaultGuard = "__DEFINE_OBJ"

// RenderOptions controls Render. The zero value renders defineObj.h style
// output in EUC-KR.
type RenderOptions struct {
	Guard    string
	Encoding encoding.Encoding
}

// Render writes reg as a header: one section per namespace in source order,
// retired entries as //#define lines, and a LAST ID banner carrying the
// computed last ID rather than a hand-maintained one.
func Render(w io.Writer, reg *registry.Registry, opts RenderOptions) error {
	if opts.Guard == "" {
		opts.Guard = DefaultGuard
	}
	if opts.Encoding == nil {
		enc, err := LookupEncoding("")
		if err != nil {
			return err
		}
		opts.Encoding = enc
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#ifndef %s\n#define %s\n\n", opts.Guard, opts.Guard)
	fmt.Fprintf(bw, "// LAST ID = %d\n", reg.LastID())

	sections := make(map[registry.Namespace][]registry.Entry)
	for _, e := range reg.All() {
		sections[e.Namespace] = append(sections[e.Namespace], e)
	}
	for _, ns := range registry.Namespaces {
		entries := sections[ns]
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(bw, "\n// %s: %s\n", ns.Alias(), ns.Description())

		width := 0
		for _, e := range entries {
			if len(e.Name) > width {
				width = len(e.Name)
			}
		}
		for _, e := range entries {
			if e.Deprecated {
				bw.WriteString("//")
			}
			fmt.Fprintf(bw, "#define %-*s %d", width, e.Name, e.Value)
			if e.Comment != "" {
				bw.WriteString("\t// ")
				bw.Write(encodeText(opts.Encoding, e.Comment))
			}
			bw.WriteString("\n")
		}
	}
	fmt.Fprintf(bw, "\n#endif\n")
	return bw.Flush()
}
