// exrheader prints the attribute headers of OpenEXR files.
//
// Usage:
//
//	exrheader [-v] [-k] [-s] [-q] <filename> [<filename> ...]
//
// Options:
//
//	-v, --verbose  Report skipped attributes, layers and ID manifest contents.
//	-k, --keep     Keep attributes of unknown types and print their bodies as hex.
//	-s, --strict   Check that every part has the required attributes.
//	-q, --quiet    Only output errors. Exit code indicates pass/fail.
//	-h, --help     Show this help message.
//	--version      Show version information.
//
// Exit codes:
//
//	0: All headers read (and valid, with -s)
//	1: One or more files malformed or invalid
//	2: Error (file not found, etc.)
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/mrjoshuak/go-exrattr/attr"
	"github.com/mrjoshuak/go-exrattr/exrid"
	"github.com/mrjoshuak/go-exrattr/exrmeta"
	"github.com/mrjoshuak/go-exrattr/internal/xdr"
)

const version = "1.0.0"

type options struct {
	verbose bool
	keep    bool
	strict  bool
	quiet   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	files := []string{}

	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			opts.verbose = true
		case "-k", "--keep":
			opts.keep = true
		case "-s", "--strict":
			opts.strict = true
		case "-q", "--quiet":
			opts.quiet = true
		case "-h", "--help":
			printUsage(stdout)
			return 0
		case "--version":
			fmt.Fprintf(stdout, "exrheader version %s\n", version)
			return 0
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(stderr, "Unknown option: %s\n", arg)
				printUsage(stderr)
				return 2
			}
			files = append(files, arg)
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(stderr, "Error: No input files specified")
		printUsage(stderr)
		return 2
	}

	code := 0
	for _, filename := range files {
		switch err := dumpFile(filename, opts, stdout); {
		case err == nil:
		case isInvalid(err):
			fmt.Fprintf(stderr, "%s: invalid: %v\n", filename, err)
			code = max(code, 1)
		default:
			fmt.Fprintf(stderr, "%s: error: %v\n", filename, err)
			code = 2
		}
	}
	return code
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage: exrheader [options] <filename> [<filename> ...]

Print the attribute headers of OpenEXR files.

Options:
  -v, --verbose  Report skipped attributes, layers and ID manifest contents.
  -k, --keep     Keep attributes of unknown types and print their bodies as hex.
  -s, --strict   Check that every part has the required attributes.
  -q, --quiet    Only output errors. Exit code indicates pass/fail.
  -h, --help     Show this help message.
  --version      Show version information.

Exit codes:
  0: All headers read (and valid, with -s)
  1: One or more files malformed or invalid
  2: Error (file not found, permission denied, etc.)`)
}

// isInvalid reports whether err describes the file contents rather than a
// failure to access it.
func isInvalid(err error) bool {
	return errors.Is(err, attr.ErrMalformedAttribute) ||
		errors.Is(err, attr.ErrNotEXR) ||
		errors.Is(err, attr.ErrUnsupportedVersion) ||
		errors.Is(err, attr.ErrAttributeNotFound) ||
		errors.Is(err, attr.ErrInvalidAttribute) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

func dumpFile(filename string, opts options, out io.Writer) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	var skipped []string
	readOpts := &attr.ReadOptions{
		KeepUnknown: opts.keep,
		OnSkip: func(name, typeName string, size int) {
			if !opts.keep {
				skipped = append(skipped, fmt.Sprintf("%s (%s, %d bytes)", name, typeName, size))
			}
		},
	}
	fh, err := attr.ReadFileHeaders(bufio.NewReader(f), readOpts)
	if err != nil {
		return err
	}

	if !opts.quiet {
		fmt.Fprintf(out, "%s: %s\n", filename, describeVersion(fh.Version))
		for i, h := range fh.Headers {
			if len(fh.Headers) > 1 {
				fmt.Fprintf(out, "part %d:\n", i)
			}
			printHeader(out, h, opts.keep)
			if opts.verbose {
				printDetails(out, h)
			}
		}
		if opts.verbose {
			for _, s := range skipped {
				fmt.Fprintf(out, "  skipped %s\n", s)
			}
		}
	}

	if opts.strict {
		var errs []error
		for i, h := range fh.Headers {
			if err := h.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("part %d: %w", i, err))
			}
		}
		return errors.Join(errs...)
	}
	return nil
}

func describeVersion(v attr.Version) string {
	parts := []string{fmt.Sprintf("version %d", v.Number())}
	if v.IsTiled() {
		parts = append(parts, "tiled")
	}
	if v.HasLongNames() {
		parts = append(parts, "long names")
	}
	if v.IsNonImage() {
		parts = append(parts, "deep")
	}
	if v.IsMultiPart() {
		parts = append(parts, "multipart")
	}
	return strings.Join(parts, ", ")
}

func printHeader(out io.Writer, h *attr.Header, keep bool) {
	scratch := xdr.NewBufferWriter(256)
	for _, a := range h.Attributes() {
		scratch.Reset()
		if err := a.Value.WriteValueTo(scratch, attr.DefaultVersion); err != nil {
			fmt.Fprintf(out, "  %s (type %s): <%v>\n", a.Name, a.Type(), err)
			continue
		}
		fmt.Fprintf(out, "  %s (type %s, %d bytes): %s\n", a.Name, a.Type(), scratch.Len(), formatValue(a.Value))
		if o, ok := a.Value.(*attr.Opaque); ok && keep && len(o.Data) > 0 {
			for _, line := range strings.Split(strings.TrimRight(hex.Dump(o.Data), "\n"), "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
	}
}

// printDetails reports what can be derived from the attributes: the
// channel layers and the decoded ID manifest.
func printDetails(out io.Writer, h *attr.Header) {
	if layers := exrmeta.Layers(h); len(layers) > 0 {
		fmt.Fprintf(out, "  layers: %s\n", strings.Join(layers, ", "))
	}
	if !exrid.HasManifest(h) {
		return
	}
	m, err := exrid.ReadManifest(h)
	if err != nil {
		fmt.Fprintf(out, "  id manifest: <%v>\n", err)
		return
	}
	for _, g := range m.Groups {
		fmt.Fprintf(out, "  id manifest: %s, %d ids, %s hash, %s lifetime\n",
			strings.Join(g.Channels, " "), len(g.Entries), g.Hash, g.Lifetime)
	}
}

func formatValue(v attr.Value) string {
	switch v := v.(type) {
	case *attr.Box2i:
		return fmt.Sprintf("(%d %d) - (%d %d)", v.Min.X, v.Min.Y, v.Max.X, v.Max.Y)
	case *attr.Box2f:
		return fmt.Sprintf("(%g %g) - (%g %g)", v.Min.X, v.Min.Y, v.Max.X, v.Max.Y)
	case *attr.ChannelList:
		var sb strings.Builder
		for _, c := range v.Channels() {
			fmt.Fprintf(&sb, "\n    %s, %s, sampling %d %d", c.Name, c.Type, c.XSampling, c.YSampling)
			if c.PLinear {
				sb.WriteString(", plinear")
			}
		}
		return fmt.Sprintf("%d channels%s", v.Len(), sb.String())
	case *attr.Chromaticities:
		return fmt.Sprintf("red (%g %g), green (%g %g), blue (%g %g), white (%g %g)",
			v.RedX, v.RedY, v.GreenX, v.GreenY, v.BlueX, v.BlueY, v.WhiteX, v.WhiteY)
	case *attr.Compression:
		return v.String()
	case *attr.LineOrder:
		return v.String()
	case *attr.EnvMap:
		return v.String()
	case *attr.DeepImageState:
		return v.String()
	case *attr.Rational:
		return fmt.Sprintf("%d/%d (%g)", v.Num, v.Denom, v.Float64())
	case *attr.String:
		return fmt.Sprintf("%q", string(*v))
	case *attr.StringVector:
		return fmt.Sprintf("%q", []string(*v))
	case *attr.TileDescription:
		return fmt.Sprintf("%dx%d, level mode %d, rounding %d", v.XSize, v.YSize, v.Mode, v.RoundingMode)
	case *attr.TimeCode:
		return v.String()
	case *attr.Bytes:
		return fmt.Sprintf("%q, %d bytes", v.TypeHint, len(v.Data))
	case *attr.Preview:
		return fmt.Sprintf("%dx%d", v.Width, v.Height)
	case *attr.IDManifest:
		return fmt.Sprintf("%d bytes compressed, %d uncompressed", len(v.Data), v.UncompressedSize)
	case *attr.Opaque:
		return fmt.Sprintf("unknown type, %d bytes", len(v.Data))
	default:
		// Scalars, vectors, matrices and key codes print well as-is.
		return fmt.Sprint(reflect.Indirect(reflect.ValueOf(v)).Interface())
	}
}
