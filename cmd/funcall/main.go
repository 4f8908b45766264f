// Command funcall invokes a symbol from a shared library with typed
// arguments given on the command line, or executes a YAML call plan.
//
//	funcall -lib libm.so.6 -sym cbrt -ret f64 f64:8
//	funcall -plan plan.yaml
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Aloxaf/funcall"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

func initLogger(verbose, noColor bool) {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "funcall",
	}))

	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}

func main() {
	var (
		lib     = flag.String("lib", "", "Shared library path or search name")
		sym     = flag.String("sym", "", "Symbol to invoke")
		conv    = flag.String("conv", "cdecl", "Calling convention")
		ret     = flag.String("ret", "void", "Return type to read (void, i8..i64, u8..u64, ptr, f32, f64)")
		plan    = flag.String("plan", "", "YAML call plan to execute instead of a single call")
		verbose = flag.Bool("v", false, "Verbose mode")
		noColor = flag.Bool("n", false, "No color")
	)
	flag.Parse()
	initLogger(*verbose, *noColor)

	if *plan != "" {
		if err := runPlan(*plan); err != nil {
			log.Fatal("Plan failed", "plan", *plan, "error", err)
		}
		return
	}

	if *lib == "" || *sym == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -lib <library> -sym <symbol> [options] [kind:value ...]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
		os.Exit(2)
	}

	out, err := invoke(*lib, *sym, *conv, *ret, flag.Args())
	if err != nil {
		log.Fatal("Call failed", "symbol", *sym, "error", err)
	}
	if out != "" {
		fmt.Println(out)
	}
}

// invoke resolves sym in lib, pushes each kind:value argument and
// dispatches, returning the printable return value ("" for void).
func invoke(lib, sym, convName, retKind string, args []string) (string, error) {
	conv, err := funcall.ParseConvention(convName)
	if err != nil {
		return "", err
	}
	f, err := funcall.Open(lib, sym)
	if err != nil {
		return "", err
	}
	for _, spec := range args {
		if err := pushArg(f, spec); err != nil {
			return "", err
		}
	}
	log.Debug("Dispatching", "library", lib, "symbol", sym, "convention", convName, "args", len(args))
	ret, err := f.Call(conv)
	if err != nil {
		return "", err
	}
	return formatRet(ret, retKind)
}

func pushArg(f *funcall.Func, spec string) error {
	kind, val, ok := strings.Cut(spec, ":")
	if !ok {
		return fmt.Errorf("argument %q: want kind:value", spec)
	}
	switch kind {
	case "i8", "i16", "i32", "i64":
		n, err := strconv.ParseInt(val, 0, intBits(kind))
		if err != nil {
			return fmt.Errorf("argument %q: %w", spec, err)
		}
		switch kind {
		case "i8":
			f.Push(funcall.Int8(int8(n)))
		case "i16":
			f.Push(funcall.Int16(int16(n)))
		case "i32":
			f.Push(funcall.Int32(int32(n)))
		default:
			f.Push(funcall.Int64(n))
		}
	case "u8", "u16", "u32", "u64":
		n, err := strconv.ParseUint(val, 0, intBits(kind))
		if err != nil {
			return fmt.Errorf("argument %q: %w", spec, err)
		}
		switch kind {
		case "u8":
			f.Push(funcall.Uint8(uint8(n)))
		case "u16":
			f.Push(funcall.Uint16(uint16(n)))
		case "u32":
			f.Push(funcall.Uint32(uint32(n)))
		default:
			f.Push(funcall.Uint64(n))
		}
	case "ptr":
		n, err := strconv.ParseUint(val, 0, 64)
		if err != nil {
			return fmt.Errorf("argument %q: %w", spec, err)
		}
		f.Push(funcall.Uintptr(uintptr(n)))
	case "f32":
		v, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return fmt.Errorf("argument %q: %w", spec, err)
		}
		f.Push(funcall.Float32(float32(v)))
	case "f64":
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("argument %q: %w", spec, err)
		}
		f.Push(funcall.Float64(v))
	case "str":
		f.PushString(val)
	default:
		return fmt.Errorf("argument %q: unknown kind %q", spec, kind)
	}
	return nil
}

func intBits(kind string) int {
	switch kind[1:] {
	case "8":
		return 8
	case "16":
		return 16
	case "32":
		return 32
	default:
		return 64
	}
}

func formatRet(ret funcall.Ret, kind string) (string, error) {
	switch kind {
	case "void", "":
		return "", nil
	case "i8":
		return strconv.FormatInt(int64(ret.Int8()), 10), nil
	case "i16":
		return strconv.FormatInt(int64(ret.Int16()), 10), nil
	case "i32":
		return strconv.FormatInt(int64(ret.Int32()), 10), nil
	case "i64":
		return strconv.FormatInt(ret.Int64(), 10), nil
	case "u8":
		return strconv.FormatUint(uint64(ret.Uint8()), 10), nil
	case "u16":
		return strconv.FormatUint(uint64(ret.Uint16()), 10), nil
	case "u32":
		return strconv.FormatUint(uint64(ret.Uint32()), 10), nil
	case "u64":
		return strconv.FormatUint(ret.Uint64(), 10), nil
	case "ptr":
		return fmt.Sprintf("%#x", ret.Uintptr()), nil
	case "f32":
		return strconv.FormatFloat(float64(ret.Float32()), 'g', -1, 32), nil
	case "f64":
		return strconv.FormatFloat(ret.Float64(), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unknown return type %q", kind)
	}
}
