package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"xdao.co/hashes/algorithm"
	"xdao.co/hashes/config"
	"xdao.co/hashes/hasher"
	"xdao.co/hashes/plugin"
	"xdao.co/hashes/structured"
	"xdao.co/hashes/transport/grpcplugin"
	"xdao.co/hashes/value"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := runContext(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	return runContext(context.Background(), args, os.Stdin, out, errOut)
}

func runContext(ctx context.Context, args []string, in io.Reader, out io.Writer, errOut io.Writer) int {
	// --config may only precede the subcommand.
	configPath := ""
	for len(args) > 0 && (args[0] == "--config" || strings.HasPrefix(args[0], "--config=")) {
		if v, ok := strings.CutPrefix(args[0], "--config="); ok {
			configPath, args = v, args[1:]
			continue
		}
		if len(args) < 2 {
			fmt.Fprintln(errOut, "--config requires a path")
			return 2
		}
		configPath, args = args[1], args[2:]
	}
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	cfg, err := config.Resolve(configPath)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	env := &cli{ctx: ctx, cfg: cfg, in: in, out: out, errOut: errOut}

	switch args[0] {
	case "list":
		return env.cmdList(args[1:])
	case "help", "-h", "--help":
		if len(args) > 1 {
			return env.cmdHelp(args[1:])
		}
		printUsage(out)
		return 0
	case "remote":
		return env.cmdRemote(args[1:])
	case "version":
		fmt.Fprintln(out, plugin.Version)
		return 0
	default:
		return env.cmdHash(args[0], args[1:], nil)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "hashes: hash files, strings and structured values")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  hashes [--config <file>] list [--class any|cryptographic|checksum]")
	fmt.Fprintln(w, "  hashes [--config <file>] help <algorithm>")
	fmt.Fprintln(w, "  hashes [--config <file>] <algorithm> [-b|-m|--cid] [--file <path>] [--string <s>] [--input-format <f>] [--output-format <f>] [cell-path ...]")
	fmt.Fprintln(w, "  hashes [--config <file>] remote [--target <addr>] list")
	fmt.Fprintln(w, "  hashes [--config <file>] remote [--target <addr>] <algorithm> [flags] [cell-path ...]")
	fmt.Fprintln(w, "  hashes version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - input is read from --file or stdin; raw input is hashed as a byte stream")
	fmt.Fprintln(w, "  - structured input (yaml, json, jsonc, cbor) hashes the leaves named by cell paths, e.g. rows.0.name or meta.\"a.b\"?")
	fmt.Fprintln(w, "  - the input format defaults to the --file extension, then to input_format from the config")
	fmt.Fprintln(w, "  - "+config.EnvConfig+" names the config file when --config is not given")
}

type cli struct {
	ctx    context.Context
	cfg    config.Config
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func (c *cli) cmdList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	className := fs.String("class", "any", "any, cryptographic or checksum")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return 2
	}
	class, ok := algorithm.ParseClass(*className)
	if !ok {
		fmt.Fprintf(c.errOut, "unknown class %q\n", *className)
		return 2
	}
	for _, d := range algorithm.List(class) {
		mc := "-"
		if d.Multicodec != 0 {
			mc = fmt.Sprintf("0x%x", d.Multicodec)
		}
		fmt.Fprintf(c.out, "%s\t%s\t%d\t%s\t%s\n", d.Identifier, d.Family, d.Size, d.Class, mc)
	}
	return 0
}

func (c *cli) cmdHelp(args []string) int {
	p, err := plugin.New()
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return 1
	}
	cmd, ok := p.Lookup(args[0])
	if !ok {
		fmt.Fprintf(c.errOut, "unknown algorithm: %s\n", args[0])
		return 2
	}
	sig := cmd.Signature()
	fmt.Fprintln(c.out, sig.Description)
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Usage:\n  hashes %s [flags] [%s ...]\n\n", cmd.Algorithm(), sig.Rest.Shape)
	fmt.Fprintln(c.out, "Flags:")
	for _, s := range sig.Switches {
		short := "   "
		if s.Short != 0 {
			short = fmt.Sprintf("-%c,", s.Short)
		}
		fmt.Fprintf(c.out, "  %s --%s: %s\n", short, s.Long, s.Description)
	}
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Parameters:\n  ...%s <%s>: %s\n\n", sig.Rest.Name, sig.Rest.Shape, sig.Rest.Description)
	fmt.Fprintln(c.out, "Input/output types:")
	for _, t := range sig.InputOutputs {
		fmt.Fprintf(c.out, "  %s -> %s\n", t.Input, t.Output)
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Examples:")
	for _, ex := range cmd.Examples() {
		fmt.Fprintf(c.out, "  %s\n  $ %s\n", ex.Description, ex.Example)
		if ex.Result != nil {
			fmt.Fprintf(c.out, "  %s\n", ex.Result)
		}
		fmt.Fprintln(c.out)
	}
	return 0
}

// runner executes one command; it is the local plugin or a remote client.
type runner func(ctx context.Context, command string, call hasher.Call) (value.Value, error)

type hashFlags struct {
	binary       bool
	multihash    bool
	cid          bool
	output       string
	file         string
	str          string
	inputFormat  string
	outputFormat string
	chunkSize    int
}

func (h *hashFlags) register(fs *flag.FlagSet, cfg config.Config) {
	fs.BoolVarP(&h.binary, "binary", "b", false, "Output binary instead of hexadecimal representation")
	fs.BoolVarP(&h.multihash, "multihash", "m", false, "Output a base58btc multihash")
	fs.BoolVar(&h.cid, "cid", false, "Output a CIDv1 with the raw codec")
	fs.StringVar(&h.output, "output", cfg.Output, "Default output mode when no switch is given: hex, binary, multihash or cid")
	fs.StringVarP(&h.file, "file", "f", "", "Read input from this file instead of stdin")
	fs.StringVarP(&h.str, "string", "s", "", "Hash this string instead of reading input")
	fs.StringVarP(&h.inputFormat, "input-format", "i", "", "raw, yaml, json, jsonc or cbor")
	fs.StringVarP(&h.outputFormat, "output-format", "o", cfg.OutputFormat, "raw, yaml, json, jsonc or cbor")
	fs.IntVar(&h.chunkSize, "chunk-size", cfg.ChunkSize, "Stream read size in bytes")
}

func (h *hashFlags) call(fs *flag.FlagSet, paths []string) (hasher.Call, error) {
	call := hasher.Call{
		CellPaths: paths,
		Binary:    h.binary,
		Multihash: h.multihash,
		CID:       h.cid,
		ChunkSize: h.chunkSize,
	}
	if !h.binary && !h.multihash && !h.cid {
		m, err := hasher.ParseMode(h.output)
		if err != nil {
			return call, err
		}
		call = call.WithMode(m)
	}
	if fs.Changed("string") && fs.Changed("file") {
		return call, errors.New("--string and --file are mutually exclusive")
	}
	return call, nil
}

func (c *cli) cmdHash(alg string, args []string, remote runner) int {
	fs := flag.NewFlagSet(alg, flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	var h hashFlags
	h.register(fs, c.cfg)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return c.cmdHelp([]string{alg})
		}
		return 2
	}
	call, err := h.call(fs, fs.Args())
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return 2
	}
	outFormat, err := structured.ParseFormat(h.outputFormat)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		return 2
	}

	input, closeFn, err := c.input(fs, &h)
	if err != nil {
		fmt.Fprintln(c.errOut, err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	defer closeFn()
	call.Input = input

	exec := remote
	if exec == nil {
		p, err := plugin.New()
		if err != nil {
			fmt.Fprintln(c.errOut, err)
			return 1
		}
		exec = p.Run
	}
	v, err := exec(c.ctx, alg, call)
	if err != nil {
		return c.reportCallError(err)
	}
	if err := structured.Encode(c.out, outFormat, v); err != nil {
		fmt.Fprintf(c.errOut, "write output: %v\n", err)
		return 1
	}
	if v.IsError() {
		return 1
	}
	return 0
}

var errUsage = errors.New("usage")

// input opens the call's input: a string value, a raw byte stream, or a
// decoded structured document.
func (c *cli) input(fs *flag.FlagSet, h *hashFlags) (hasher.Input, func(), error) {
	noop := func() {}
	if fs.Changed("string") {
		return hasher.ValueInput(value.String(h.str)), noop, nil
	}

	format := structured.Raw
	switch {
	case h.inputFormat != "":
		f, err := structured.ParseFormat(h.inputFormat)
		if err != nil {
			return hasher.Input{}, noop, fmt.Errorf("%w: %v", errUsage, err)
		}
		format = f
	case h.file != "" && structured.FromExtension(h.file) != structured.Raw:
		format = structured.FromExtension(h.file)
	default:
		f, _ := structured.ParseFormat(c.cfg.InputFormat)
		format = f
	}

	r := c.in
	closeFn := noop
	if h.file != "" {
		f, err := os.Open(h.file)
		if err != nil {
			return hasher.Input{}, noop, fmt.Errorf("open input: %w", err)
		}
		r = f
		closeFn = func() { _ = f.Close() }
	}
	if format == structured.Raw {
		return hasher.StreamInput(r), closeFn, nil
	}
	defer closeFn()
	data, err := io.ReadAll(r)
	if err != nil {
		return hasher.Input{}, noop, fmt.Errorf("read input: %w", err)
	}
	v, err := structured.Decode(format, data)
	if err != nil {
		return hasher.Input{}, noop, fmt.Errorf("decode %s input: %w", format, err)
	}
	return hasher.ValueInput(v), noop, nil
}

func (c *cli) reportCallError(err error) int {
	if rule := hasher.RuleID(err); rule != "" {
		fmt.Fprintf(c.errOut, "%s: %v\n", rule, err)
	} else {
		fmt.Fprintln(c.errOut, err)
	}
	switch {
	case hasher.IsKind(err, hasher.KindArguments):
		return 2
	case hasher.IsKind(err, hasher.KindInterrupted):
		return 130
	default:
		return 1
	}
}

func (c *cli) cmdRemote(args []string) int {
	fs := flag.NewFlagSet("remote", flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	fs.SetInterspersed(false)
	target := fs.String("target", c.cfg.GRPC.Target, "Daemon address")
	timeout := fs.Duration("timeout", c.cfg.GRPC.Timeout, "Per-call timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(c.errOut, "usage: hashes remote [--target <addr>] (list | <algorithm> [flags] [cell-path ...])")
		return 2
	}

	client, err := grpcplugin.Dial(*target, grpcplugin.DialOptions{
		Timeout:     10 * time.Second,
		MaxMsgBytes: c.cfg.GRPC.MaxMsgBytes,
	})
	if err != nil {
		fmt.Fprintf(c.errOut, "dial %s: %v\n", *target, err)
		return 1
	}
	defer client.Close()
	client.Timeout = *timeout

	if fs.Arg(0) == "list" {
		infos, err := client.Commands(c.ctx)
		if err != nil {
			return c.reportCallError(err)
		}
		for _, info := range infos {
			fmt.Fprintf(c.out, "%s\t%s\n", info.Signature.Name, info.Signature.Description)
		}
		return 0
	}
	return c.cmdHash(fs.Arg(0), fs.Args()[1:], client.Run)
}
