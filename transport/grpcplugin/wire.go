package grpcplugin

import (
	"encoding/hex"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"xdao.co/hashes/codec"
	"xdao.co/hashes/hasher"
	"xdao.co/hashes/value"
)

// request is the CBOR payload of Run, and the header of RunStream.
type request struct {
	Command   string      `cbor:"command"`
	CellPaths []string    `cbor:"cell_paths,omitempty"`
	Binary    bool        `cbor:"binary,omitempty"`
	Multihash bool        `cbor:"multihash,omitempty"`
	CID       bool        `cbor:"cid,omitempty"`
	ChunkSize int         `cbor:"chunk_size,omitempty"`
	Input     *codec.Wire `cbor:"input,omitempty"`
}

func newRequest(command string, call hasher.Call) request {
	req := request{
		Command:   command,
		CellPaths: call.CellPaths,
		Binary:    call.Binary,
		Multihash: call.Multihash,
		CID:       call.CID,
		ChunkSize: call.ChunkSize,
	}
	if !call.Input.IsStream() {
		w := codec.ToWire(call.Input.Value)
		req.Input = &w
	}
	return req
}

func (r request) call() hasher.Call {
	return hasher.Call{
		CellPaths: r.CellPaths,
		Binary:    r.Binary,
		Multihash: r.Multihash,
		CID:       r.CID,
		ChunkSize: r.ChunkSize,
	}
}

// CommandInfo is a command's self-description as seen by a remote host.
type CommandInfo struct {
	Signature hasher.Signature
	Examples  []ExampleInfo
}

// ExampleInfo is an example with its result rendered as text: strings as-is
// and binary as lowercase hex.
type ExampleInfo struct {
	Description string
	Example     string
	Result      string
}

func exampleResult(v *value.Value) any {
	if v == nil {
		return nil
	}
	if s, ok := v.AsString(); ok {
		return s
	}
	if b, ok := v.AsBinary(); ok {
		return hex.EncodeToString(b)
	}
	return v.String()
}

func commandToStruct(cmd hasher.Command) map[string]any {
	sig := cmd.Signature()
	ios := make([]any, 0, len(sig.InputOutputs))
	for _, io := range sig.InputOutputs {
		ios = append(ios, map[string]any{"input": io.Input, "output": io.Output})
	}
	switches := make([]any, 0, len(sig.Switches))
	for _, s := range sig.Switches {
		short := ""
		if s.Short != 0 {
			short = string(s.Short)
		}
		switches = append(switches, map[string]any{"long": s.Long, "short": short, "description": s.Description})
	}
	examples := make([]any, 0, 3)
	for _, ex := range cmd.Examples() {
		examples = append(examples, map[string]any{
			"description": ex.Description,
			"example":     ex.Example,
			"result":      exampleResult(ex.Result),
		})
	}
	return map[string]any{
		"name":           sig.Name,
		"description":    sig.Description,
		"category":       sig.Category,
		"input_output":   ios,
		"switches":       switches,
		"rest":           map[string]any{"name": sig.Rest.Name, "shape": sig.Rest.Shape, "description": sig.Rest.Description},
		"allow_variants": sig.AllowVariants,
		"examples":       examples,
	}
}

func signatureList(cmds []hasher.Command) (*structpb.ListValue, error) {
	items := make([]any, 0, len(cmds))
	for _, c := range cmds {
		items = append(items, commandToStruct(c))
	}
	return structpb.NewList(items)
}

func commandsFromList(l *structpb.ListValue) ([]CommandInfo, error) {
	out := make([]CommandInfo, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		m, ok := v.AsInterface().(map[string]any)
		if !ok {
			return nil, fmt.Errorf("signature %d is not a struct", i)
		}
		info := CommandInfo{Signature: hasher.Signature{
			Name:          str(m["name"]),
			Description:   str(m["description"]),
			Category:      str(m["category"]),
			AllowVariants: m["allow_variants"] == true,
		}}
		for _, x := range list(m["input_output"]) {
			io := dict(x)
			info.Signature.InputOutputs = append(info.Signature.InputOutputs, hasher.InputOutput{Input: str(io["input"]), Output: str(io["output"])})
		}
		for _, x := range list(m["switches"]) {
			s := dict(x)
			sw := hasher.Switch{Long: str(s["long"]), Description: str(s["description"])}
			if short := []rune(str(s["short"])); len(short) == 1 {
				sw.Short = short[0]
			}
			info.Signature.Switches = append(info.Signature.Switches, sw)
		}
		rest := dict(m["rest"])
		info.Signature.Rest = hasher.Rest{Name: str(rest["name"]), Shape: str(rest["shape"]), Description: str(rest["description"])}
		for _, x := range list(m["examples"]) {
			ex := dict(x)
			info.Examples = append(info.Examples, ExampleInfo{
				Description: str(ex["description"]),
				Example:     str(ex["example"]),
				Result:      str(ex["result"]),
			})
		}
		if info.Signature.Name == "" {
			return nil, fmt.Errorf("signature %d has no name", i)
		}
		out = append(out, info)
	}
	return out, nil
}

func str(x any) string {
	s, _ := x.(string)
	return s
}

func list(x any) []any {
	l, _ := x.([]any)
	return l
}

func dict(x any) map[string]any {
	m, _ := x.(map[string]any)
	return m
}
