package main

const header = "// Code generated by hashgen. DO NOT EDIT.\n\n"

const familyTemplate = header + `//go:build {{ .Enabled }}

package plugin

import (
	"xdao.co/hashes/algorithm"
	"xdao.co/hashes/hasher"
)
{{ range .Algorithms }}
// metadata{{ .TypeName }} holds the {{ .Identifier }} digest of {{ $.Vector | quote }}.
var metadata{{ .TypeName }} = hasher.Metadata{
	Hex: {{ .Hex | quote }},
	Multicodec: {{ printf "%#x" .Multicodec }},
	Binary: []byte{
{{- range .Rows }}
		{{ . }}
{{- end }}
	},
}
{{ end }}
func {{ .Family }}Commands() []hasher.Command {
	return []hasher.Command{
{{- range .Algorithms }}
		hasher.New[algorithm.{{ .TypeName }}](metadata{{ .TypeName }}),
{{- end }}
	}
}
`

const disabledTemplate = header + `//go:build {{ .Disabled }}

package plugin

import "xdao.co/hashes/hasher"

func {{ .Family }}Commands() []hasher.Command { return nil }
`

const testTemplate = header + `//go:build {{ .Enabled }}

package plugin

import (
	"testing"

	"xdao.co/hashes/algorithm"
	"xdao.co/hashes/hasher"
)
{{ range .Algorithms }}
func Test{{ .TypeName }}Examples(t *testing.T) {
	testExamples(t, hasher.New[algorithm.{{ .TypeName }}](metadata{{ .TypeName }}))
}
{{ end -}}
`

const commandsTemplate = header + `package plugin

import "xdao.co/hashes/hasher"

// commands lists every compiled-in command, family by family.
func commands() []hasher.Command {
	var out []hasher.Command
{{- range .Families }}
	out = append(out, {{ . }}Commands()...)
{{- end }}
	return out
}
`
