package algorithm

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"xdao.co/hashes/digest"
)

// Descriptor describes one compiled-in algorithm.
//
// Families register their descriptors in init():
//
//	algorithm.MustRegister(describe[SHA1](familySHA1, ClassCryptographic, 0x11))
//
// An algorithm is only present in a binary when its family's build tags allow
// the family file to compile.
type Descriptor struct {
	Identifier string
	Family     string
	// TypeName is the Go type name of the adapter in this package.
	TypeName string
	Class    Class
	Size     int
	// Multicodec is the multihash code of the algorithm, or zero when the
	// multicodec table does not assign one.
	Multicodec uint64

	New func() digest.Adapter
}

var (
	mu          sync.RWMutex
	descriptors = map[string]Descriptor{}
)

// Register registers an algorithm descriptor.
func Register(d Descriptor) error {
	if d.Identifier == "" {
		return fmt.Errorf("algorithm: identifier is required")
	}
	if d.Family == "" {
		return fmt.Errorf("algorithm: %q missing family", d.Identifier)
	}
	if d.New == nil {
		return fmt.Errorf("algorithm: %q missing constructor", d.Identifier)
	}
	if d.Class == 0 {
		return fmt.Errorf("algorithm: %q missing class", d.Identifier)
	}
	if d.Size <= 0 {
		return fmt.Errorf("algorithm: %q has invalid size %d", d.Identifier, d.Size)
	}

	mu.Lock()
	defer mu.Unlock()
	if prev, exists := descriptors[d.Identifier]; exists {
		return fmt.Errorf("algorithm: %q already registered by %s", d.Identifier, prev.TypeName)
	}
	descriptors[d.Identifier] = d
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(d Descriptor) {
	if err := Register(d); err != nil {
		panic(err)
	}
}

// List returns descriptors matching class, sorted by family then identifier.
func List(class Class) []Descriptor {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d.Class.allows(class) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].Identifier < out[j].Identifier
	})
	return out
}

// Identifiers returns identifiers matching class, sorted.
func Identifiers(class Class) []string {
	ds := List(class)
	n := make([]string, 0, len(ds))
	for _, d := range ds {
		n = append(n, d.Identifier)
	}
	sort.Strings(n)
	return n
}

// Families returns the names of the compiled-in families, sorted.
func Families() []string {
	seen := map[string]struct{}{}
	for _, d := range List(ClassAny) {
		seen[d.Family] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the descriptor registered under id.
func Lookup(id string) (Descriptor, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := descriptors[id]
	return d, ok
}

// Open returns a fresh adapter for the named algorithm.
func Open(id string) (digest.Adapter, error) {
	d, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("unknown algorithm %q", id)
	}
	return d.New(), nil
}

func describe[T any, A digest.Algorithm[T]](family string, class Class, multicodec uint64) Descriptor {
	a := digest.New[T, A]()
	return Descriptor{
		Identifier: a.Identifier(),
		Family:     family,
		TypeName:   reflect.TypeOf((*T)(nil)).Elem().Name(),
		Class:      class,
		Size:       a.Size(),
		Multicodec: multicodec,
		New:        func() digest.Adapter { return digest.New[T, A]() },
	}
}
