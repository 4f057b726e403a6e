package algorithm

import (
	"testing"

	"xdao.co/hashes/digest"
	"xdao.co/hashes/digest/digesttest"
)

// Digests of digest.TestVector.
var vectors = map[string]string{
	"sha1":        "32d10c7b8cf96570ca04ce37f2a19d84240d3a89",
	"sha224":      "45a5f72c39c5cff2522eb3429799e49e5f44b356ef926bcf390dccc2",
	"sha256":      "71c480df93d6ae2f1efad1447c66c9525e316218cf51fc8d9ed832f2daf18b73",
	"sha384":      "feb67349df3db6f5924815d6c3dc133f091809213731fe5c7b5f4999e463479ff2877f5f2936fa63bb43784b12f3ebb4",
	"sha512":      "4dbff86cc2ca1bae1e16468a05cb9881c97f1753bce3619034898faa1aabe429955a1bf8ec483d7421fe3c1646613a59ed5441fb0f321389f77f48a879c7b1f1",
	"sha512-224":  "ff83148aa07ec30655c1b40aff86141c0215fe2a54f767d3f38743d8",
	"sha512-256":  "fc3189443f9c268f626aea08a756abe7b726b05f701cb08222312ccfd6710a26",
	"sha3-224":    "5cdeca81e123f87cad96b9cba999f16f6d41549608d4e0f4681b8239",
	"sha3-256":    "7cab2dc765e21b241dbc1c255ce620b29f527c6d5e7f5f843e56288f0d707521",
	"sha3-384":    "fed399d2217aaf4c717ad0c5102c15589e1c990cc2b9a5029056a7f7485888d6ab65db2370077a5cadb53fc9280d278f",
	"sha3-512":    "af328d17fa28753a3c9f5cb72e376b90440b96f0289e5703b729324a975ab384eda565fc92aaded143669900d761861687acdc0a5ffa358bd0571aaad80aca68",
	"keccak256":   "9230175b13981da14d2f3334f321eb78fa0473133f6da3de896feb22fb258936",
	"keccak512":   "e55bdca64dfe33f36ae3153c727833f9947d92958073f4dd02e38a82d8acb282b1ee1330a68252a54c6d3d27306508ca765acd45606caeaf51d6bdc459f551f1",
	"shake128":    "961c919c0854576e561320e81514bf3724197d0715e16a364520384ee997f6ef",
	"shake256":    "b7b78b04a3dd30a265c8886c33fda94799853de5d3d10541fd4e9f4613701c61075249bed16b0781108fcfe086dbf38a7fb8300807cea85cc649328d07d4ff2b",
	"blake2s-256": "bdf88eb1f86a0cdf0e840ba88fa118508369df186c7355b4b16cf79fa2710a12",
	"blake2b-256": "117ad6b940f5e8292c007d9c7e7350cd33cf85b5887e8da71c7957830f536e7c",
	"blake2b-384": "5cad60ce23b9dc62eabdd149a16307ef916e0637506fa10cf8c688430da6c978a0cb7857fd138977bd281e8cfd5bfd1f",
	"blake2b-512": "c68ede143e416eb7b4aaae0d8e48e55dd529eafed10b1df1a61416953a2b0a5666c761e7d412e6709e31ffe221b7a7a73908cb95a4d120b8b090a87d1fbedb4c",
	"blake3":      "2468eec8894acfb4e4df3a51ea916ba115d48268287754290aae8e9e6228e85f",
	"md4":         "d79e1c308aa5bbcdeea8ed63df412da9",
	"md5":         "c3fcd3d76192e4007dfb496cca67e13b",
	"ripemd160":   "f71c27109c692c1b56bbdceb5b9d2865b3708dbc",
	"sm3":         "b80fe97a4da24afc277564f66a359ef440462ad28dcc6d63adb24d5c20a61595",
	"whirlpool":   "f1d754662636ffe92c82ebb9212a484a8d38631ead4238f5442ee13b8054e41b08bf2a9251c30b6a0b8aae86177ab4a6f68f673e7207865d5d9819a3dba4eb3b",
	"crc32-ieee":  "4c2750bd",
	"crc32c":      "9ee6ef25",
	"crc64-iso":   "429b9880b74a49f0",
	"crc64-ecma":  "26967875751b122f",
	"xxhash64":    "cfe1f278fa89835c",
}

func TestRegisteredAlgorithmsConform(t *testing.T) {
	ds := List(ClassAny)
	if len(ds) == 0 {
		t.Fatalf("no algorithms registered")
	}
	for _, d := range ds {
		d := d
		t.Run(d.Identifier, func(t *testing.T) {
			want, ok := vectors[d.Identifier]
			if !ok {
				t.Fatalf("no test vector for %q", d.Identifier)
			}
			digesttest.RunAdapterConformance(t, d.New, want)
			if d.Size != len(want)/2 {
				t.Fatalf("descriptor size %d, want %d", d.Size, len(want)/2)
			}
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	ok := Descriptor{
		Identifier: "test-only",
		Family:     "test",
		TypeName:   "testOnly",
		Class:      ClassChecksum,
		Size:       4,
		New:        func() digest.Adapter { return nil },
	}

	bad := []func(d Descriptor) Descriptor{
		func(d Descriptor) Descriptor { d.Identifier = ""; return d },
		func(d Descriptor) Descriptor { d.Family = ""; return d },
		func(d Descriptor) Descriptor { d.New = nil; return d },
		func(d Descriptor) Descriptor { d.Class = 0; return d },
		func(d Descriptor) Descriptor { d.Size = 0; return d },
	}
	for i, mutate := range bad {
		if err := Register(mutate(ok)); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	ds := List(ClassAny)
	if len(ds) == 0 {
		t.Skip("no algorithms registered")
	}
	if err := Register(ds[0]); err == nil {
		t.Fatalf("expected duplicate registration of %q to fail", ds[0].Identifier)
	}
}

func TestListIsSortedAndFiltered(t *testing.T) {
	ds := List(ClassAny)
	for i := 1; i < len(ds); i++ {
		a, b := ds[i-1], ds[i]
		if a.Family > b.Family || (a.Family == b.Family && a.Identifier >= b.Identifier) {
			t.Fatalf("List not sorted at %d: %s/%s then %s/%s", i, a.Family, a.Identifier, b.Family, b.Identifier)
		}
	}
	for _, d := range List(ClassChecksum) {
		if d.Class != ClassChecksum {
			t.Fatalf("%s listed as checksum but has class %s", d.Identifier, d.Class)
		}
	}
	if got, want := len(List(ClassChecksum))+len(List(ClassCryptographic)), len(ds); got != want {
		t.Fatalf("class partition: %d vs %d", got, want)
	}
}

func TestLookupAndOpen(t *testing.T) {
	for _, id := range Identifiers(ClassAny) {
		d, ok := Lookup(id)
		if !ok || d.Identifier != id {
			t.Fatalf("Lookup(%q) = %v, %v", id, d.Identifier, ok)
		}
		a, err := Open(id)
		if err != nil {
			t.Fatalf("Open(%q): %v", id, err)
		}
		if a.Identifier() != id {
			t.Fatalf("Open(%q) returned %q", id, a.Identifier())
		}
		if d.TypeName == "" {
			t.Fatalf("%q has empty TypeName", id)
		}
	}
	if _, err := Open("no-such-hash"); err == nil {
		t.Fatalf("expected error for unknown algorithm")
	}
}

func TestParseClass(t *testing.T) {
	for _, c := range []Class{ClassCryptographic, ClassChecksum, ClassAny} {
		got, ok := ParseClass(c.String())
		if !ok || got != c {
			t.Fatalf("ParseClass(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseClass("bogus"); ok {
		t.Fatalf("expected bogus class to be rejected")
	}
}
