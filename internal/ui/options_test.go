package ui

import (
	"testing"

	"github.com/marden/nodeglass/internal/catalog"
)

func TestParseInput(t *testing.T) {
	boolSpec := catalog.OptionSpec{Key: "server", Type: catalog.Bool}
	intSpec := catalog.OptionSpec{Key: "maxconnections", Type: catalog.Int}
	strSpec := catalog.OptionSpec{Key: "datadir", Type: catalog.Str}
	multiSpec := catalog.OptionSpec{Key: "addnode", Type: catalog.MultiStr}

	tests := []struct {
		name    string
		spec    catalog.OptionSpec
		in      string
		wantErr bool
	}{
		{name: "bool one", spec: boolSpec, in: "1"},
		{name: "bool true", spec: boolSpec, in: "TRUE"},
		{name: "bool no", spec: boolSpec, in: "no"},
		{name: "bool junk", spec: boolSpec, in: "maybe", wantErr: true},
		{name: "int ok", spec: intSpec, in: "125"},
		{name: "int negative", spec: intSpec, in: "-1"},
		{name: "int junk", spec: intSpec, in: "lots", wantErr: true},
		{name: "str anything", spec: strSpec, in: "/mnt/btc data"},
		{name: "multi list", spec: multiSpec, in: "a.example:8333, b.example:8333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInput(tt.spec, tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseInput(%q) expected error, got %+v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseInput(%q) error: %v", tt.in, err)
			}
			if got.Type != tt.spec.Type {
				t.Fatalf("parseInput(%q) type = %v, want %v", tt.in, got.Type, tt.spec.Type)
			}
		})
	}
}

func TestParseInputBoolValues(t *testing.T) {
	spec := catalog.OptionSpec{Key: "txindex", Type: catalog.Bool}

	v, err := parseInput(spec, "yes")
	if err != nil || !v.Bool {
		t.Fatalf("parseInput(yes) = %+v, %v, want true", v, err)
	}
	v, err = parseInput(spec, "0")
	if err != nil || v.Bool {
		t.Fatalf("parseInput(0) = %+v, %v, want false", v, err)
	}
}

func TestParseInputMultiSplitsAndTrims(t *testing.T) {
	spec := catalog.OptionSpec{Key: "addnode", Type: catalog.MultiStr}

	v, err := parseInput(spec, " one:8333 ,, two:8333 ")
	if err != nil {
		t.Fatalf("parseInput error: %v", err)
	}
	if len(v.Strs) != 2 || v.Strs[0] != "one:8333" || v.Strs[1] != "two:8333" {
		t.Fatalf("parseInput multi = %#v", v.Strs)
	}
}

func TestParseInputIntValue(t *testing.T) {
	spec := catalog.OptionSpec{Key: "rpcport", Type: catalog.Int}

	v, err := parseInput(spec, "18443")
	if err != nil || v.Int != 18443 {
		t.Fatalf("parseInput(18443) = %+v, %v", v, err)
	}
}
