package catalog

import "testing"

func TestDefaultLookup(t *testing.T) {
	cat := Default()

	tests := []struct {
		key     string
		want    ValueType
		section string
	}{
		{"server", Bool, SectionRPC},
		{"maxconnections", Int, SectionNetwork},
		{"datadir", Str, SectionCore},
		{"addnode", MultiStr, SectionNetwork},
		{"txindex", Bool, SectionCore},
		{"rpcport", Int, SectionRPC},
		{"debug", MultiStr, SectionDebugging},
		{"zmqpubrawblock", Str, SectionZMQ},
	}

	for _, tt := range tests {
		spec, ok := cat.Lookup(tt.key)
		if !ok {
			t.Fatalf("Lookup(%q) not found", tt.key)
		}
		if spec.Type != tt.want {
			t.Fatalf("Lookup(%q).Type = %v, want %v", tt.key, spec.Type, tt.want)
		}
		if spec.Section != tt.section {
			t.Fatalf("Lookup(%q).Section = %q, want %q", tt.key, spec.Section, tt.section)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	cat := Default()
	if _, ok := cat.Lookup("notanoption"); ok {
		t.Fatal("Lookup(notanoption) should not be found")
	}
	if cat.Known("") {
		t.Fatal("Known(empty) = true")
	}
}

func TestPidFileKey(t *testing.T) {
	spec, ok := Default().Lookup(PidFileKey)
	if !ok {
		t.Fatalf("pid key missing from default catalog")
	}
	if spec.Type != Str {
		t.Fatalf("pid type = %v, want Str", spec.Type)
	}
	if spec.Default != "bitcoind.pid" {
		t.Fatalf("pid default = %q", spec.Default)
	}
}

func TestSectionsOrder(t *testing.T) {
	sections := Default().Sections()
	want := []string{
		SectionCore, SectionNetwork, SectionRPC, SectionWallet,
		SectionDebugging, SectionMining, SectionRelay, SectionZMQ,
	}
	if len(sections) != len(want) {
		t.Fatalf("Sections() = %v, want %v", sections, want)
	}
	for i := range want {
		if sections[i] != want[i] {
			t.Fatalf("Sections()[%d] = %q, want %q", i, sections[i], want[i])
		}
	}
}

func TestSectionSpecs(t *testing.T) {
	cat := Default()
	for _, section := range cat.Sections() {
		specs := cat.SectionSpecs(section)
		if len(specs) == 0 {
			t.Fatalf("section %q has no specs", section)
		}
		for _, spec := range specs {
			if spec.Section != section {
				t.Fatalf("spec %q leaked into section %q", spec.Key, section)
			}
		}
	}
	if specs := cat.SectionSpecs("Nope"); specs != nil {
		t.Fatalf("SectionSpecs(Nope) = %v, want nil", specs)
	}
}

func TestNewLaterDuplicateWins(t *testing.T) {
	cat := New([]OptionSpec{
		{Key: "server", Type: Bool, Section: "A"},
		{Key: "server", Type: Int, Section: "B"},
	})
	spec, ok := cat.Lookup("server")
	if !ok || spec.Type != Int {
		t.Fatalf("Lookup(server) = %+v, %v, want later Int spec", spec, ok)
	}
}

func TestSpecsReturnsCopy(t *testing.T) {
	cat := Default()
	specs := cat.Specs()
	specs[0].Key = "mutated"
	if again := cat.Specs(); again[0].Key == "mutated" {
		t.Fatal("Specs() exposed internal slice")
	}
}
