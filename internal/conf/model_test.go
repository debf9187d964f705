package conf

import (
	"errors"
	"testing"

	"github.com/marden/nodeglass/internal/catalog"
)

func parseModel(t *testing.T, text string) *Model {
	t.Helper()
	doc, _ := Parse(text)
	return NewModel(doc, catalog.Default())
}

func TestGetTypedValues(t *testing.T) {
	m := parseModel(t, "server=1\nmaxconnections=40\ndatadir=/mnt/btc\naddnode=a:8333\naddnode=b:8333\n")

	v, ok, err := m.Get(DefaultSection, "server")
	if err != nil || !ok || !v.Bool {
		t.Fatalf("server = %+v, %v, %v", v, ok, err)
	}

	v, ok, err = m.Get(DefaultSection, "maxconnections")
	if err != nil || !ok || v.Int != 40 {
		t.Fatalf("maxconnections = %+v, %v, %v", v, ok, err)
	}

	v, ok, err = m.Get(DefaultSection, "datadir")
	if err != nil || !ok || v.Str != "/mnt/btc" {
		t.Fatalf("datadir = %+v, %v, %v", v, ok, err)
	}

	v, ok, err = m.Get(DefaultSection, "addnode")
	if err != nil || !ok {
		t.Fatalf("addnode = %v, %v", ok, err)
	}
	if len(v.Strs) != 2 || v.Strs[0] != "a:8333" || v.Strs[1] != "b:8333" {
		t.Fatalf("addnode values = %#v", v.Strs)
	}
}

func TestGetBoolForms(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"1", true}, {"true", true}, {"YES", true},
		{"0", false}, {"False", false}, {"no", false},
	}

	for _, tt := range tests {
		m := parseModel(t, "server="+tt.raw+"\n")
		v, ok, err := m.Get(DefaultSection, "server")
		if err != nil || !ok {
			t.Fatalf("server=%s: Get = %v, %v", tt.raw, ok, err)
		}
		if v.Bool != tt.want {
			t.Fatalf("server=%s decoded %v, want %v", tt.raw, v.Bool, tt.want)
		}
	}
}

func TestGetTypeMismatch(t *testing.T) {
	m := parseModel(t, "server=maybe\nrpcport=lots\n")

	_, ok, err := m.Get(DefaultSection, "server")
	var mismatch *TypeMismatchError
	if ok || !errors.As(err, &mismatch) {
		t.Fatalf("server=maybe: Get = %v, %v, want TypeMismatchError", ok, err)
	}
	if mismatch.Found != "maybe" {
		t.Fatalf("mismatch.Found = %q", mismatch.Found)
	}

	_, ok, err = m.Get(DefaultSection, "rpcport")
	if ok || !errors.As(err, &mismatch) {
		t.Fatalf("rpcport=lots: Get = %v, %v, want TypeMismatchError", ok, err)
	}
}

func TestGetAbsentAndUnknown(t *testing.T) {
	m := parseModel(t, "server=1\nweirdkey=5\n")

	// Known key, not set.
	if _, ok, err := m.Get(DefaultSection, "txindex"); ok || err != nil {
		t.Fatalf("txindex = %v, %v, want unset with no error", ok, err)
	}

	// Unknown key never decodes, even when present in the file.
	if _, ok, err := m.Get(DefaultSection, "weirdkey"); ok || err != nil {
		t.Fatalf("weirdkey = %v, %v, want unset with no error", ok, err)
	}

	// Absent section is an error.
	_, _, err := m.Get("test", "server")
	var notFound *SectionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Get(test) err = %v, want SectionNotFoundError", err)
	}
}

func TestSetPreservesPositionAndComment(t *testing.T) {
	m := parseModel(t, "# head\nserver=0 # keep me\nlisten=1\n")

	if err := m.Set(DefaultSection, "server", BoolValue(true)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	sec := m.Document().Section(DefaultSection)
	if sec.Entries[1].Key != "server" {
		t.Fatalf("server moved: %+v", sec.Entries)
	}
	if sec.Entries[1].Value != "1" {
		t.Fatalf("server value = %q, want 1", sec.Entries[1].Value)
	}
	if sec.Entries[1].InlineComment != "# keep me" {
		t.Fatalf("inline comment lost: %+v", sec.Entries[1])
	}
}

func TestSetAppendsNewKey(t *testing.T) {
	m := parseModel(t, "server=1\n")

	if err := m.Set(DefaultSection, "rpcport", IntValue(18443)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	sec := m.Document().Section(DefaultSection)
	last := sec.Entries[len(sec.Entries)-1]
	if last.Key != "rpcport" || last.Value != "18443" {
		t.Fatalf("appended entry = %+v", last)
	}

	v, ok, err := m.Get(DefaultSection, "rpcport")
	if err != nil || !ok || v.Int != 18443 {
		t.Fatalf("Get after Set = %+v, %v, %v", v, ok, err)
	}
}

func TestSetCreatesSection(t *testing.T) {
	m := NewEmptyModel(catalog.Default())

	if err := m.Set("test", "rpcport", IntValue(18332)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	v, ok, err := m.Get("test", "rpcport")
	if err != nil || !ok || v.Int != 18332 {
		t.Fatalf("Get = %+v, %v, %v", v, ok, err)
	}
}

func TestSetDefaultSectionPrecedesNamedSections(t *testing.T) {
	m := parseModel(t, "[test]\nrpcport=18332\n")

	if err := m.Set(DefaultSection, "daemon", BoolValue(true)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if m.Document().Sections[0].Name != DefaultSection {
		t.Fatalf("default section not first: %v", m.SectionNames())
	}

	out := Serialize(m.Document())
	if want := "daemon=1\n[test]\nrpcport=18332\n"; out != want {
		t.Fatalf("Serialize = %q, want %q", out, want)
	}

	// The edit must survive a save/reload cycle in the default section.
	reparsed, _ := Parse(out)
	m2 := NewModel(reparsed, catalog.Default())
	v, ok, err := m2.Get(DefaultSection, "daemon")
	if err != nil || !ok || !v.Bool {
		t.Fatalf("Get after reparse = %+v, %v, %v", v, ok, err)
	}
	if v2, ok2, _ := m2.Get("test", "daemon"); ok2 {
		t.Fatalf("edit leaked into [test]: %+v", v2)
	}
}

func TestSetTypeChecked(t *testing.T) {
	m := NewEmptyModel(catalog.Default())

	err := m.Set(DefaultSection, "server", IntValue(5))
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Set wrong type err = %v, want TypeMismatchError", err)
	}
}

func TestSetMultiStrReplacesRunInPlace(t *testing.T) {
	m := parseModel(t, "addnode=a:8333\nserver=1\naddnode=b:8333\nlisten=0\n")

	if err := m.Set(DefaultSection, "addnode", MultiStrValue("x:8333", "y:8333", "z:8333")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	sec := m.Document().Section(DefaultSection)
	var keys []string
	for _, e := range sec.Entries {
		keys = append(keys, e.Key)
	}
	want := []string{"addnode", "addnode", "addnode", "server", "listen"}
	if len(keys) != len(want) {
		t.Fatalf("entries after Set = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("entries after Set = %v, want %v", keys, want)
		}
	}

	v, ok, err := m.Get(DefaultSection, "addnode")
	if err != nil || !ok || len(v.Strs) != 3 || v.Strs[0] != "x:8333" {
		t.Fatalf("Get addnode = %+v, %v, %v", v, ok, err)
	}
}

func TestSetThenGetAllTypes(t *testing.T) {
	m := NewEmptyModel(catalog.Default())

	sets := []struct {
		key   string
		value FieldValue
	}{
		{"server", BoolValue(true)},
		{"daemon", BoolValue(false)},
		{"maxconnections", IntValue(40)},
		{"datadir", StrValue("/mnt/btc")},
		{"addnode", MultiStrValue("a:8333", "b:8333", "c:8333")},
	}

	for _, s := range sets {
		if err := m.Set(DefaultSection, s.key, s.value); err != nil {
			t.Fatalf("Set(%s): %v", s.key, err)
		}
	}

	for _, s := range sets {
		v, ok, err := m.Get(DefaultSection, s.key)
		if err != nil || !ok {
			t.Fatalf("Get(%s) = %v, %v", s.key, ok, err)
		}
		if v.Type != s.value.Type {
			t.Fatalf("Get(%s).Type = %v, want %v", s.key, v.Type, s.value.Type)
		}
		switch v.Type {
		case catalog.Bool:
			if v.Bool != s.value.Bool {
				t.Fatalf("Get(%s) = %v, want %v", s.key, v.Bool, s.value.Bool)
			}
		case catalog.Int:
			if v.Int != s.value.Int {
				t.Fatalf("Get(%s) = %d, want %d", s.key, v.Int, s.value.Int)
			}
		case catalog.Str:
			if v.Str != s.value.Str {
				t.Fatalf("Get(%s) = %q, want %q", s.key, v.Str, s.value.Str)
			}
		case catalog.MultiStr:
			if len(v.Strs) != len(s.value.Strs) {
				t.Fatalf("Get(%s) = %#v, want %#v", s.key, v.Strs, s.value.Strs)
			}
			for i := range v.Strs {
				if v.Strs[i] != s.value.Strs[i] {
					t.Fatalf("Get(%s)[%d] = %q, want %q", s.key, i, v.Strs[i], s.value.Strs[i])
				}
			}
		}
	}
}

func TestRemove(t *testing.T) {
	m := parseModel(t, "addnode=a:8333\nserver=1\naddnode=b:8333\n")

	if err := m.Remove(DefaultSection, "addnode"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := m.Get(DefaultSection, "addnode"); ok {
		t.Fatal("addnode still set after Remove")
	}

	sec := m.Document().Section(DefaultSection)
	if len(sec.Entries) != 1 || sec.Entries[0].Key != "server" {
		t.Fatalf("entries after Remove = %+v", sec.Entries)
	}

	// Removing an absent key is a no-op.
	if err := m.Remove(DefaultSection, "txindex"); err != nil {
		t.Fatalf("Remove absent key: %v", err)
	}

	// Removing from an absent section is an error.
	var notFound *SectionNotFoundError
	if err := m.Remove("test", "server"); !errors.As(err, &notFound) {
		t.Fatalf("Remove absent section err = %v", err)
	}
}

func TestUnknownEntries(t *testing.T) {
	m := parseModel(t, "server=1\nfuturething=7\nanother=x\n")

	entries, err := m.UnknownEntries(DefaultSection)
	if err != nil {
		t.Fatalf("UnknownEntries: %v", err)
	}
	if len(entries) != 2 || entries[0].Key != "futurething" || entries[1].Key != "another" {
		t.Fatalf("unknown entries = %+v", entries)
	}
}

func TestSectionNames(t *testing.T) {
	m := parseModel(t, "server=1\n[test]\nrpcport=1\n[signet]\n")

	names := m.SectionNames()
	want := []string{DefaultSection, "test", "signet"}
	if len(names) != len(want) {
		t.Fatalf("SectionNames = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("SectionNames = %v, want %v", names, want)
		}
	}
}
