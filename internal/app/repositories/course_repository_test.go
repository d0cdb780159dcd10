package repositories

import (
	"reflect"
	"testing"
)

func TestEncodeTags(t *testing.T) {
	raw, err := encodeTags([]string{"go", "backend"})
	if err != nil {
		t.Fatalf("encodeTags: %v", err)
	}
	if raw != `["go","backend"]` {
		t.Fatalf("unexpected encoding: %s", raw)
	}

	// A nil slice still stores a well-formed empty document.
	raw, err = encodeTags(nil)
	if err != nil {
		t.Fatalf("encodeTags(nil): %v", err)
	}
	if raw != `[]` {
		t.Fatalf("nil tags must encode to an empty array, got %s", raw)
	}
}

func TestDecodeTags(t *testing.T) {
	doc := `["go","backend"]`
	tags, err := decodeTags(&doc)
	if err != nil {
		t.Fatalf("decodeTags: %v", err)
	}
	if !reflect.DeepEqual(tags, []string{"go", "backend"}) {
		t.Fatalf("round trip lost data: %v", tags)
	}

	// NULL columns and odd legacy documents come back as an empty slice,
	// never nil, so responses always serialize an array.
	for name, raw := range map[string]*string{
		"nil column":   nil,
		"empty string": strptr(""),
		"json null":    strptr("null"),
		"empty array":  strptr("[]"),
	} {
		tags, err := decodeTags(raw)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if tags == nil || len(tags) != 0 {
			t.Fatalf("%s: expected empty slice, got %#v", name, tags)
		}
	}
}

func TestDecodeTagsMalformed(t *testing.T) {
	doc := `{"not":"an array"}`
	if _, err := decodeTags(&doc); err == nil {
		t.Fatal("malformed document must fail to decode")
	}
}

func strptr(s string) *string { return &s }
