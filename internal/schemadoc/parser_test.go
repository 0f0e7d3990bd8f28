package schemadoc

import (
	"reflect"
	"testing"
)

// --- StripCheck ---

func TestStripCheck_Wrapped(t *testing.T) {
	got := StripCheck("CHECK ((count > 0))")
	if got != "(count > 0)" {
		t.Errorf("StripCheck = %q, want (count > 0)", got)
	}
}

func TestStripCheck_CaseInsensitive(t *testing.T) {
	got := StripCheck("check (weight_grams > 0)")
	if got != "weight_grams > 0" {
		t.Errorf("StripCheck = %q, want weight_grams > 0", got)
	}
}

func TestStripCheck_Unwrapped(t *testing.T) {
	got := StripCheck("  count > 0 ")
	if got != "count > 0" {
		t.Errorf("StripCheck = %q, want count > 0", got)
	}
}

// --- ParseEnumValues ---

func TestParseEnumValues_InList(t *testing.T) {
	values, ok := ParseEnumValues("CHECK (status IN ('active', 'harvested', 'failed'))")
	if !ok {
		t.Fatal("IN list should parse as enum")
	}
	want := []string{"active", "harvested", "failed"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}
}

func TestParseEnumValues_PostgresAnyArray(t *testing.T) {
	// The shape Postgres renders back from information_schema.
	def := "((status)::text = ANY ((ARRAY['active'::character varying, 'harvested'::character varying, 'failed'::character varying])::text[]))"
	values, ok := ParseEnumValues(def)
	if !ok {
		t.Fatal("= ANY (ARRAY[...]) should parse as enum")
	}
	want := []string{"active", "harvested", "failed"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}
}

func TestParseEnumValues_AnyArrayTextLiterals(t *testing.T) {
	def := "(phase = ANY (ARRAY['sown'::text, 'germinated'::text]))"
	values, ok := ParseEnumValues(def)
	if !ok {
		t.Fatal("ANY with ::text literals should parse as enum")
	}
	want := []string{"sown", "germinated"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}
}

func TestParseEnumValues_EscapedQuote(t *testing.T) {
	values, ok := ParseEnumValues("category IN ('gardener''s note', 'task')")
	if !ok {
		t.Fatal("escaped quote list should parse")
	}
	want := []string{"gardener's note", "task"}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}
}

func TestParseEnumValues_NotAnEnum(t *testing.T) {
	for _, def := range []string{
		"CHECK (count > 0)",
		"(columns > 0)",
		"weight_grams IS NOT NULL",
		"",
	} {
		if _, ok := ParseEnumValues(def); ok {
			t.Errorf("ParseEnumValues(%q) should not parse as enum", def)
		}
	}
}
