package extract

import (
	"reflect"
	"testing"
)

func TestSplitEntries(t *testing.T) {
	source := "static header</p><p>one</p><p>two</p>"
	entries := SplitEntries(source)
	want := []string{"<p>one", "<p>two"}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Expected %v, got %v", want, entries)
	}
}

func TestSplitEntries_NoBoundary(t *testing.T) {
	if entries := SplitEntries("no paragraphs here"); entries != nil {
		t.Errorf("Expected nil for boundary-free input, got %v", entries)
	}
}

func TestFragments(t *testing.T) {
	entry := `<b>publication</b>EDCS-ID:<i>EDCS-00100</i> vir<!--place-->`
	fragments, err := Fragments(entry)
	if err != nil {
		t.Fatalf("Fragments failed: %v", err)
	}
	want := []string{"publication", "EDCS-00100", "vir", "<!--place"}
	if !reflect.DeepEqual(fragments, want) {
		t.Errorf("Expected %v, got %v", want, fragments)
	}
}

func TestFragments_DropsLabelsAndBlanks(t *testing.T) {
	entry := "<b>pub</b>\n<i>:</i><i> </i><i>EDCS-00200</i>"
	fragments, err := Fragments(entry)
	if err != nil {
		t.Fatalf("Fragments failed: %v", err)
	}
	want := []string{"pub", "EDCS-00200"}
	if !reflect.DeepEqual(fragments, want) {
		t.Errorf("Expected %v, got %v", want, fragments)
	}
}

func TestFragments_NonBreakingSpaceRemoved(t *testing.T) {
	fragments, err := Fragments("<p>a\u00a0b c</p>")
	if err != nil {
		t.Fatalf("Fragments failed: %v", err)
	}
	want := []string{"ab c"}
	if !reflect.DeepEqual(fragments, want) {
		t.Errorf("Expected %v, got %v", want, fragments)
	}
}

func TestFragments_ScriptIgnored(t *testing.T) {
	fragments, err := Fragments("<p>kept</p><script>var x = 1;</script>")
	if err != nil {
		t.Fatalf("Fragments failed: %v", err)
	}
	want := []string{"kept"}
	if !reflect.DeepEqual(fragments, want) {
		t.Errorf("Expected %v, got %v", want, fragments)
	}
}
