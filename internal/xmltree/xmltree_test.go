package xmltree

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<lootFilter name="Starter" version="1.2">
  <description>A starter filter</description>
  <rule n="1" name="currency">
    <condition property="Class" operator="eq" value="Currency"/>
    <action type="Hide"/>
  </rule>
</lootFilter>`

	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if root.Name != "lootFilter" {
		t.Errorf("root name = %q, want %q", root.Name, "lootFilter")
	}
	if v, ok := root.Attr("name"); !ok || v != "Starter" {
		t.Errorf("root name attribute = %q, %v", v, ok)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}

	desc := root.Children[0]
	if desc.Name != "description" || desc.Text != "A starter filter" {
		t.Errorf("description = %q / %q", desc.Name, desc.Text)
	}

	rules := root.ChildrenNamed("rule")
	if len(rules) != 1 {
		t.Fatalf("got %d rule children, want 1", len(rules))
	}
	if len(rules[0].Children) != 2 {
		t.Errorf("rule has %d children, want 2", len(rules[0].Children))
	}
}

func TestParseAttrOrder(t *testing.T) {
	root, err := Parse(strings.NewReader(`<a z="1" b="2" m="3"/>`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := []string{"z", "b", "m"}
	if len(root.AttrOrder) != len(want) {
		t.Fatalf("AttrOrder = %v, want %v", root.AttrOrder, want)
	}
	for i, name := range want {
		if root.AttrOrder[i] != name {
			t.Errorf("AttrOrder[%d] = %q, want %q", i, root.AttrOrder[i], name)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty document", ""},
		{"unclosed element", "<a><b></a>"},
		{"text only", "just text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Parse(%q) returned no error", tt.input)
			}
		})
	}
}

func TestParseIgnoresNamespaceDeclarations(t *testing.T) {
	root, err := Parse(strings.NewReader(`<a xmlns:xs="http://www.w3.org/2001/XMLSchema" id="7"/>`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if _, ok := root.Attr("xs"); ok {
		t.Error("namespace declaration leaked into attributes")
	}
	if v, ok := root.Attr("id"); !ok || v != "7" {
		t.Errorf("id attribute = %q, %v", v, ok)
	}
}
