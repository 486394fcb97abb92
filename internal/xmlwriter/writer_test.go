package xmlwriter

import (
	"strings"
	"testing"
)

func TestMarshal(t *testing.T) {
	root := NewElement("lootFilter")
	root.SetAttr("name", "Starter")

	rule := NewElement("rule")
	rule.SetAttr("n", "1")

	condition := NewElement("condition")
	condition.SetAttr("property", "Class")
	condition.SetAttr("value", "Currency")
	rule.AddChild(condition)

	root.AddChild(rule)

	got := string(Marshal(root))

	want := `<?xml version="1.0" encoding="UTF-8"?>
<lootFilter name="Starter">
  <rule n="1">
    <condition property="Class" value="Currency"/>
  </rule>
</lootFilter>
`
	if got != want {
		t.Errorf("Marshal output:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarshalTextElement(t *testing.T) {
	root := NewElement("description")
	root.Value = "cheap & cheerful <filter>"

	got := string(Marshal(root))

	if !strings.Contains(got, "cheap &amp; cheerful &lt;filter&gt;") {
		t.Errorf("text not escaped: %s", got)
	}
}

func TestMarshalWithoutDeclaration(t *testing.T) {
	options := DefaultOptions()
	options.IncludeXMLDeclaration = false

	got := string(MarshalWithOptions(NewElement("empty"), options))

	if got != "<empty/>\n" {
		t.Errorf("got %q, want %q", got, "<empty/>\n")
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`plain`, `plain`},
		{`a&b`, `a&amp;b`},
		{`<tag>`, `&lt;tag&gt;`},
		{`"quoted"`, `&quot;quoted&quot;`},
		{`it's`, `it&apos;s`},
	}

	for _, tt := range tests {
		if got := EscapeXML(tt.input); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
