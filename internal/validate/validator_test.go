package validate

import "testing"

func TestValidate_NoHeader(t *testing.T) {
	out := Validate("a.md", "# Just a doc\nno header here\n")
	if out.HadHeader {
		t.Fatalf("expected HadHeader=false")
	}
}

func TestValidate_Basic(t *testing.T) {
	text := "---\nname: My Skill\ntype: skill\nstatus: draft\ntags: a, b, c\nrelated: [foo, bar]\n---\nSee [[foo]].\n"
	out := Validate("skills/my-skill.md", text)
	if !out.HadHeader || !out.Valid {
		t.Fatalf("expected valid record with header, got %+v", out)
	}
	if out.Record.ID != "my-skill" {
		t.Errorf("expected id my-skill, got %q", out.Record.ID)
	}
	if out.Record.DisplayName != "My Skill" {
		t.Errorf("unexpected display name: %q", out.Record.DisplayName)
	}
	if out.Record.Kind != KindSkill {
		t.Errorf("unexpected kind: %q", out.Record.Kind)
	}
	if out.Record.Status != StatusDraft {
		t.Errorf("unexpected status: %q", out.Record.Status)
	}
	if len(out.Record.Tags) != 3 {
		t.Errorf("expected 3 tags, got %v", out.Record.Tags)
	}
	if len(out.Record.Related) != 2 || out.Record.Related[0] != "foo" {
		t.Errorf("unexpected related: %v", out.Record.Related)
	}
	if len(out.Record.WikiLinks) != 1 || out.Record.WikiLinks[0].Target != "foo" {
		t.Errorf("unexpected wiki links: %v", out.Record.WikiLinks)
	}
}

func TestValidate_MissingName(t *testing.T) {
	text := "---\ntype: skill\n---\nbody\n"
	out := Validate("skills/fallback.md", text)
	if out.Valid {
		t.Fatalf("expected invalid record when name missing")
	}
	if len(out.Errors) == 0 {
		t.Fatalf("expected an error for missing name")
	}
	if out.Record.DisplayName != "fallback" {
		t.Errorf("expected fallback display name from file stem, got %q", out.Record.DisplayName)
	}
}

func TestValidate_UnknownTypeFallsBackWithWarning(t *testing.T) {
	text := "---\nname: Foo\ntype: bogus\n---\nbody\n"
	out := Validate("foo.md", text)
	if out.Record.Kind != KindSkill {
		t.Errorf("expected fallback kind skill, got %q", out.Record.Kind)
	}
	if len(out.Warnings) == 0 {
		t.Errorf("expected a coercion warning")
	}
	if !out.Valid {
		t.Errorf("unknown type should not invalidate the record")
	}
}

func TestValidate_MocFlagForcesKind(t *testing.T) {
	text := "---\nname: Foo\ntype: skill\nmoc: true\n---\nbody\n"
	out := Validate("foo.md", text)
	if out.Record.Kind != KindMOC {
		t.Errorf("expected moc flag to force kind=moc, got %q", out.Record.Kind)
	}
}

func TestValidate_VersionNumberCoercion(t *testing.T) {
	text := "---\nname: Foo\nversion: 2\n---\nbody\n"
	out := Validate("foo.md", text)
	if out.Record.Version != "2" {
		t.Errorf("expected version coerced to string \"2\", got %q", out.Record.Version)
	}
}

func TestValidate_SingleStringRelatedWraps(t *testing.T) {
	text := "---\nname: Foo\nrelated: bar\n---\nbody\n"
	out := Validate("foo.md", text)
	if len(out.Record.Related) != 1 || out.Record.Related[0] != "bar" {
		t.Errorf("expected related to wrap single string, got %v", out.Record.Related)
	}
}

func TestValidate_PassThroughFields(t *testing.T) {
	text := "---\nname: Foo\ndescription: a thing\ncustom_key: 42\n---\nbody\n"
	out := Validate("foo.md", text)
	if out.Record.Extra["description"] != "a thing" {
		t.Errorf("expected description passthrough, got %v", out.Record.Extra["description"])
	}
	if out.Record.Extra["custom_key"] != 42 {
		t.Errorf("expected custom_key passthrough, got %v", out.Record.Extra["custom_key"])
	}
}
