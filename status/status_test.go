package status_test

import (
	"encoding/json"
	"testing"

	"github.com/go-mclib/mcserver/status"
	"github.com/go-mclib/mcserver/text"
)

func TestBuildShape(t *testing.T) {
	snap := status.New().
		WithVersion("1.20.4", 765).
		WithPlayers(20, 3).
		WithSample([]status.Sample{{Name: "Notch", UUID: "069a79f4-44e9-4726-a5be-fca90e38aaf5"}}).
		WithDescription(text.NewText("hello")).
		WithEnforcesSecureChat(true)

	out, err := snap.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	version := parsed["version"].(map[string]any)
	if version["name"] != "1.20.4" || version["protocol"] != float64(765) {
		t.Fatalf("version = %v", version)
	}

	players := parsed["players"].(map[string]any)
	if players["max"] != float64(20) || players["online"] != float64(3) {
		t.Fatalf("players = %v", players)
	}
	sample := players["sample"].([]any)
	if len(sample) != 1 {
		t.Fatalf("sample = %v", sample)
	}

	if parsed["enforcesSecureChat"] != true {
		t.Fatalf("enforcesSecureChat = %v", parsed["enforcesSecureChat"])
	}
	if _, hasFavicon := parsed["favicon"]; hasFavicon {
		t.Fatalf("favicon should be omitted when unset")
	}

	desc := parsed["description"].(map[string]any)
	if desc["text"] != "hello" {
		t.Fatalf("description = %v", desc)
	}
}

func TestBuildOmitsOptionalFieldsWhenUnset(t *testing.T) {
	snap := status.New().WithVersion("1.20.4", 765).WithPlayers(20, 0).WithDescription(text.NewText(""))
	out, err := snap.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := parsed["enforcesSecureChat"]; ok {
		t.Fatalf("enforcesSecureChat should be omitted")
	}
	if _, ok := parsed["favicon"]; ok {
		t.Fatalf("favicon should be omitted")
	}
}

func TestBuildGradientMotdAtHighProtocol(t *testing.T) {
	motd := text.ParseTag("<gradient:#ff0000:#0000ff>AB</gradient>", 760)
	snap := status.New().WithVersion("1.20.4", 760).WithPlayers(20, 0).
		WithDescription(motd).WithDescriptionProtocol(760)

	out, err := snap.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	desc := parsed["description"].(map[string]any)
	extra := desc["extra"].([]any)
	if len(extra) != 2 {
		t.Fatalf("extra = %v", extra)
	}
	first := extra[0].(map[string]any)
	second := extra[1].(map[string]any)
	if first["text"] != "A" || first["color"] != "#ff0000" {
		t.Fatalf("first = %v", first)
	}
	if second["text"] != "B" || second["color"] != "#0000ff" {
		t.Fatalf("second = %v", second)
	}
}
