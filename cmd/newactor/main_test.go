package main

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestRenderParses(t *testing.T) {
	src := render("DoorSwitch")

	if _, err := parser.ParseFile(token.NewFileSet(), "door_switch.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}
	if !strings.Contains(src, `world.RegisterActor("DoorSwitch", doorSwitchFactory, doorSwitchSerializer)`) {
		t.Errorf("registration missing:\n%s", src)
	}
	if strings.Contains(src, "{{") {
		t.Errorf("unreplaced placeholder:\n%s", src)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Elevator":   "elevator",
		"DoorSwitch": "door_switch",
		"A":          "a",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateName(t *testing.T) {
	for _, bad := range []string{"", "elevator", "Door-Switch", "Door Switch"} {
		if err := validateName(bad); err == nil {
			t.Errorf("validateName(%q) should fail", bad)
		}
	}
	if err := validateName("Elevator2"); err != nil {
		t.Errorf("validateName(Elevator2): %v", err)
	}
}
