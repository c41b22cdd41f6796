package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const actorsDir = "internal/actors"

const tmpl = `package actors

import "solidworld/internal/world"

type {{.Name}} struct {
	world.ActorBase
	Speed float32
}

func (a *{{.Name}}) Update(dt float32) {
	// TODO: implement behavior
}

func init() {
	world.RegisterActor("{{.Name}}", {{.Lower}}Factory, {{.Lower}}Serializer)
}

func {{.Lower}}Factory(props map[string]any) world.Actor {
	return &{{.Name}}{Speed: world.PropFloat(props, "speed", 1)}
}

func {{.Lower}}Serializer(a world.Actor) map[string]any {
	s, ok := a.(*{{.Name}})
	if !ok {
		return nil
	}
	return map[string]any{
		"speed": s.Speed,
	}
}
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run ./cmd/newactor <ActorName>\n")
		fmt.Fprintf(os.Stderr, "Example: go run ./cmd/newactor Elevator\n")
		os.Exit(1)
	}

	name := os.Args[1]
	if err := validateName(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(actorsDir, toSnakeCase(name)+".go")
	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", outPath)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(render(name)), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", outPath)
	fmt.Printf("Actor \"%s\" registered. Place it in a scene file:\n\n", name)
	fmt.Printf("  {\n")
	fmt.Printf("    \"type\": \"%s\",\n", name)
	fmt.Printf("    \"position\": [0, 0, 0],\n")
	fmt.Printf("    \"props\": { \"speed\": 1.0 }\n")
	fmt.Printf("  }\n")
}

func validateName(name string) error {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return fmt.Errorf("actor name must start with an uppercase letter")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("actor name %q is not a Go identifier", name)
		}
	}
	return nil
}

func render(name string) string {
	lower := string(unicode.ToLower(rune(name[0]))) + name[1:]
	content := strings.ReplaceAll(tmpl, "{{.Name}}", name)
	return strings.ReplaceAll(content, "{{.Lower}}", lower)
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
