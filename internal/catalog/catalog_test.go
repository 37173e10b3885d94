package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nimblemo/bodygraph/internal/bodygraph"
	"github.com/nimblemo/bodygraph/internal/chart"
)

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()

	for _, lang := range Languages() {
		lang := lang
		t.Run(lang, func(t *testing.T) {
			t.Parallel()

			cat, err := Load("", lang)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cat.Language != lang {
				t.Errorf("language = %q, want %q", cat.Language, lang)
			}

			for g := 1; g <= 64; g++ {
				if cat.GateName(g) == fmt.Sprintf("%d", g) {
					t.Errorf("gate %d has no name", g)
				}
			}
			for _, c := range bodygraph.Centers() {
				if cat.CenterName(c) == "" {
					t.Errorf("center %s has no name", c)
				}
			}
			for typ := chart.Reflector; typ <= chart.Projector; typ++ {
				if cat.TypeName(typ) == "" || cat.Strategy(typ) == "" {
					t.Errorf("type %s incomplete", typ.Key())
				}
			}
			if err := cat.AngleTable().Validate(); err != nil {
				t.Errorf("angle table: %v", err)
			}
			for color := 1; color <= 6; color++ {
				num := fmt.Sprintf("%d", color)
				if cat.MotivationName(color) == num {
					t.Errorf("motivation color %d has no name", color)
				}
				if cat.EnvironmentName(color) == num {
					t.Errorf("environment color %d has no name", color)
				}
				if cat.DietName(color) == num {
					t.Errorf("diet color %d has no name", color)
				}
			}
		})
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	langs := Languages()
	want := map[string]bool{"en": false, "ru": false}
	for _, l := range langs {
		if _, ok := want[l]; ok {
			want[l] = true
		}
	}
	for l, found := range want {
		if !found {
			t.Errorf("expected embedded language %q, got %v", l, langs)
		}
	}
}

func TestLoadUnknownLanguage(t *testing.T) {
	t.Parallel()

	_, err := Load("", "xx")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("error = %v, want ErrUnknownLanguage", err)
	}
}

func TestLoadDirOverride(t *testing.T) {
	t.Parallel()

	t.Run("OverrideWins", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		data := minimalCatalog(t, "en")
		data = strings.Replace(data, `1 = "Gate 1"`, `1 = "Override One"`, 1)
		writeFile(t, filepath.Join(dir, "en.toml"), data)

		cat, err := Load(dir, "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cat.GateName(1); got != "Override One" {
			t.Errorf("GateName(1) = %q, want the override", got)
		}
	})

	t.Run("FallsBackToEmbedded", func(t *testing.T) {
		t.Parallel()
		cat, err := Load(t.TempDir(), "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cat.GateName(1) == "1" {
			t.Error("embedded fallback did not load gate names")
		}
	})

	t.Run("MalformedOverride", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "en.toml"), "language = [broken")

		if _, err := Load(dir, "en"); err == nil {
			t.Fatal("expected parse error from the override file")
		}
	})
}

func TestValidateRejectsIncompleteCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(data string) string
	}{
		{"MissingGate", func(data string) string {
			return strings.Replace(data, "\n64 = ", "\n#64 = ", 1)
		}},
		{"MissingCenter", func(data string) string {
			return strings.Replace(data, "root = ", "#root = ", 1)
		}},
		{"MissingStrategy", func(data string) string {
			return strings.Replace(data, `strategy = "S"`, `strategy = ""`, 1)
		}},
		{"BadAngleName", func(data string) string {
			return strings.Replace(data, `angle = "right_angle"`, `angle = "diagonal"`, 1)
		}},
		{"MissingAngleEntry", func(data string) string {
			last := `  { personality = 6, design = 6, angle = "right_angle" },` + "\n"
			return strings.Replace(data, last, "", 1)
		}},
		{"MissingMotivationColor", func(data string) string {
			return strings.Replace(data, `6 = "Motivation 6"`, `6 = ""`, 1)
		}},
		{"MissingEnvironmentColor", func(data string) string {
			return strings.Replace(data, `3 = "Environment 3"`, `3 = ""`, 1)
		}},
		{"MissingDietSection", func(data string) string {
			return strings.Replace(data, "[diets]", "[unused]", 1)
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			data := tt.mutate(minimalCatalog(t, "en"))
			writeFile(t, filepath.Join(dir, "en.toml"), data)

			if _, err := Load(dir, "en"); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

// minimalCatalog generates a syntactically complete catalog document with
// placeholder names, exercising the same validation paths as the embedded
// data.
func minimalCatalog(t *testing.T, lang string) string {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "language = %q\n", lang)
	// The angle array must precede the first table header to stay top-level.
	b.WriteString("\nangles = [\n")
	for p := 1; p <= 6; p++ {
		for d := 1; d <= 6; d++ {
			fmt.Fprintf(&b, "  { personality = %d, design = %d, angle = \"right_angle\" },\n", p, d)
		}
	}
	b.WriteString("]\n")
	b.WriteString("\n[types]\n")
	for typ := chart.Reflector; typ <= chart.Projector; typ++ {
		fmt.Fprintf(&b, "%s = { name = \"T\", strategy = \"S\" }\n", typ.Key())
	}
	b.WriteString("\n[authorities]\n")
	for a := chart.Emotional; a <= chart.NoInnerAuthority; a++ {
		fmt.Fprintf(&b, "%s = \"A\"\n", a.Key())
	}
	b.WriteString("\n[centers]\n")
	for _, c := range bodygraph.Centers() {
		fmt.Fprintf(&b, "%s = \"C\"\n", c.Key())
	}
	for _, section := range []string{"Motivation", "Environment", "Diet"} {
		fmt.Fprintf(&b, "\n[%ss]\n", strings.ToLower(section))
		for color := 1; color <= 6; color++ {
			fmt.Fprintf(&b, "%d = \"%s %d\"\n", color, section, color)
		}
	}
	b.WriteString("\n[gates]\n")
	for g := 1; g <= 64; g++ {
		fmt.Fprintf(&b, "%d = \"Gate %d\"\n", g, g)
	}
	return b.String()
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
