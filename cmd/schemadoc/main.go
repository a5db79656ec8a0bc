// Command schemadoc parses a schema document file with the adaptive engine
// and prints the result as JSON. The engine itself performs no file I/O;
// this command is the host that loads the text.
// Usage: go run ./cmd/schemadoc [flags] <file>
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"schemadoc/internal/config"
	"schemadoc/internal/domain"
	"schemadoc/internal/engine"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	section := flag.String("section", "", "parse only this top-level section")
	sections := flag.String("sections", "", "comma-separated sections for the lazy strategy")
	validate := flag.Bool("validate", false, "run structural checks instead of parsing")
	showMetrics := flag.Bool("metrics", false, "print engine metrics after the operation")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: schemadoc [flags] <file>")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	text := string(data)

	eng := engine.New(cfg.Engine, nil, nil, nil)

	switch {
	case *validate:
		report := eng.QuickValidate(text)
		if err := printJSON(report); err != nil {
			return err
		}
		if !report.Valid() {
			return fmt.Errorf("document failed structural checks")
		}
	case *section != "":
		parsed, err := eng.ParseSection(text, *section)
		if err != nil {
			return err
		}
		if err := printJSON(parsed); err != nil {
			return err
		}
	default:
		result, err := eng.ParseContent(text, domain.ParseOptions{Sections: splitSections(*sections)})
		if err != nil {
			return err
		}
		if err := printJSON(result); err != nil {
			return err
		}
	}

	if *showMetrics {
		if err := printJSON(eng.PerformanceMetrics()); err != nil {
			return err
		}
	}
	return nil
}

func splitSections(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
