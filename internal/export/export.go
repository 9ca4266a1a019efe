// Package export writes extracted resources to flat files for exchange
// with translation tooling.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"locstrings/internal/resource"
)

// WriteTSV writes resources to a TSV file, one row per resource.
func WriteTSV(outputPath string, resources []resource.String) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create TSV file: %w", err)
	}
	defer f.Close()

	fmt.Fprintln(f, "project\tlocale\tkey\tsource\tcomment\tdatatype\tpath\tstate\tindex")

	for _, r := range resources {
		fmt.Fprintf(f, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			r.Project,
			r.SourceLocale,
			escapeTSV(r.Key),
			escapeTSV(r.Source),
			escapeTSV(r.Comment),
			r.Datatype,
			r.Path,
			r.State,
			r.Index,
		)
	}

	log.Info().Str("path", outputPath).Int("resources", len(resources)).Msg("Exported resources to TSV")
	return nil
}

// WriteJSON writes resources to an indented JSON file.
func WriteJSON(outputPath string, resources []resource.String) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create JSON file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(resources); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	log.Info().Str("path", outputPath).Int("resources", len(resources)).Msg("Exported resources to JSON")
	return nil
}

// escapeTSV replaces tabs and newlines in a string for TSV safety.
// Backslashes are escaped first so a literal "\t" in the source stays
// distinguishable from an escaped real tab.
func escapeTSV(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}
