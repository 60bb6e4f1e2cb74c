package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printPropertiesTable(w io.Writer, records []map[string]any) error {
	tw := newTabWriter(w)
	tw.writef("ID\tPRICE\tLOCATION\n")
	for _, rec := range records {
		elems, _ := rec["elements"].(map[string]any)
		tw.writef("%s\t%s\t%s\n",
			field(elems, "Id", rec["id"]),
			field(elems, "kaufpreis", nil),
			truncate(field(elems, "lage", nil), 40),
		)
	}
	return tw.finish()
}

// field renders elems[key], falling back to fallback and then "-".
func field(elems map[string]any, key string, fallback any) string {
	v, ok := elems[key]
	if !ok || v == nil || v == "" {
		v = fallback
	}
	if v == nil || v == "" {
		return "-"
	}
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprint(v)
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
