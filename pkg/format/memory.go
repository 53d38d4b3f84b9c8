package format

import (
	"fmt"
	"strings"

	"github.com/pondhq/pond-cli/internal/api"
)

// Formatter renders Pond records and statuses for terminal display
type Formatter struct {
	options Options
}

// New creates a new formatter with the given options
func New(opts Options) *Formatter {
	return &Formatter{
		options: opts,
	}
}

// FormatMemory formats a single memory record. index is 1-based; pass 0
// to omit the index marker.
func (f *Formatter) FormatMemory(mem *api.Memory, index int) string {
	if mem == nil {
		return ColorizeIf("No content", Gray, f.options.UseColors)
	}

	date := memoryDate(mem.CreatedAt)

	// Header: "#3 (2026-08-30)"
	var header string
	if index > 0 {
		header = ColorizeIf(fmt.Sprintf("#%d", index), Bold+BrightCyan, f.options.UseColors)
		header += " " + DimIf("("+date+")", f.options.UseColors)
	} else {
		header = DimIf("("+date+")", f.options.UseColors)
	}

	if f.options.Compact {
		preview := strings.SplitN(mem.Content, "\n", 2)[0]
		return header + " " + preview
	}

	parts := []string{header, mem.Content}

	if tagLine := f.formatTags(mem.Tags); tagLine != "" {
		parts = append(parts, tagLine)
	}

	return strings.Join(parts, "\n")
}

// FormatMemoryList formats a sequence of records in server order. empty
// is shown when there are no records; it defaults to "No memories found".
func (f *Formatter) FormatMemoryList(memories []api.Memory, header, empty string) string {
	if len(memories) == 0 {
		if empty == "" {
			empty = "No memories found"
		}
		return ColorizeIf(empty, Yellow, f.options.UseColors)
	}

	var parts []string
	if header != "" {
		parts = append(parts, DimIf(header, f.options.UseColors), "")
	}

	for i := range memories {
		parts = append(parts, f.FormatMemory(&memories[i], i+1))
		if !f.options.Compact {
			parts = append(parts, "")
		}
	}

	return strings.TrimRight(strings.Join(parts, "\n"), "\n")
}

// FormatStored formats the confirmation of a successful store.
func (f *Formatter) FormatStored(res *api.StoreResponse) string {
	msg := ColorizeIf("✓ Memory stored", Green, f.options.UseColors)
	if res != nil && res.ID != "" {
		msg += " " + DimIf("(id: "+res.ID+")", f.options.UseColors)
	}
	return msg
}

// FormatHealth formats the health report. Unhealthy states get a warning
// line only; the caller decides the exit code.
func (f *Formatter) FormatHealth(h *api.HealthResponse) string {
	if h.Healthy() {
		version := h.Version
		if version == "" {
			version = "?"
		}
		lines := []string{
			ColorizeIf("✓ Pond is healthy", Green, f.options.UseColors) + " " +
				DimIf("(v"+version+")", f.options.UseColors),
		}
		if h.Database != "" {
			lines = append(lines, "  Database:   "+h.Database)
		}
		if h.Embeddings != "" {
			lines = append(lines, "  Embeddings: "+h.Embeddings)
		}
		return strings.Join(lines, "\n")
	}

	status := h.Status
	if status == "" {
		status = "unknown"
	}
	return ColorizeIf("⚠ Pond status: "+status, Yellow, f.options.UseColors)
}

func (f *Formatter) formatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	if f.options.MaxTags > 0 && len(tags) > f.options.MaxTags {
		tags = tags[:f.options.MaxTags]
	}

	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, DimIf("#"+tag, f.options.UseColors))
	}
	return strings.Join(parts, ", ")
}

// memoryDate reduces a server timestamp to its date part. Timestamps come
// back RFC 3339-ish; the first ten characters are yyyy-mm-dd.
func memoryDate(createdAt string) string {
	if len(createdAt) >= 10 {
		return createdAt[:10]
	}
	if createdAt == "" {
		return "unknown"
	}
	return createdAt
}
