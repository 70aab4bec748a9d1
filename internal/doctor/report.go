// Package doctor renders a resolution as a human-readable report for the
// cargowrap-doctor companion tool.
package doctor

import (
	"fmt"
	"strings"

	"cargowrap/internal/model"
)

// GenerateReport builds the text report. verbose adds the full step trail;
// otherwise only the summary and any warnings are included.
func GenerateReport(res *model.Resolution, verbose bool) string {
	var b strings.Builder

	b.WriteString("cargowrap resolution report\n")
	b.WriteString("===========================\n\n")

	writeField(&b, "Manifest dir", res.ManifestDir)
	writeField(&b, "VCS root", res.VCSRoot)
	writeField(&b, "Target dir", res.TargetDir)
	if res.Provenance != "" {
		writeField(&b, "Provenance", string(res.Provenance))
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "  %s %s\n", model.IconWarning, w)
		}
	}

	if verbose && len(res.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for i, s := range res.Steps {
			fmt.Fprintf(&b, "  %2d. %s %-17s %s", i+1, StepIcon(s), s.Kind, s.Path)
			if s.Detail != "" {
				fmt.Fprintf(&b, "  (%s)", s.Detail)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// StepIcon picks the list icon for a step. Shared with the TUI.
func StepIcon(s model.Step) string {
	switch s.Kind {
	case model.StepSymlinkAccepted:
		return model.IconAccepted
	case model.StepSymlinkRejected:
		return model.IconRejected
	case model.StepComputed:
		return model.IconComputed
	default:
		if s.OK {
			return model.IconOK
		}
		return model.IconRejected
	}
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		value = "(not resolved)"
	}
	fmt.Fprintf(b, "%-13s %s\n", name+":", value)
}
