package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sahaj33-op/sbextract/internals/hypixel"
	"github.com/sahaj33-op/sbextract/internals/mojang"
)

// ReportFile is the plain text manifest written next to the extracts
const ReportFile = "extraction_report.txt"

// WriteReport drops a human readable manifest of the run into the output
// directory. Callers treat a failure here as a warning, never as a failed
// run.
func WriteReport(result *Result, identity *mojang.Identity, profile hypixel.Profile, displayName string) error {
	var b strings.Builder

	b.WriteString("SkyBlock Profile Extraction Report\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Generated:  %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Player:     %s\n", displayName)
	fmt.Fprintf(&b, "Profile:    %s (%s)\n", profile.Name, profile.GameMode)
	fmt.Fprintf(&b, "UUID:       %s\n", identity.Dashed())
	fmt.Fprintf(&b, "\nFiles written (%d of %d categories succeeded):\n", result.Succeeded, result.Attempted)
	for _, f := range result.Files {
		fmt.Fprintf(&b, "  - %s\n", f)
	}

	return os.WriteFile(filepath.Join(result.OutputDir, ReportFile), []byte(b.String()), 0644)
}
