package extract

import (
	"os"

	"github.com/mholt/archiver/v3"
)

// Archive zips the output directory for sharing and returns the archive
// path. An archive from an earlier same-second run gets replaced.
func Archive(result *Result) (string, error) {
	target := result.OutputDir + ".zip"
	if err := os.RemoveAll(target); err != nil {
		return "", err
	}
	if err := archiver.Archive([]string{result.OutputDir}, target); err != nil {
		return "", err
	}
	return target, nil
}
