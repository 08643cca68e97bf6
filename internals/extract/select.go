package extract

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"github.com/sahaj33-op/sbextract/internals/cmdlog"
	"github.com/sahaj33-op/sbextract/internals/hypixel"
)

// ErrSelectionAborted is returned when the user cancels the interactive
// chooser. The caller must treat this as run termination.
var ErrSelectionAborted = errors.New("profile selection aborted")

// Selector picks one profile out of the listed save slots.
type Selector struct {
	Log         *cmdlog.Logger
	Interactive bool
	// Stdin overrides the chooser input (used by tests)
	Stdin io.ReadCloser
}

// Select picks a profile; first match wins:
//  1. requested name, matched case insensitively (even in interactive mode)
//  2. the first profile when non-interactive or there is only one, the
//     listing is sorted most recently saved first
//  3. the interactive chooser
//
// A requested name that matches nothing only warns and falls through.
func (s *Selector) Select(profiles []hypixel.Profile, requested string) (hypixel.Profile, error) {
	if len(profiles) == 0 {
		return hypixel.Profile{}, hypixel.ErrNoProfiles
	}

	if requested != "" {
		for _, p := range profiles {
			if strings.EqualFold(p.Name, requested) {
				return p, nil
			}
		}
		s.logger().Warn(fmt.Sprintf("Profile %q not found, using the most recently saved one", requested))
	}

	if !s.Interactive || len(profiles) == 1 {
		return profiles[0], nil
	}

	return s.choose(profiles)
}

func (s *Selector) choose(profiles []hypixel.Profile) (hypixel.Profile, error) {
	log := s.logger()
	log.Info("Available profiles:")
	for i, p := range profiles {
		line := fmt.Sprintf("  %d. %s", i+1, p.Name)
		if p.GameMode != "normal" {
			line += fmt.Sprintf(" (%s)", p.GameMode)
		}
		if p.Selected {
			line += " (selected)"
		}
		log.Info(line)
	}

	prompt := promptui.Prompt{
		Label:   "Select profile",
		Default: "1",
		Validate: func(input string) error {
			input = strings.TrimSpace(input)
			// plain enter picks the first profile
			if input == "" {
				return nil
			}
			n, err := strconv.Atoi(input)
			if err != nil {
				return errors.New("please enter a number")
			}
			if n < 1 || n > len(profiles) {
				return fmt.Errorf("enter a number between 1 and %d", len(profiles))
			}
			return nil
		},
	}
	if s.Stdin != nil {
		prompt.Stdin = s.Stdin
	}

	res, err := prompt.Run()
	if err != nil {
		return hypixel.Profile{}, ErrSelectionAborted
	}

	n, err := strconv.Atoi(strings.TrimSpace(res))
	if err != nil || n < 1 || n > len(profiles) {
		// empty input, the prompt default applies
		n = 1
	}
	return profiles[n-1], nil
}

func (s *Selector) logger() *cmdlog.Logger {
	if s.Log != nil {
		return s.Log
	}
	return cmdlog.New()
}
