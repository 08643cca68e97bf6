package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/jwalton/gchalk"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sahaj33-op/sbextract/internals/commands"
	"github.com/sahaj33-op/sbextract/internals/extract"
	"github.com/sahaj33-op/sbextract/internals/hypixel"
	"github.com/sahaj33-op/sbextract/internals/mojang"
	"github.com/sahaj33-op/sbextract/internals/ownhttp"
	"github.com/sahaj33-op/sbextract/internals/utils"
)

func init() {
	// the root command is the extraction itself
	commands.New(rootCmd, &extractRunner{})
}

type extractRunner struct{}

func (e *extractRunner) RunE(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	unattended := unattendedFlag ||
		viper.GetBool("nonInteractive") ||
		!isatty.IsTerminal(os.Stdin.Fd())

	logger.Headline("SkyBlock Profile Extractor " + versionString())

	username := ""
	if len(args) == 1 {
		username = args[0]
	}
	if username == "" {
		if unattended {
			return &commands.CliError{
				Text:        "a username is required in unattended mode",
				Suggestions: []string{"pass it as the first argument: sbextract <username>"},
			}
		}
		username = utils.StringPrompt(&promptui.Prompt{
			Label:    "Minecraft username",
			Validate: utils.NotEmpty,
		})
	}

	key, err := resolveAPIKey(unattended)
	if err != nil {
		return err
	}

	// one throttled client for the whole batch; the transport pauses
	// between consecutive upstream calls
	httpClient := ownhttp.NewThrottled(viper.GetDuration("rateLimit"))

	mojangClient := mojang.New()
	mojangClient.HTTP = httpClient

	spin := utils.NewMaybeSpinner(!unattended)
	spin.Update("Looking up UUID for " + username + " ...")
	spin.Start()
	identity, err := mojangClient.Resolve(ctx, username)
	spin.Stop()
	if err != nil {
		if errors.Is(err, mojang.ErrPlayerNotFound) {
			return &commands.CliError{
				Text: fmt.Sprintf("could not find player %q", username),
				Suggestions: []string{
					"check the spelling of the username",
					"the account must exist (try it on namemc.com)",
				},
				Err: err,
			}
		}
		return err
	}
	logger.Success(fmt.Sprintf("Found player: %s (%s)", identity.Name, identity.Dashed()))

	hypixelClient := hypixel.New(key)
	hypixelClient.HTTP = httpClient
	hypixelClient.BaseURL = viper.GetString("apiBase")
	hypixelClient.Log = logger

	spin.Update("Fetching SkyBlock profiles ...")
	spin.Start()
	profiles, err := hypixelClient.ListProfiles(ctx, identity)
	spin.Stop()
	if err != nil {
		if errors.Is(err, hypixel.ErrNoProfiles) {
			return &commands.CliError{
				Text: fmt.Sprintf("%s has no SkyBlock profiles", identity.Name),
				Suggestions: []string{
					"the player must have played SkyBlock at least once",
					"the player may have disabled API access in their Hypixel settings",
				},
				Err: err,
			}
		}
		return err
	}
	logger.Success(fmt.Sprintf("Found %d profile(s)", len(profiles)))

	selector := &extract.Selector{Log: logger, Interactive: !unattended}
	profile, err := selector.Select(profiles, profileFlag)
	if err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("Using profile %q (%s)", profile.Name, profile.GameMode))

	logger.Headline("Extracting Profile Data")
	extractor := &extract.Extractor{
		Client:  hypixelClient,
		Log:     logger,
		BaseDir: viper.GetString("outputDir"),
	}
	result, err := extractor.Run(ctx, identity, profile, identity.Name)
	if err != nil {
		return err
	}

	// best effort, a missing report never fails the run
	if err := extract.WriteReport(result, identity, profile, identity.Name); err != nil {
		logger.Warn("Could not write the extraction report: " + err.Error())
	}

	printSummary(result)

	if zipFlag {
		if archivePath, err := extract.Archive(result); err != nil {
			logger.Warn("Could not zip the output directory: " + err.Error())
		} else {
			logger.Success("Zipped to " + archivePath)
		}
	}

	return nil
}

func resolveAPIKey(unattended bool) (string, error) {
	if key := viper.GetString("apiKey"); key != "" {
		return key, nil
	}
	if credStore.APIKey != "" {
		return credStore.APIKey, nil
	}
	if unattended {
		return "", &commands.CliError{
			Text: "no Hypixel API key configured",
			Suggestions: []string{
				"get a key at https://developer.hypixel.net",
				"store it with: sbextract key set",
				"or set the SBEXTRACT_APIKEY environment variable",
			},
		}
	}

	key := utils.StringPrompt(&promptui.Prompt{
		Label:    "Hypixel API key",
		Mask:     '*',
		Validate: utils.NotEmpty,
	})
	if err := credStore.SetAPIKey(key); err != nil {
		logger.Warn("Could not store the API key: " + err.Error())
	} else {
		logger.Success("API key stored for future runs")
	}
	return key, nil
}

func printSummary(result *extract.Result) {
	logger.Headline("Extraction Summary")
	logger.Success("Data extraction completed!")
	logger.Info("Output directory: " + result.OutputDir)
	logger.Info(fmt.Sprintf("Files extracted: %d/%d categories", result.Succeeded, result.Attempted))

	rate := 100.0
	if result.Attempted > 0 {
		rate = float64(result.Succeeded) / float64(result.Attempted) * 100
	}
	logger.Info(fmt.Sprintf("Success rate: %.1f%%", rate))

	if size, err := dirSize(result.OutputDir); err == nil {
		logger.Info("Total size: " + humanize.Bytes(uint64(size)))
	}

	fmt.Println()
	fmt.Println(gchalk.Magenta("Ready for AI analysis! Upload the folder to your assistant of choice."))
}

func dirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}
