package cmd

import (
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/sahaj33-op/sbextract/internals/commands"
	"github.com/sahaj33-op/sbextract/internals/utils"
)

func init() {
	keyCmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the stored Hypixel API key",
	}

	keyCmd.AddCommand(commands.New(&cobra.Command{
		Use:   "set [key]",
		Short: "Store an API key for future runs",
		Args:  cobra.MaximumNArgs(1),
	}, &keySetRunner{}).Command)

	keyCmd.AddCommand(commands.New(&cobra.Command{
		Use:   "show",
		Short: "Show the stored API key (masked)",
	}, &keyShowRunner{}).Command)

	keyCmd.AddCommand(commands.New(&cobra.Command{
		Use:   "clear",
		Short: "Delete the stored API key",
	}, &keyClearRunner{}).Command)

	rootCmd.AddCommand(keyCmd)
}

type keySetRunner struct{}

func (k *keySetRunner) RunE(cmd *cobra.Command, args []string) error {
	key := ""
	if len(args) == 1 {
		key = args[0]
	} else {
		key = utils.StringPrompt(&promptui.Prompt{
			Label:    "Hypixel API key",
			Mask:     '*',
			Validate: utils.NotEmpty,
		})
	}

	if err := credStore.SetAPIKey(key); err != nil {
		return err
	}
	logger.Success("API key stored")
	if credStore.NoKeyRingMode {
		logger.Warn("No system keyring available, the key was written to a plain file")
	}
	return nil
}

type keyShowRunner struct{}

func (k *keyShowRunner) RunE(cmd *cobra.Command, args []string) error {
	if credStore.APIKey == "" {
		logger.Info("No API key stored")
		return nil
	}
	logger.Info("Stored API key: " + maskKey(credStore.APIKey))
	return nil
}

type keyClearRunner struct{}

func (k *keyClearRunner) RunE(cmd *cobra.Command, args []string) error {
	if credStore.APIKey == "" {
		logger.Info("No API key stored")
		return nil
	}

	// ask for confirmation
	input := confirmation.New("Really delete the stored API key?", confirmation.No)
	remove, err := input.RunPrompt()
	if err != nil || !remove {
		logger.Info("Keeping the stored key")
		return nil
	}

	if err := credStore.Clear(); err != nil {
		return err
	}
	logger.Success("Stored API key deleted")
	return nil
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "********"
	}
	return key[:8] + "..."
}
