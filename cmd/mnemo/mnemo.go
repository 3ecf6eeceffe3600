// Package mnemocmder
package mnemocmder

import (
	"github.com/spf13/cobra"

	configcmder "github.com/mnemolabs/mnemo/cmd/mnemo/config"
	contextcmder "github.com/mnemolabs/mnemo/cmd/mnemo/context"
	initcmder "github.com/mnemolabs/mnemo/cmd/mnemo/init"
	logcmder "github.com/mnemolabs/mnemo/cmd/mnemo/log"
	servecmder "github.com/mnemolabs/mnemo/cmd/mnemo/serve"
	sessioncmder "github.com/mnemolabs/mnemo/cmd/mnemo/session"
	summarizecmder "github.com/mnemolabs/mnemo/cmd/mnemo/summarize"
	versioncmder "github.com/mnemolabs/mnemo/cmd/version"
)

const mnemoLongDesc string = `Mnemo is rolling conversation memory for your agents.

Run the service using:
  mnemo serve          Run the memory API server

Work with a local session using:
  mnemo log            Append a message to the local session
  mnemo context        Fetch memory plus gap messages for the session
  mnemo summarize      Ask the server to summarize the session`

const mnemoShortDesc string = "Mnemo - Conversation Memory"

func NewMnemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemo",
		Short: mnemoShortDesc,
		Long:  mnemoLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .mnemo config directory")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(initcmder.NewInitCmd())
	cmd.AddCommand(logcmder.NewLogCmd())
	cmd.AddCommand(contextcmder.NewContextCmd())
	cmd.AddCommand(summarizecmder.NewSummarizeCmd())
	cmd.AddCommand(sessioncmder.NewSessionCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
