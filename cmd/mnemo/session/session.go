// Package sessioncmder provides the session command for inspecting and
// clearing the local session log.
package sessioncmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnemolabs/mnemo/pkg/cliui"
	"github.com/mnemolabs/mnemo/pkg/dotdir"
	"github.com/mnemolabs/mnemo/pkg/utils"
)

const sessionLongDesc string = `Show the local session log.

Displays the active conversation id and the logged messages with their
sequence numbers. Use the clear subcommand to discard the session and
start over.

Examples:
  mnemo session
  mnemo session clear`

const sessionShortDesc string = "Show the local session log"

func NewSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: sessionShortDesc,
		Long:  sessionLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return runShow(configDir)
		},
	}

	cmd.AddCommand(newClearCmd())

	return cmd
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the local session log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return runClear(configDir)
		},
	}
}

func runShow(configDir string) error {
	ddm := dotdir.NewManager()

	state, err := ddm.LoadSessionState(configDir)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if state == nil {
		fmt.Println("No session found. Log a message with `mnemo log` to start one.")
		return nil
	}

	fmt.Printf("\n  %s %s\n",
		cliui.KeyStyle.Render("Conversation:"),
		cliui.ValueStyle.Render(state.ConversationID),
	)
	fmt.Printf("  %s %d\n\n",
		cliui.KeyStyle.Render("Messages:"),
		len(state.Messages),
	)

	for i, msg := range state.Messages {
		fmt.Printf("  %s [%s] %s\n",
			cliui.DimStyle.Render(fmt.Sprintf("%3d", i)),
			msg.Role,
			utils.Truncate(msg.Content, 60),
		)
	}
	fmt.Println()

	return nil
}

func runClear(configDir string) error {
	ddm := dotdir.NewManager()

	if err := ddm.ClearSession(configDir); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	fmt.Printf("%s Session cleared\n", cliui.SuccessMark)
	return nil
}
