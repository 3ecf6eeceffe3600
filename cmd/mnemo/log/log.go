// Package logcmder provides the log command for appending messages to the
// local session.
package logcmder

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mnemolabs/mnemo/pkg/dotdir"
	"github.com/mnemolabs/mnemo/pkg/utils"
)

type logCommander struct {
	role         string
	conversation string
}

const logLongDesc string = `Append a message to the local session log.

The session log lives in session.json in the .mnemo/ directory and is the
message history that context and summarize commands send to the server.
A message's index in the log is its sequence number.

Examples:
  mnemo log "I prefer metric units"
  mnemo log --role assistant "Noted, I'll use metric units."
  mnemo log --conversation conv-42 "start a fresh conversation"`

const logShortDesc string = "Append a message to the local session"

func NewLogCmd() *cobra.Command {
	cmder := &logCommander{}

	cmd := &cobra.Command{
		Use:   "log <content>",
		Short: logShortDesc,
		Long:  logLongDesc,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			return cmder.run(strings.Join(args, " "), configDir)
		},
	}

	cmd.Flags().StringVarP(&cmder.role, "role", "r", "user", "Message role (user or assistant)")
	cmd.Flags().StringVarP(&cmder.conversation, "conversation", "c", "", "Conversation id (starts a new session when it differs)")

	return cmd
}

func (c *logCommander) run(content, configDir string) error {
	if c.role != "user" && c.role != "assistant" {
		return fmt.Errorf("invalid role %q: must be user or assistant", c.role)
	}

	ddm := dotdir.NewManager()

	state, err := ddm.LoadSessionState(configDir)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	if state == nil || (c.conversation != "" && state.ConversationID != c.conversation) {
		id := c.conversation
		if id == "" {
			id = uuid.NewString()
		}
		state = &dotdir.SessionState{ConversationID: id}
	}

	state.Messages = append(state.Messages, dotdir.SessionMessage{
		Role:    c.role,
		Content: content,
	})

	if err := ddm.SaveSession(state, configDir); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	seq := len(state.Messages) - 1
	fmt.Printf("Logged message %d to %s: [%s] %s\n",
		seq, state.ConversationID, c.role, utils.Truncate(content, 60))
	return nil
}
