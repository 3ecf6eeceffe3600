// Package summarizecmder provides the summarize command for asking the
// server to summarize the local session.
package summarizecmder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mnemolabs/mnemo/pkg/cliui"
	"github.com/mnemolabs/mnemo/pkg/config"
	"github.com/mnemolabs/mnemo/pkg/dotdir"
	"github.com/mnemolabs/mnemo/pkg/logger"
	"github.com/mnemolabs/mnemo/pkg/memory"
)

type summarizeCommander struct {
	api string
	v   *viper.Viper
	log *slog.Logger
}

var summarizeFlags = config.FlagSet{
	config.FlagAPITarget: {
		Name:        "api",
		Shorthand:   "a",
		ViperKey:    "client.api_target",
		Description: "Base URL of the mnemo API server",
	},
}

const summarizeLongDesc string = `Ask the server to summarize the local session.

Sends the session log to the server, which decides whether enough messages
have accumulated to run a background summarization. The trigger is
asynchronous: a "triggered" response means a summarization job was queued,
not that it finished. Check progress with mnemo context.

Examples:
  mnemo summarize
  mnemo summarize --api http://memory.internal:8080`

const summarizeShortDesc string = "Ask the server to summarize the session"

func NewSummarizeCmd() *cobra.Command {
	cmder := &summarizeCommander{}

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: summarizeShortDesc,
		Long:  summarizeLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("initializing config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, summarizeFlags, []string{config.FlagAPITarget})
			cmder.v = v
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")
			cmder.api = cmder.v.GetString("client.api_target")

			cmder.log = logger.Nop()
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				cmder.log = logger.New(
					logger.WithPretty(true),
					logger.WithDebug(true),
					logger.WithWriter(os.Stderr),
				)
			}

			return cmder.run(configDir)
		},
	}

	config.AddStringFlag(cmd, summarizeFlags, config.FlagAPITarget, &cmder.api)

	return cmd
}

type summarizeRequest struct {
	LastSavedSeq int              `json:"last_saved_seq"`
	Messages     []memory.Message `json:"messages"`
}

type summarizeResponse struct {
	Triggered bool `json:"triggered"`
}

func (c *summarizeCommander) run(configDir string) error {
	ddm := dotdir.NewManager()

	state, err := ddm.LoadSessionState(configDir)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if state == nil || len(state.Messages) == 0 {
		return fmt.Errorf("no session found: log a message first with `mnemo log`")
	}

	triggered, err := c.trigger(state)
	if err != nil {
		return err
	}

	if triggered {
		fmt.Printf("%s Summarization queued for %s (%d messages)\n",
			cliui.SuccessMark, state.ConversationID, len(state.Messages))
	} else {
		fmt.Printf("%s Not enough new messages to summarize yet (%d logged)\n",
			cliui.DimStyle.Render("·"), len(state.Messages))
	}
	return nil
}

func (c *summarizeCommander) trigger(state *dotdir.SessionState) (bool, error) {
	messages := make([]memory.Message, 0, len(state.Messages))
	for _, msg := range state.Messages {
		messages = append(messages, memory.Message{Role: msg.Role, Content: msg.Content})
	}

	payload, err := json.Marshal(summarizeRequest{
		LastSavedSeq: len(messages) - 1,
		Messages:     messages,
	})
	if err != nil {
		return false, fmt.Errorf("encoding request: %w", err)
	}

	target := fmt.Sprintf("%s/conversations/%s/summarize", c.api, url.PathEscape(state.ConversationID))
	c.log.Debug("requesting summarization", "url", target, "last_saved_seq", len(messages)-1)

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("requesting summarization from API: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(httpResp.Body)
		return false, fmt.Errorf("API returned status %d: %s", httpResp.StatusCode, string(body))
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return false, fmt.Errorf("reading API response: %w", err)
	}

	var out summarizeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return false, fmt.Errorf("parsing API response: %w", err)
	}

	return out.Triggered, nil
}
