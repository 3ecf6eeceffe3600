// Package contextcmder provides the context command for fetching the memory
// plus gap-message context for the local session.
package contextcmder

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
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mnemolabs/mnemo/pkg/cliui"
	"github.com/mnemolabs/mnemo/pkg/config"
	"github.com/mnemolabs/mnemo/pkg/dotdir"
	"github.com/mnemolabs/mnemo/pkg/logger"
	"github.com/mnemolabs/mnemo/pkg/memory"
)

type contextCommander struct {
	api string
	raw bool
	v   *viper.Viper
	log *slog.Logger
}

var contextFlags = config.FlagSet{
	config.FlagAPITarget: {
		Name:        "api",
		Shorthand:   "a",
		ViperKey:    "client.api_target",
		Description: "Base URL of the mnemo API server",
	},
}

const contextLongDesc string = `Fetch memory context for the local session.

Sends the session's message log to the server and prints the structured
memory plus the gap messages that are not yet covered by any summary. With
--raw the exact prompt block the server renders for workflows is printed
instead.

Examples:
  mnemo context
  mnemo context --raw
  mnemo context --api http://memory.internal:8080`

const contextShortDesc string = "Fetch memory context for the local session"

func NewContextCmd() *cobra.Command {
	cmder := &contextCommander{}

	cmd := &cobra.Command{
		Use:   "context",
		Short: contextShortDesc,
		Long:  contextLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("initializing config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, contextFlags, []string{config.FlagAPITarget})
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

	config.AddStringFlag(cmd, contextFlags, config.FlagAPITarget, &cmder.api)
	cmd.Flags().BoolVar(&cmder.raw, "raw", false, "Print the rendered workflow prompt block")

	return cmd
}

type contextRequest struct {
	Messages []memory.Message `json:"messages"`
}

type contextResponse struct {
	Memory      *memory.StructuredMemory `json:"memory"`
	GapMessages []memory.Message         `json:"gap_messages"`
	Rendered    string                   `json:"rendered"`
}

func (c *contextCommander) run(configDir string) error {
	ddm := dotdir.NewManager()

	state, err := ddm.LoadSessionState(configDir)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if state == nil || len(state.Messages) == 0 {
		return fmt.Errorf("no session found: log a message first with `mnemo log`")
	}

	resp, err := c.fetchContext(state)
	if err != nil {
		return err
	}

	if c.raw {
		fmt.Println(resp.Rendered)
		return nil
	}

	printMemory(resp.Memory)

	fmt.Printf("\n  %s %d message(s) not yet summarized\n\n",
		cliui.KeyStyle.Render("Gap:"), len(resp.GapMessages))
	return nil
}

// fetchContext posts the session log to the context endpoint.
func (c *contextCommander) fetchContext(state *dotdir.SessionState) (*contextResponse, error) {
	messages := make([]memory.Message, 0, len(state.Messages))
	for _, msg := range state.Messages {
		messages = append(messages, memory.Message{Role: msg.Role, Content: msg.Content})
	}

	payload, err := json.Marshal(contextRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	target := fmt.Sprintf("%s/conversations/%s/context", c.api, url.PathEscape(state.ConversationID))
	c.log.Debug("requesting context", "url", target, "messages", len(messages))

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting context from API: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(httpResp.Body)
		return nil, fmt.Errorf("API returned status %d: %s", httpResp.StatusCode, string(body))
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading API response: %w", err)
	}

	var out contextResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("parsing API response: %w", err)
	}

	return &out, nil
}

func printMemory(mem *memory.StructuredMemory) {
	if mem == nil {
		fmt.Printf("\n  %s\n", cliui.DimStyle.Render("No memory yet for this conversation."))
		return
	}

	// RenderMarkdown falls back to the raw markdown on error.
	out, _ := cliui.RenderMarkdown(memoryMarkdown(mem))
	fmt.Print(out)
}

func memoryMarkdown(mem *memory.StructuredMemory) string {
	var b strings.Builder

	writeSection(&b, "Facts", mem.Facts)
	writeSection(&b, "Decisions", mem.Decisions)
	writeSection(&b, "Preferences", mem.UserPreferences)
	writeSection(&b, "Open questions", mem.OpenQuestions)

	if len(mem.Entities) > 0 {
		b.WriteString("## Entities\n\n")
		for _, e := range mem.Entities {
			if e.Notes != "" {
				fmt.Fprintf(&b, "- **%s**: %s\n", e.Name, e.Notes)
			} else {
				fmt.Fprintf(&b, "- **%s**\n", e.Name)
			}
		}
	}

	return b.String()
}

func writeSection(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}
