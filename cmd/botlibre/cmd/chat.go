package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subharanjan2019/BotLibre/sdk/dto"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session with a bot",
	Long: `Start an interactive chat session with a bot instance.

The conversation id returned by the bot's first response is threaded
into every following message, so the bot keeps the conversational
context. The conversation is ended when the session exits.

Type 'exit' or press Ctrl+D to quit.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().String("bot", "", "Bot id or name to chat with")
	chatCmd.Flags().Bool("speak", false, "Request voice audio for responses")
}

// runChat executes the chat command
func runChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	bot, _ := cmd.Flags().GetString("bot")
	if bot == "" {
		return errors.New("the --bot flag is required")
	}
	speak, _ := cmd.Flags().GetBool("speak")

	connection, err := openConnection(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Chatting with %s (type 'exit' to quit)\n", bot)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	conversation := ""
	for {
		fmt.Fprint(cmd.OutOrStdout(), "> ")
		if !scanner.Scan() {
			break
		}
		text := scanner.Text()
		if text == "exit" || text == "quit" {
			break
		}
		if text == "" {
			continue
		}

		message := dto.NewChatConfig()
		message.Instance = bot
		message.Conversation = conversation
		message.Speak = speak
		message.Message = text
		response, err := connection.Chat(ctx, message)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		conversation = response.Conversation
		fmt.Fprintln(cmd.OutOrStdout(), response.Message)
		if speak && response.Speech != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "(speech: %s)\n", connection.FetchLink(response.Speech))
		}
	}

	// End the conversation to conserve server resources.
	if conversation != "" {
		end := dto.NewChatConfig()
		end.Instance = bot
		end.Conversation = conversation
		end.Disconnect = true
		if _, err := connection.Chat(ctx, end); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error ending conversation: %v\n", err)
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Bye!")
	return scanner.Err()
}
