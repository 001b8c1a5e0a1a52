package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/subharanjan2019/BotLibre/sdk"
	"github.com/subharanjan2019/BotLibre/sdk/dto"
)

// livechatCmd represents the livechat command
var livechatCmd = &cobra.Command{
	Use:   "livechat",
	Short: "Join a live chat channel",
	Long: `Join a live chat channel and relay its messages to the terminal.

Lines typed are sent to the channel. Lines starting with '/' are
channel commands:

  /ping             test the connection
  /accept           accept a private request, or chat with the channel bot
  /exit             exit the current private channel
  /pvt <user>       request a private chat session with a user
  /boot <user>      boot a user from the channel (administrators)
  /whisper <user> <message>   send a private message
  /spy              spy mode, monitor the entire channel (administrators)
  /normal           back to normal mode
  /quit             disconnect and quit`,
	RunE: runLiveChat,
}

func init() {
	rootCmd.AddCommand(livechatCmd)

	livechatCmd.Flags().String("channel", "", "Channel id or name to join")
	livechatCmd.Flags().String("info", "", "Contact info to send with the connect (name, email, phone)")
}

// printListener writes every channel event to the terminal.
type printListener struct {
	out io.Writer
}

func (l *printListener) Message(message string)      { fmt.Fprintln(l.out, message) }
func (l *printListener) Info(message string)         { fmt.Fprintln(l.out, message) }
func (l *printListener) Error(message string)        { fmt.Fprintln(l.out, message) }
func (l *printListener) Closed()                     { fmt.Fprintln(l.out, "Disconnected.") }
func (l *printListener) UpdateUsers(users string)    { fmt.Fprintf(l.out, "Online: %s\n", users) }
func (l *printListener) UpdateUsersXML(users string) {}

// runLiveChat executes the livechat command
func runLiveChat(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	channelID, _ := cmd.Flags().GetString("channel")
	if channelID == "" {
		return errors.New("the --channel flag is required")
	}
	info, _ := cmd.Flags().GetString("info")

	connection, err := openConnection(ctx)
	if err != nil {
		return err
	}

	channel := &dto.ChannelConfig{}
	channel.ID = channelID
	live := sdk.NewLiveChatConnection(connection, &printListener{out: cmd.OutOrStdout()})
	live.ContactInfo = info
	if err := live.Connect(ctx, channel, connection.User()); err != nil {
		return err
	}
	defer live.Disconnect()
	live.SetKeepAlive(true)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			if err := live.SendMessage(line); err != nil {
				return err
			}
			continue
		}

		command, argument, _ := strings.Cut(line[1:], " ")
		switch command {
		case "quit":
			return nil
		case "ping":
			err = live.Ping()
		case "accept":
			err = live.Accept()
		case "exit":
			err = live.Exit()
		case "spy":
			err = live.SpyMode()
		case "normal":
			err = live.NormalMode()
		case "pvt":
			err = live.Pvt(argument)
		case "boot":
			err = live.Boot(argument)
		case "whisper":
			user, message, ok := strings.Cut(argument, " ")
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "usage: /whisper <user> <message>")
				continue
			}
			err = live.Whisper(user, message)
		default:
			fmt.Fprintf(cmd.ErrOrStderr(), "unknown command /%s\n", command)
			continue
		}
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}
