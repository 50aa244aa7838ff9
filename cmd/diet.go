package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/misterclayt0n/keima/internal/diet"
	"github.com/misterclayt0n/keima/internal/models"
	"github.com/misterclayt0n/keima/internal/router"
	"github.com/misterclayt0n/keima/internal/utils"
	"github.com/spf13/cobra"
)

const dietExit = "/sair"

var dietMessage string

func printChatMessage(w io.Writer, msg models.ChatMessage) {
	ts := faint(utils.FormatSaoPaulo(msg.Timestamp))
	if msg.Sender == models.SenderUser {
		fmt.Fprintf(w, "%s %s %s\n", boldYellow("Você:"), msg.Text, ts)
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", boldCyan("Keima:"), msg.Text, ts)
}

func send(cmd *cobra.Command, chat *diet.Chat, text string) error {
	reply, err := chat.Send(cmd.Context(), text)
	if errors.Is(err, diet.ErrEmptyMessage) {
		return nil
	}
	if err != nil {
		return err
	}
	printChatMessage(cmd.OutOrStdout(), reply)
	return nil
}

// renderDiet shows the conversation. Premium users can keep chatting on
// stdin until EOF or /sair.
func renderDiet(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	chat := diet.NewChat(a.session.User().FirstName(), a.cfg.Profile.Premium, diet.NewCannedResponder())

	printBoxedHeader(out, "DIETA")
	for _, msg := range chat.Messages() {
		printChatMessage(out, msg)
	}
	fmt.Fprintln(out)

	if !chat.Premium() {
		fmt.Fprintln(out, boldYellow("⭐ "+diet.ErrPremiumRequired.Error()))
		fmt.Fprintln(out, faint("Ative o premium com `premium = true` em [profile] no config."))
		return nil
	}

	if dietMessage != "" {
		return send(cmd, chat, dietMessage)
	}

	fmt.Fprintln(out, boldGreen("Sugestões:"))
	for _, s := range diet.Suggestions {
		fmt.Fprintf(out, "  • %s\n", s)
	}
	fmt.Fprintln(out, faint("Digite sua mensagem ("+dietExit+" para sair)"))

	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == dietExit {
			return nil
		}
		if err := send(cmd, chat, line); err != nil {
			return err
		}
	}
}

var dietCmd = &cobra.Command{
	Use:   "diet",
	Short: "Chat with Keima about your diet (premium)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return openPage(cmd, router.PageDiet)
	},
}

func init() {
	dietCmd.Flags().StringVarP(&dietMessage, "message", "m", "", "Send a single message instead of starting the chat")
	rootCmd.AddCommand(dietCmd)
}
