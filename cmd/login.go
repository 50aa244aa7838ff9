package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/misterclayt0n/keima/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	loginEmail      string
	loginPassword   string
	registerName    string
	registerConfirm string
)

// prompt reads one line from in when value is empty.
func prompt(in *bufio.Reader, out io.Writer, label, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprintf(out, "%s: ", label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptSecret is prompt without echo when stdin is a terminal.
func promptSecret(cmd *cobra.Command, in *bufio.Reader, out io.Writer, label, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return prompt(in, out, label, value)
	}
	fmt.Fprintf(out, "%s: ", label)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return string(secret), nil
}

func printResult(out io.Writer, res session.Result) {
	if res.Success {
		fmt.Fprintf(out, "✅ %s\n", res.Message)
	} else {
		fmt.Fprintf(out, "❌ %s\n", res.Message)
	}
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to your Keima account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		a.session.Restore(cmd.Context())
		if a.session.IsAuthenticated() {
			fmt.Fprintf(out, "Already logged in as %s\n", a.session.User().Email)
			return nil
		}

		printBanner(out)
		in := bufio.NewReader(cmd.InOrStdin())
		email, err := prompt(in, out, "Email", loginEmail)
		if err != nil {
			return err
		}
		password, err := promptSecret(cmd, in, out, "Senha", loginPassword)
		if err != nil {
			return err
		}

		res := a.session.Login(cmd.Context(), email, password)
		if !res.Success {
			printResult(out, res)
			return fmt.Errorf("login failed")
		}

		fmt.Fprintln(out, "✅ Login realizado com sucesso!")
		fmt.Fprintf(out, "Olá, %s! 👋\n", a.session.User().FirstName())
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Keima account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		in := bufio.NewReader(cmd.InOrStdin())

		var form session.RegisterForm
		if form.Name, err = prompt(in, out, "Nome Completo", registerName); err != nil {
			return err
		}
		if form.Email, err = prompt(in, out, "Email", loginEmail); err != nil {
			return err
		}
		if form.Password, err = promptSecret(cmd, in, out, "Senha", loginPassword); err != nil {
			return err
		}
		if form.ConfirmPassword, err = promptSecret(cmd, in, out, "Confirmar Senha", registerConfirm); err != nil {
			return err
		}

		res := a.session.Signup(cmd.Context(), form)
		printResult(out, res)
		if !res.Success {
			return fmt.Errorf("registration failed")
		}
		fmt.Fprintf(out, "Conta criada com sucesso! Faça login para continuar: keima login -e %s\n", form.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		a.session.Restore(cmd.Context())
		a.session.Logout(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		a.session.Restore(cmd.Context())
		user := a.session.User()
		if user == nil {
			return errNotLoggedIn
		}
		out := cmd.OutOrStdout()
		printMetric(out, "Nome", user.Name)
		printMetric(out, "Email", user.Email)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")

	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Full name")
	registerCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	registerCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password")
	registerCmd.Flags().StringVarP(&registerConfirm, "confirm-password", "c", "", "Repeat the password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
