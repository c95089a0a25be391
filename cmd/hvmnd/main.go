package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	client "github.com/Smarandii/hvmnd-api-client"
)

var apiURL string
var timeout time.Duration
var debug bool

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hvmnd",
		Short:         "Command line access to the hvmnd API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	// Missing base URL is not fatal here: --api-url may still be given.
	cfg, _ := client.LoadConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", cfg.BaseURL, "Base URL of the hvmnd API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", cfg.HTTPTimeout, "HTTP timeout per request")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", cfg.Debug, "Enable verbose debug output")

	rootCmd.AddCommand(newPingCmd())
	rootCmd.AddCommand(newGetNodesCmd())
	rootCmd.AddCommand(newUpdateNodeCmd())
	rootCmd.AddCommand(newGetPaymentsCmd())
	rootCmd.AddCommand(newCreatePaymentCmd())
	rootCmd.AddCommand(newCompletePaymentCmd())
	rootCmd.AddCommand(newCancelPaymentCmd())
	rootCmd.AddCommand(newGetUsersCmd())
	rootCmd.AddCommand(newUpsertUserCmd())
	rootCmd.AddCommand(newQuizHashCmd())
	rootCmd.AddCommand(newSaveHashCmd())
	rootCmd.AddCommand(newGetQuestionAnswerCmd())
	rootCmd.AddCommand(newSaveAnswerCmd())

	return rootCmd
}

func newClient() (*client.Client, error) {
	return client.New(apiURL,
		client.WithHTTPTimeout(timeout),
		client.WithDebugLogging(debug),
		client.WithLogger(log.Logger.With().Str("component", "hvmnd_client").Logger()),
		client.WithUserAgent("hvmnd-cli"),
	)
}

// runOp builds a client, runs fn and prints its result as indented JSON.
func runOp(cmd *cobra.Command, op string, fn func(context.Context, *client.Client) (any, error)) error {
	log.Debug().Str("op", op).Str("api_url", apiURL).Msg("sending request")

	c, err := newClient()
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := fn(cmd.Context(), c)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("op", op).Dur("elapsed", elapsed).Msg("request failed")
		return err
	}
	log.Debug().Str("op", op).Dur("elapsed", elapsed).Msg("request completed")
	return printJSON(cmd.OutOrStdout(), out)
}

// body is what the CLI prints for plain responses: the JSON object exactly as
// the server sent it, or the substituted body for a 404.
func body(resp *client.Response, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if resp.NotFound {
		log.Warn().Str("error", resp.Error).Msg("not found")
	}
	return resp.Body, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// --------------------------------------------------------------------
// Health
// --------------------------------------------------------------------

func newPingCmd() *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check whether the API is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if wait > 0 {
				ctx, cancel := context.WithTimeout(cmd.Context(), wait)
				defer cancel()
				if err := c.WaitReady(ctx); err != nil {
					return err
				}
			} else if !c.Ping(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), "down")
				return fmt.Errorf("api at %s is not reachable", apiURL)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "up")
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep polling until the API answers or this much time passes")
	return cmd
}

// --------------------------------------------------------------------
// Nodes
// --------------------------------------------------------------------

func newGetNodesCmd() *cobra.Command {
	var filter client.NodeFilter

	cmd := &cobra.Command{
		Use:   "get-nodes",
		Short: "List nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, "get-nodes", func(ctx context.Context, c *client.Client) (any, error) {
				res, err := c.GetNodes(ctx, filter)
				if err != nil {
					return nil, err
				}
				return res.Nodes, nil
			})
		},
	}

	cmd.Flags().Int64Var(&filter.ID, "id", 0, "Node ID")
	cmd.Flags().StringVar(&filter.Renter, "renter", "", "Renter ID, or non_null for any rented node")
	cmd.Flags().StringVar(&filter.Status, "status", "", "Node status")
	cmd.Flags().StringVar(&filter.AnyDeskAddress, "any-desk-address", "", "AnyDesk address")
	cmd.Flags().StringVar(&filter.Software, "software", "", "Installed software")
	return cmd
}

func newUpdateNodeCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update-node",
		Short: "Update a node from a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if file == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(file)
			}
			if err != nil {
				return fmt.Errorf("read node: %w", err)
			}
			node, err := client.DecodeNode(data)
			if err != nil {
				return fmt.Errorf("decode node: %w", err)
			}
			return runOp(cmd, "update-node", func(ctx context.Context, c *client.Client) (any, error) {
				return body(c.UpdateNode(ctx, node))
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the node JSON, or - for stdin (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// --------------------------------------------------------------------
// Payments
// --------------------------------------------------------------------

func newGetPaymentsCmd() *cobra.Command {
	var filter client.PaymentFilter

	cmd := &cobra.Command{
		Use:   "get-payments",
		Short: "List payments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, "get-payments", func(ctx context.Context, c *client.Client) (any, error) {
				res, err := c.GetPayments(ctx, filter)
				if err != nil {
					return nil, err
				}
				return res.Payments, nil
			})
		},
	}

	cmd.Flags().Int64Var(&filter.ID, "id", 0, "Payment ID")
	cmd.Flags().Int64Var(&filter.UserID, "user-id", 0, "User ID")
	cmd.Flags().StringVar(&filter.Status, "status", "", "Payment status")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "Maximum number of payments")
	return cmd
}

func newCreatePaymentCmd() *cobra.Command {
	var userID int64
	var amount float64

	cmd := &cobra.Command{
		Use:   "create-payment",
		Short: "Open a payment ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, "create-payment", func(ctx context.Context, c *client.Client) (any, error) {
				return body(c.CreatePaymentTicket(ctx, userID, amount))
			})
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 0, "User ID (required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount (required)")
	_ = cmd.MarkFlagRequired("user-id")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func newCompletePaymentCmd() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "complete-payment",
		Short: "Mark a payment ticket as completed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, "complete-payment", func(ctx context.Context, c *client.Client) (any, error) {
				return body(c.CompletePayment(ctx, id))
			})
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Payment ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newCancelPaymentCmd() *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "cancel-payment",
		Short: "Mark a payment ticket as cancelled",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, "cancel-payment", func(ctx context.Context, c *client.Client) (any, error) {
				return body(c.CancelPayment(ctx, id))
			})
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "Payment ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

// --------------------------------------------------------------------
// Users
// --------------------------------------------------------------------

func newGetUsersCmd() *cobra.Command {
	var filter client.UserFilter

	cmd := &cobra.Command{
		Use:   "get-users",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, "get-users", func(ctx context.Context, c *client.Client) (any, error) {
				res, err := c.GetUsers(ctx, filter)
				if err != nil {
					return nil, err
				}
				return res.Users, nil
			})
		},
	}

	cmd.Flags().Int64Var(&filter.ID, "id", 0, "User ID")
	cmd.Flags().Int64Var(&filter.TelegramID, "telegram-id", 0, "Telegram ID")
	cmd.Flags().StringVar(&filter.Username, "username", "", "Username")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "Maximum number of users")
	return cmd
}

func newUpsertUserCmd() *cobra.Command {
	var input client.UserInput
	var firstName, lastName, username, languageCode string
	var totalSpent, balance float64
	var banned bool

	cmd := &cobra.Command{
		Use:   "upsert-user",
		Short: "Create or update a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags given on the command line are sent.
			flags := cmd.Flags()
			if flags.Changed("first-name") {
				input.FirstName = &firstName
			}
			if flags.Changed("last-name") {
				input.LastName = &lastName
			}
			if flags.Changed("username") {
				input.Username = &username
			}
			if flags.Changed("language-code") {
				input.LanguageCode = &languageCode
			}
			if flags.Changed("total-spent") {
				input.TotalSpent = &totalSpent
			}
			if flags.Changed("balance") {
				input.Balance = &balance
			}
			if flags.Changed("banned") {
				input.Banned = &banned
			}
			return runOp(cmd, "upsert-user", func(ctx context.Context, c *client.Client) (any, error) {
				return body(c.CreateOrUpdateUser(ctx, input))
			})
		},
	}

	cmd.Flags().Int64Var(&input.TelegramID, "telegram-id", 0, "Telegram ID (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&languageCode, "language-code", "", "Language code")
	cmd.Flags().Float64Var(&totalSpent, "total-spent", 0, "Total spent")
	cmd.Flags().Float64Var(&balance, "balance", 0, "Balance")
	cmd.Flags().BoolVar(&banned, "banned", false, "Banned")
	_ = cmd.MarkFlagRequired("telegram-id")
	return cmd
}

// --------------------------------------------------------------------
// Quiz
// --------------------------------------------------------------------

func newQuizHashCmd() *cobra.Command {
	var question, answer string

	cmd := &cobra.Command{
		Use:   "quiz-hash",
		Short: "Print the answer hash for a question/answer pair (offline)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), client.GenerateHash(question, answer))
			return nil
		},
	}

	cmd.Flags().StringVar(&question, "question", "", "Question (required)")
	cmd.Flags().StringVar(&answer, "answer", "", "Answer (required)")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func newSaveHashCmd() *cobra.Command {
	var question, answer string

	cmd := &cobra.Command{
		Use:   "save-hash",
		Short: "Store a question/answer pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, "save-hash", func(ctx context.Context, c *client.Client) (any, error) {
				return body(c.SaveHashMapping(ctx, question, answer))
			})
		},
	}

	cmd.Flags().StringVar(&question, "question", "", "Question (required)")
	cmd.Flags().StringVar(&answer, "answer", "", "Answer (required)")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func newGetQuestionAnswerCmd() *cobra.Command {
	var hash string

	cmd := &cobra.Command{
		Use:   "get-question-answer",
		Short: "Look up a question/answer pair by hash",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, "get-question-answer", func(ctx context.Context, c *client.Client) (any, error) {
				return body(c.GetQuestionAnswerByHash(ctx, hash))
			})
		},
	}

	cmd.Flags().StringVar(&hash, "hash", "", "Answer hash (required)")
	_ = cmd.MarkFlagRequired("hash")
	return cmd
}

func newSaveAnswerCmd() *cobra.Command {
	var telegramID int64
	var question, answer string

	cmd := &cobra.Command{
		Use:   "save-answer",
		Short: "Record a user's answer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd, "save-answer", func(ctx context.Context, c *client.Client) (any, error) {
				return body(c.SaveUserAnswer(ctx, telegramID, question, answer))
			})
		},
	}

	cmd.Flags().Int64Var(&telegramID, "telegram-id", 0, "Telegram ID (required)")
	cmd.Flags().StringVar(&question, "question", "", "Question (required)")
	cmd.Flags().StringVar(&answer, "answer", "", "Answer (required)")
	_ = cmd.MarkFlagRequired("telegram-id")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}
