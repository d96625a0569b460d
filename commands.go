package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin/binding"
	"github.com/spf13/cobra"

	"github.com/aditya2671/portfolio/internal/config"
	"github.com/aditya2671/portfolio/internal/contact"
)

var (
	appCfg config.Config
	logger *slog.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio site",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			appCfg = cfg
			logger = cfg.Logger(os.Stderr)
			slog.SetDefault(logger)
			return nil
		},
	}

	root.AddCommand(serveCmd(), contactCmd())
	return root
}

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := newServer(cmd.Context(), appCfg, contact.NewRelayClient(appCfg.EmailJSEndpoint), logger)
			if err != nil {
				return err
			}
			defer srv.Close()

			if addr == "" {
				port := appCfg.Port
				if port == "" {
					port = "8080"
				}
				addr = ":" + port
			}
			if _, ok := appCfg.Relay().(contact.RelayNotConfigured); ok {
				logger.Info("email relay not configured, contact form will use mailto")
			}
			logger.Info("portfolio listening", "addr", addr, "theme_store", appCfg.ThemeStore)
			return srv.routes().Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :$PORT)")
	return cmd
}

func contactCmd() *cobra.Command {
	var form contactForm
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact message through the configured relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := binding.Validator.ValidateStruct(form); err != nil {
				return fmt.Errorf("%s: %w", constraintError, err)
			}
			s := contact.NewSubmitter(appCfg.Relay(), contact.NewRelayClient(appCfg.EmailJSEndpoint), appCfg.Recipient, logger)
			printContactResult(cmd.Context(), cmd.OutOrStdout(), s, form)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "sender name")
	cmd.Flags().StringVar(&form.Email, "email", "", "sender email address")
	cmd.Flags().StringVar(&form.Message, "message", "", "message text")
	return cmd
}

func printContactResult(ctx context.Context, w io.Writer, s *contact.Submitter, form contactForm) {
	s.OnStatus = func(o contact.Outcome) {
		if o == contact.OutcomeSending {
			fmt.Fprintln(w, o.Status())
		}
	}
	view := viewFor(form, s.Submit(ctx, form.message()))
	fmt.Fprintln(w, view.Status)
	if view.Mailto != "" {
		fmt.Fprintln(w, view.Mailto)
	}
}
