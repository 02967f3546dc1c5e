package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tokens/cmd/app/commands"
	"github.com/allisson/tokens/internal/app"
	"github.com/allisson/tokens/internal/config"
)

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-token",
			Usage: "Issue a new scoped API token",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:     "application-id",
					Aliases:  []string{"a"},
					Required: true,
					Usage:    "Application the token belongs to",
				},
				&cli.StringFlag{
					Name:     "category",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Token category: 'airline', 'consultant' or 'other'",
				},
				&cli.StringFlag{
					Name:     "owner-email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Email of the token owner",
				},
				&cli.StringFlag{
					Name:    "expiry",
					Aliases: []string{"x"},
					Value:   "30",
					Usage:   "Expiry: number of days, absolute date (YYYY-MM-DD) or 'never'",
				},
				&cli.StringFlag{
					Name:  "allowed-ips",
					Usage: "Comma-separated IP or CIDR allow-list (empty = unrestricted)",
				},
				&cli.StringFlag{
					Name:  "allowed-emails",
					Usage: "Comma-separated caller email allow-list (empty = unrestricted)",
				},
				&cli.StringFlag{
					Name:  "allowed-domains",
					Usage: "Comma-separated caller domain allow-list (empty = unrestricted)",
				},
				&cli.StringSliceFlag{
					Name:     "grant",
					Aliases:  []string{"g"},
					Required: true,
					Usage:    "Scope grant in the form CODE=/endpoint_a,/endpoint_b (repeatable)",
				},
				&cli.StringFlag{
					Name:  "created-by",
					Usage: "Identifier of the operator issuing the token",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateToken(
					ctx,
					tokenUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					commands.CreateTokenParams{
						ApplicationID:  int64(cmd.Int("application-id")),
						Category:       cmd.String("category"),
						OwnerEmail:     cmd.String("owner-email"),
						Expiry:         cmd.String("expiry"),
						AllowedIPs:     cmd.String("allowed-ips"),
						AllowedEmails:  cmd.String("allowed-emails"),
						AllowedDomains: cmd.String("allowed-domains"),
						Grants:         cmd.StringSlice("grant"),
						CreatedBy:      cmd.String("created-by"),
						Format:         cmd.String("format"),
					},
				)
			},
		},
		{
			Name:  "revoke-token",
			Usage: "Revoke an issued token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Token ID to revoke",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunRevokeToken(
					ctx,
					tokenUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-tokens",
			Usage: "List issued tokens, newest first",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "offset",
					Value: 0,
					Usage: "Number of tokens to skip",
				},
				&cli.IntFlag{
					Name:  "limit",
					Value: 50,
					Usage: "Maximum number of tokens to return",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunListTokens(
					ctx,
					tokenUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("offset")),
					int(cmd.Int("limit")),
					cmd.String("format"),
				)
			},
		},
	}
}
