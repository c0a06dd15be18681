package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardshield/cmd/app/commands"
	"github.com/allisson/cardshield/internal/app"
	"github.com/allisson/cardshield/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-key",
			Usage: "Generate an RSA key pair for testing the encryption flow",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "key-id",
					Aliases: []string{"i"},
					Value:   "",
					Usage:   "Key ID (e.g., test-key-2026)",
				},
				&cli.IntFlag{
					Name:    "bits",
					Aliases: []string{"b"},
					Value:   2048,
					Usage:   "RSA modulus size in bits (minimum 2048)",
				},
				&cli.StringFlag{
					Name:    "out-private",
					Aliases: []string{"o"},
					Value:   "",
					Usage:   "Path to write the PEM private key (omit to print it)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				return commands.RunGenerateKey(
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("key-id"),
					int(cmd.Int("bits")),
					cmd.String("out-private"),
				)
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt a compact token with a PEM private key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "private-key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Path to the PEM private key",
				},
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Compact token produced by encrypt",
				},
				&cli.StringFlag{
					Name:    "metadata",
					Aliases: []string{"m"},
					Value:   "",
					Usage:   "Encoded metadata produced by encrypt (optional)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				return commands.RunDecrypt(
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("private-key"),
					cmd.String("token"),
					cmd.String("metadata"),
				)
			},
		},
	}
}
