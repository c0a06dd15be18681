package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/cardshield/cmd/app/commands"
	"github.com/allisson/cardshield/internal/app"
	"github.com/allisson/cardshield/internal/config"
	cryptoDomain "github.com/allisson/cardshield/internal/crypto/domain"
	"github.com/allisson/cardshield/internal/encryption/usecase"
)

func requestFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "product",
			Aliases:  []string{"p"},
			Required: true,
			Usage:    "Path to the payment product definition (JSON)",
		},
		&cli.StringFlag{
			Name:     "values",
			Aliases:  []string{"v"},
			Required: true,
			Usage:    "Path to the entered payment values (JSON)",
		},
		&cli.StringFlag{
			Name:    "account-on-file",
			Aliases: []string{"a"},
			Usage:   "Path to an account on file (JSON), overrides the one in --values",
		},
	}
}

func requestFiles(cmd *cli.Command) commands.RequestFiles {
	return commands.RequestFiles{
		Product:       cmd.String("product"),
		Values:        cmd.String("values"),
		AccountOnFile: cmd.String("account-on-file"),
	}
}

func getPaymentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "format",
			Usage: "Apply or remove a display mask",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "mask",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Mask pattern (e.g., {{9999}} {{9999}} {{9999}} {{9999}})",
				},
				&cli.StringFlag{
					Name:     "value",
					Required: true,
					Usage:    "Value to format or unformat",
				},
				&cli.BoolFlag{
					Name:    "unformat",
					Aliases: []string{"u"},
					Value:   false,
					Usage:   "Strip the mask literals instead of applying the mask",
				},
				&cli.BoolFlag{
					Name:    "relax",
					Aliases: []string{"r"},
					Value:   false,
					Usage:   "Let every placeholder accept any character",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				return commands.RunFormat(
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("mask"),
					cmd.String("value"),
					cmd.Bool("unformat"),
					cmd.Bool("relax"),
				)
			},
		},
		{
			Name:  "validate",
			Usage: "Validate payment values against a payment product",
			Flags: requestFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				req, err := commands.LoadPaymentRequest(requestFiles(cmd))
				if err != nil {
					return err
				}

				// Validation needs no recipient key.
				encryptionUseCase, err := container.EncryptionUseCase(usecase.StaticPublicKeyProvider{})
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					encryptionUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					req,
				)
			},
		},
		{
			Name:  "encrypt",
			Usage: "Encrypt payment values for submission to the payment platform",
			Flags: append(requestFlags(),
				&cli.StringFlag{
					Name:     "public-key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Recipient public key as base64 DER (PKIX or PKCS#1)",
				},
				&cli.StringFlag{
					Name:     "key-id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Recipient key ID, sent as the token kid",
				},
				&cli.StringFlag{
					Name:     "session-id",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Client session ID",
				},
				&cli.BoolFlag{
					Name:  "tokenize",
					Value: false,
					Usage: "Ask the platform to store the instrument as an account on file",
				},
				&cli.BoolFlag{
					Name:  "metrics",
					Value: false,
					Usage: "Print collected metrics to stderr in Prometheus text format",
				},
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if cmd.Bool("metrics") {
					cfg.MetricsEnabled = true
				}
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				req, err := commands.LoadPaymentRequest(requestFiles(cmd))
				if err != nil {
					return err
				}
				if cmd.Bool("tokenize") {
					req.SetTokenize(true)
				}

				keys := usecase.StaticPublicKeyProvider{Key: cryptoDomain.EncryptionKey{
					KeyID:     cmd.String("key-id"),
					PublicKey: cmd.String("public-key"),
				}}
				encryptionUseCase, err := container.EncryptionUseCase(keys)
				if err != nil {
					return err
				}

				runErr := commands.RunEncrypt(
					ctx,
					encryptionUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					req,
					cmd.String("session-id"),
				)

				if cfg.MetricsEnabled {
					provider, err := container.MetricsProvider()
					if err != nil {
						return err
					}
					if err := provider.WriteText(os.Stderr); err != nil {
						return err
					}
				}
				return runErr
			},
		},
	}
}
