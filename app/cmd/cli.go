package cmd

import (
	"context"
	"log"
	"os"

	"github.com/hqvu/furnistore/app/configs"
	"github.com/hqvu/furnistore/app/db/seeders"
	"github.com/hqvu/furnistore/app/models/migrations"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the database with demo data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					return seeders.DBSeed(db)
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate session, JWT and CSRF keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					return configs.GenerateAndPrintKeys()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
