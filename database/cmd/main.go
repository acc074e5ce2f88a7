package main

import (
	"fmt"
	"os"

	"wildhearts.link/configs"
	"wildhearts.link/configs/configsdatabase"
	"wildhearts.link/configs/configslog"
	"wildhearts.link/database"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	opts := database.Options{}

	cmd := &cobra.Command{
		Use:   "wildhearts-db",
		Short: "Wild Hearts veritabanı migrasyon ve seed aracı",
		Long: `Tabloları oluşturur (--migrate) ve admin kullanıcı ile tekil içerik satırını
yazar (--seed). İki adım da tek transaction içinde çalışır.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ContentSeedFile == "" {
				opts.ContentSeedFile = configs.GetEnv("CONTENT_SEED_FILE", "")
			}

			configsdatabase.InitDB()
			defer configsdatabase.CloseDB()

			configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
			if err := database.Initialize(configsdatabase.GetDB(), opts); err != nil {
				return err
			}
			configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Migrate, "migrate", false, "migrasyonları çalıştır")
	cmd.Flags().BoolVar(&opts.Seed, "seed", false, "seeder'ları çalıştır")
	cmd.Flags().StringVar(&opts.ContentSeedFile, "content-file", "", "içerik için YAML dosyası (varsayılan: CONTENT_SEED_FILE)")
	return cmd
}

func main() {
	configs.InitEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		configslog.SyncLogger()
		os.Exit(1)
	}
}
