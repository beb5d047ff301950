package main

import (
	"context"

	"github.com/spf13/viper"

	"github.com/gcouto/combustiveis-bh/internal/api"
	"github.com/gcouto/combustiveis-bh/internal/pkg/constants"
	"github.com/gcouto/combustiveis-bh/internal/pkg/logger"
	"github.com/gcouto/combustiveis-bh/internal/pkg/store"
	"github.com/gcouto/combustiveis-bh/internal/service/dataset"
	"github.com/gcouto/combustiveis-bh/internal/service/stats"
)

// defaultFiles lists the semester exports in chronological order.
var defaultFiles = []string{
	"combustiveis_2023_s1 - Gasolina.csv",
	"combustiveis_2023_s2 - Gasolina.csv",
	"combustiveis_2024_s1 - Gasolina.csv",
	"combustiveis_2024_s2 - Gasolina.csv",
	"combustiveis_2025_s1 - Gasolina.csv",
}

func main() {
	ctx := context.Background()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetDefault(constants.ViperKeyListenAddr, ":8080")
	viper.SetDefault(constants.ViperKeyCORSOrigin, "http://localhost:3000")
	viper.SetDefault(constants.ViperKeyDebug, false)
	viper.SetDefault(constants.ViperKeyDataDir, "data")
	viper.SetDefault(constants.ViperKeyDataFiles, defaultFiles)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}

	logger.Init(viper.GetBool(constants.ViperKeyDebug))

	loader := dataset.NewService(
		viper.GetString(constants.ViperKeyDataDir),
		viper.GetStringSlice(constants.ViperKeyDataFiles),
	)
	records, report, err := loader.LoadAll(ctx)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Infof(ctx, "dataset carregado: %d registros aceitos, %d rejeitados", report.Accepted, report.TotalRejected())

	session := stats.NewSession(store.NewStore(records))

	svc, err := api.NewAPIService(session, report)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	svc.Serve(viper.GetString(constants.ViperKeyListenAddr))
}
