// Comando pipeline roda o lote completo de scoring sobre um dataset CSV,
// sem depender de banco nem de servidor HTTP
package main

import (
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-radar-api/infrastructure/ingest"
	"github.com/vfg2006/lead-radar-api/internal/pipeline"
	"github.com/vfg2006/lead-radar-api/internal/taxonomy"
)

func main() {
	var (
		inputPath    = flag.String("input", "", "caminho do dataset CSV exportado pelo ator")
		outputPath   = flag.String("output", "ranking.csv", "caminho do CSV de saída com o ranking")
		taxonomyDir  = flag.String("taxonomies", "taxonomies", "diretório com as tabelas de classificação")
		workers      = flag.Int("workers", 4, "workers de pontuação por anunciante")
		logLevelFlag = flag.String("log-level", "info", "nível de log")
	)
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(*logLevelFlag)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if *inputPath == "" {
		logrus.Fatal("O caminho do dataset de entrada é obrigatório (-input)")
	}

	tax, err := taxonomy.Load(*taxonomyDir)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar as tabelas de classificação")
	}

	reader := ingest.NewAdReader()
	ads, err := reader.Read(*inputPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o dataset de entrada")
	}

	p := pipeline.New(tax, pipeline.WithWorkers(*workers))

	startTime := time.Now()
	result, err := p.Run(ads)
	if err != nil {
		logrus.WithError(err).Fatal("Erro na execução do pipeline")
	}

	writer := ingest.NewScoreWriter()
	if err := writer.Write(*outputPath, result.Advertisers); err != nil {
		logrus.WithError(err).Fatal("Erro ao escrever o ranking de saída")
	}

	logrus.WithFields(logrus.Fields{
		"total_ads":           result.TotalAds,
		"total_advertisers":   len(result.Advertisers),
		"passed_gate":         result.PassedGate,
		"uncategorized_share": result.UncategorizedShare,
		"junk_risk_in_top20":  result.JunkRiskInTop20,
		"elapsed":             time.Since(startTime).String(),
		"output":              *outputPath,
	}).Info("Pipeline concluído")
}
