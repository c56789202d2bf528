package main

import (
	"flag"
	"fmt"
	"os"

	"quiz-choice/internal/config"
	"quiz-choice/internal/logger"
	"quiz-choice/internal/service"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to the config file (default: ./config.yaml or ./configs/config.yaml)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		// Logger is not up yet
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Using config file", zap.String("path", cfg.Source), zap.Int("questions", len(cfg.Questions)))

	grader := service.NewGradingService(log)

	var earned, possible, rejected int
	for _, def := range cfg.Questions {
		q, err := grader.BuildQuestion(def)
		if err != nil {
			log.Error("Failed to build question", zap.String("title", def.Title), zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}

		possible += q.Points
		res, err := grader.Grade(q, def.Submission)
		if err != nil {
			rejected++
			continue
		}
		earned += res.EarnedPoints
	}

	log.Info("Grading finished",
		zap.Int("earnedPoints", earned),
		zap.Int("possiblePoints", possible),
		zap.Int("rejectedSubmissions", rejected),
	)
}
