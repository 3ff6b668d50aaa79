// Package main is the entry point for the influencer persona simulation.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/easegen/influencer-sim/internal/archive"
	"github.com/easegen/influencer-sim/internal/character"
	"github.com/easegen/influencer-sim/internal/config"
	"github.com/easegen/influencer-sim/internal/models"
	"github.com/easegen/influencer-sim/internal/prompt"
	"github.com/easegen/influencer-sim/internal/repository"
	"github.com/easegen/influencer-sim/internal/simulation"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nshutting down...")
		cancel()
	}()

	store, err := repository.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	embedder, err := archive.NewEmbedder(ctx, cfg.GoogleAPIKey, cfg.EmbeddingModel)
	if err != nil {
		log.Fatalf("failed to create embedder: %v", err)
	}
	archiveService := archive.NewService(embedder, store.Posts, cfg.SimilarityThreshold, cfg.SimilarityTopK)

	captions, err := models.NewCaptionGenerator(cfg.XAIAPIKey, cfg.LLMModel)
	if err != nil {
		log.Fatalf("failed to create caption generator: %v", err)
	}
	images, err := models.NewImageGenerator(ctx, cfg.GoogleAPIKey, cfg.ImageModel, cfg.AspectRatio)
	if err != nil {
		log.Fatalf("failed to create image generator: %v", err)
	}
	prompts, err := prompt.NewBuilder()
	if err != nil {
		log.Fatalf("failed to build prompt templates: %v", err)
	}

	generator, err := character.NewGenerator(cfg.CharacterDataPath)
	if err != nil {
		log.Fatalf("failed to create character generator: %v", err)
	}

	sim := simulation.New(prompts, captions, images, archiveService, store.Posts)
	for _, region := range cfg.Regions {
		c, err := generator.Generate(region, cfg.MinAge, cfg.MaxAge, "")
		if err != nil {
			log.Fatalf("failed to generate character for %s: %v", region, err)
		}
		id := strings.ToLower(strings.ReplaceAll(region, " ", "-"))
		if err := sim.AddCharacter(id, c); err != nil {
			log.Fatalf("failed to register character %s: %v", c.Name, err)
		}
		slog.Info("character ready",
			"id", id,
			"name", c.Name,
			"location", c.Location,
			"occupation", c.Occupation,
			"traits", strings.Join(c.PersonalityTraits, ", "))
	}

	for _, id := range sim.CharacterIDs() {
		err := sim.SimulateActivity(ctx, id, cfg.SimDuration, cfg.PostInterval)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("simulation failed for %s: %v", id, err)
		}
		if errors.Is(err, context.Canceled) {
			break
		}
	}
}
