package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"resume-matcher/internal/config"
	"resume-matcher/internal/services"
)

// Ingests a directory of job-posting PDFs into the Qdrant exemplar
// collection. Usage: go run ./scripts <dir>
func main() {
	log.Println("🚀 Starting exemplar ingestion...")

	dir := "./reference_postings"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	// Load configuration
	cfg := config.Load()

	if cfg.Qdrant.URL == "" {
		log.Fatal("❌ QDRANT_URL is required for ingestion")
	}

	// Initialize services
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	exemplarStore, err := services.NewExemplarStore(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := exemplarStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	extractor := services.NewPDFExtractor()
	chunker := services.NewTextChunker()

	ctx := context.Background()

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("❌ Failed to read directory %s: %v", dir, err)
	}

	successCount := 0
	failCount := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		title := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		exemplarID := strings.ToLower(strings.ReplaceAll(title, " ", "_"))

		log.Printf("\n📄 Processing: %s", title)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("   ❌ Failed to read file: %v", err)
			failCount++
			continue
		}

		content, err := extractor.Extract(data)
		if err != nil {
			log.Printf("   ❌ Failed to extract text: %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Extracted %d pages, %d characters", content.PageCount, len(content.Text))

		chunks := chunker.ChunkText(content.Text, 1000, 200)
		log.Printf("   ✂️  Created %d chunks", len(chunks))

		for i, chunk := range chunks {
			embedding, err := geminiService.Embed(ctx, chunk)
			if err != nil {
				log.Printf("   ❌ Failed to generate embedding for chunk %d: %v", i+1, err)
				continue
			}

			chunkID := fmt.Sprintf("%s_chunk_%d", exemplarID, i)
			if err := exemplarStore.IngestChunk(ctx, chunkID, title, chunk, embedding); err != nil {
				log.Printf("   ❌ Failed to store chunk %d: %v", i+1, err)
				continue
			}
		}

		log.Printf("   ✅ Successfully ingested %s", title)
		successCount++
	}

	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
