package qdrant

import (
	"coffee-assistant/internal/product/repository"
	pkgLog "coffee-assistant/pkg/log"
	pkgQdrant "coffee-assistant/pkg/qdrant"
	"coffee-assistant/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// New creates a Qdrant-backed product index.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, vectorSize int, l pkgLog.Logger) repository.VectorRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}
