package storage_fx

import (
	"context"
	"log"

	"github.com/zldymlg/soccom-lineup/internal/infra"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideBlobStore, provideBuckets)

func provideBlobStore() infra.BlobStore {
	store, err := infra.NewGCSBlobStore(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}
	return store
}

func provideBuckets() infra.Buckets {
	return infra.LoadBucketsFromEnv()
}
