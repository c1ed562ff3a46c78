package infra

import "os"

// Buckets names the two storage buckets the app writes to. The defaults
// match the buckets the historical data lives in, so overriding them is
// only needed for staging environments.
type Buckets struct {
	Files    string
	Profiles string
}

func LoadBucketsFromEnv() Buckets {
	b := Buckets{
		Files:    os.Getenv("STORAGE_BUCKET_FILES"),
		Profiles: os.Getenv("STORAGE_BUCKET_PROFILES"),
	}
	if b.Files == "" {
		b.Files = "PDF"
	}
	if b.Profiles == "" {
		b.Profiles = "profiles"
	}
	return b
}
