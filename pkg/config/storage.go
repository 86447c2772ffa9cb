package config

// StorageConfig controls the optional voice audio archive.
type StorageConfig struct {
	// Mode is "local" or "s3"
	Mode         string
	LocalDir     string
	AWSRegion    string
	AWSBucket    string
	ArchiveAudio bool
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Mode:         getEnv("STORAGE_MODE", "local"),
		LocalDir:     getEnv("UPLOAD_DIR", "./uploads"),
		AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
		AWSBucket:    getEnv("AWS_BUCKET", "orgstruct-voice-archive"),
		ArchiveAudio: getEnvBool("ARCHIVE_AUDIO", false),
	}
}
