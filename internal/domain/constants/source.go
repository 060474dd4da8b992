package constants

// Location source providers
const (
	SourceProviderHTTP     = "http"
	SourceProviderPostgres = "postgres"
	SourceProviderFile     = "file"
)
