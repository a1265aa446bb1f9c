package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/factory/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/factory/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/factory/internal/version.Date={{.Date}}
)

// Summary returns the one line version string shown by the CLI
func Summary(app string) string {
	return app + " version " + Version
}
