package htmlcheck

// Default input locations, relative to the working directory.
const (
	DefaultChecksFile = "checks.json"
	DefaultHTMLFile   = "index.html"
)

// Config describes the inputs of a single check run.
type Config struct {
	// ChecksFile is the path to a JSON array of CSS selectors.
	ChecksFile string

	// HTMLFile is the local document, used when URL is empty.
	HTMLFile string

	// URL, when set, takes precedence over HTMLFile as the document source.
	URL string
}

// NewConfig returns a Config populated with the default file locations.
func NewConfig() Config {
	return Config{
		ChecksFile: DefaultChecksFile,
		HTMLFile:   DefaultHTMLFile,
	}
}

// UsesURL reports whether the document is fetched from a URL.
func (c Config) UsesURL() bool {
	return c.URL != ""
}
