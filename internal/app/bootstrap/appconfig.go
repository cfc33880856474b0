// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, CORS, body limits); AppConfig is everything specific to
// this service. Values are loaded in LoadConfig from config files,
// FUCAPI_* environment variables, or command-line flags.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Email/SMTP configuration for the password recovery flow
	MailSMTPHost string
	MailSMTPPort int
	MailSMTPUser string
	MailSMTPPass string
	MailFrom     string
	MailFromName string

	// BaseURL is the frontend origin recovery links point at,
	// e.g. "https://app.fucapi.example" or "http://localhost:3000".
	BaseURL string
}
