package cmd

// Config carries everything the process reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	IdentityBaseURL    string
	IdentityServiceKey string
	JWTSecret          string

	// AdminSecretKey gates the admin bootstrap endpoint. Empty disables
	// the endpoint entirely.
	AdminSecretKey string

	// StrictTransitions switches the status lifecycle to forward-only
	// moves. Off by default: the administrator may move orders backward.
	StrictTransitions bool
}
