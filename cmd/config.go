package cmd

// Config carries everything read from the environment at startup.
type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	JWTSecret         string
	StripeAPIKey      string
	ParcelStatusRoles string
}
