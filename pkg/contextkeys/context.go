package contextkeys

// Custom key type to avoid collisions with other context values.
type contextKey string

// DBContextKey is the key under which middleware.DBMiddleware stores the
// *gorm.DB handle (the pool in production, a transaction in tests).
const DBContextKey = contextKey("db")
