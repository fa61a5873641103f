package httputil

type ContextKey string

// ContextURL is the key for the base URL of the API in the gin context.
const ContextURL ContextKey = "baseURL"
