package environment

import (
	"strings"
	"unicode"
)

// Redacted replaces sensitive values in logged command lines
const Redacted = "********"

var secretPatterns = []string{
	"secret", "key", "token", "password", "pass", "pwd",
	"auth", "credential", "cred", "private", "cert",
	"api_key", "apikey", "access_key", "client_secret", "oauth",
	"bearer", "jwt", "session", "cookie", "salt", "signature",
	"signing", "encryption", "cipher", "webhook",
}

var databasePatterns = []string{
	"database_url", "db_url", "dsn", "connection_string",
	"postgres_url", "mysql_url", "mongodb_url", "redis_url",
}

// IsSensitive guesses whether an environment variable carries a secret,
// either from its name or from a value that looks generated
func IsSensitive(name, value string) bool {
	nameLower := strings.ToLower(name)

	if looksGenerated(value) {
		return true
	}
	for _, pattern := range databasePatterns {
		if strings.Contains(nameLower, pattern) {
			return true
		}
	}
	for _, pattern := range secretPatterns {
		if strings.Contains(nameLower, pattern) {
			return true
		}
	}
	// credentials embedded in a URL
	return strings.Contains(value, "://") && strings.Contains(value, "@")
}

// RedactArgs returns a copy of args with the values of sensitive -e and
// --build-arg assignments replaced
func RedactArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	for i := 0; i+1 < len(out); i++ {
		if out[i] != "-e" && out[i] != "--build-arg" {
			continue
		}
		key, value, found := strings.Cut(out[i+1], "=")
		if found && IsSensitive(key, value) {
			out[i+1] = key + "=" + Redacted
		}
		i++
	}
	return out
}

func looksGenerated(value string) bool {
	if len(value) < 8 {
		return false
	}

	// UUID pattern (36 chars with dashes)
	if len(value) == 36 && strings.Count(value, "-") == 4 {
		return true
	}

	// JWT tokens (3 base64 parts separated by dots)
	if strings.Count(value, ".") == 2 && len(value) > 50 && !strings.ContainsAny(value, " /") {
		return true
	}

	// Nanoid-like and other high-entropy tokens
	if len(value) >= 20 && isURLSafeBase64(value) && hasHighEntropy(value) && containsMixedCase(value) {
		return true
	}

	return false
}

func isURLSafeBase64(s string) bool {
	for _, r := range s {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_') {
			return false
		}
	}
	return true
}

func hasHighEntropy(value string) bool {
	charCount := make(map[rune]int)
	for _, r := range value {
		charCount[r]++
	}

	// High entropy if more than 50% unique characters
	uniqueRatio := float64(len(charCount)) / float64(len(value))
	return uniqueRatio > 0.5
}

func containsMixedCase(value string) bool {
	hasUpper := false
	hasLower := false
	for _, r := range value {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
		if hasUpper && hasLower {
			return true
		}
	}
	return false
}
