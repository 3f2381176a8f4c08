package app

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	DefaultAuthFile = "auth.secret"
	authRealm       = "Period Calendar Settings"
)

// Argon2id parameters (OWASP recommended)
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// Credentials guard the settings editor. A nil *Credentials means no auth
// file was found and edit endpoints are open (local development only).
type Credentials struct {
	User string
	Hash string
	File string
}

// EditCredentials is set by LoadAuthCredentials
var EditCredentials *Credentials

// AuthFilePath returns $AUTH_FILE or auth.secret next to the binary
func AuthFilePath() (string, error) {
	if f := os.Getenv("AUTH_FILE"); f != "" {
		return f, nil
	}
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(execPath), DefaultAuthFile), nil
}

// ReadCredentials parses an auth file of the form "username:hash"
func ReadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	user, hash, ok := strings.Cut(strings.TrimSpace(string(data)), ":")
	if !ok || user == "" || hash == "" {
		return nil, fmt.Errorf("invalid auth file format (expected: username:hash)")
	}
	return &Credentials{User: user, Hash: hash, File: path}, nil
}

// LoadAuthCredentials loads EditCredentials; a missing file leaves edit mode open
func LoadAuthCredentials() error {
	path, err := AuthFilePath()
	if err != nil {
		return err
	}

	creds, err := ReadCredentials(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️  NO AUTH FILE FOUND - settings editor is unprotected (expected %s)", path)
		log.Printf("⚠️  Local development only. Create one with: period-calendar hash-password")
		EditCredentials = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read auth file: %w", err)
	}

	EditCredentials = creds
	log.Printf("✅ Basic Auth enabled for edit mode (user: %s, file: %s)", creds.User, creds.File)
	return nil
}

// Check verifies a username/password pair in constant time
func (c *Credentials) Check(user, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1
	if !userMatch {
		return false
	}
	ok, err := VerifyPassword(password, c.Hash)
	if err != nil {
		log.Printf("Error verifying password: %v", err)
		return false
	}
	return ok
}

// HashPassword creates an Argon2id hash of the password in PHC string format
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

type argon2Hash struct {
	memory, time uint32
	threads      uint8
	salt, key    []byte
}

func parseArgon2Hash(encoded string) (*argon2Hash, error) {
	// $argon2id$v=19$m=65536,t=1,p=4$salt$hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid hash format")
	}
	if parts[1] != "argon2id" {
		return nil, fmt.Errorf("not an argon2id hash")
	}

	var h argon2Hash
	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.memory, &h.time, &threads); err != nil {
		return nil, fmt.Errorf("failed to parse hash parameters: %w", err)
	}
	h.threads = uint8(threads)

	var err error
	if h.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	if h.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return nil, fmt.Errorf("failed to decode hash: %w", err)
	}
	return &h, nil
}

// VerifyPassword verifies a password against an Argon2id hash
func VerifyPassword(password, encoded string) (bool, error) {
	h, err := parseArgon2Hash(encoded)
	if err != nil {
		return false, err
	}
	computed := argon2.IDKey([]byte(password), h.salt, h.time, h.memory, h.threads, uint32(len(h.key)))
	return subtle.ConstantTimeCompare(h.key, computed) == 1, nil
}

// RequireAuth is a middleware that enforces Basic Auth against EditCredentials
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creds := EditCredentials
		if creds == nil {
			next(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()
		if !ok || !creds.Check(user, pass) {
			w.Header().Set("WWW-Authenticate", fmt.Sprintf("Basic realm=%q", authRealm))
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			log.Printf("⚠️  Failed auth attempt from %s (user: %s)", r.RemoteAddr, user)
			return
		}

		next(w, r)
	}
}

// WriteAuthFile hashes password and writes "username:hash" to path with mode
// 0400. An existing file is replaced only when overwrite is set.
func WriteAuthFile(path, username, password string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("auth file already exists: %s", path)
		}
		// 0400 files cannot be truncated in place
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove existing auth file: %w", err)
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	content := fmt.Sprintf("%s:%s\n", username, hash)
	if err := os.WriteFile(path, []byte(content), 0400); err != nil {
		return fmt.Errorf("failed to write auth file: %w", err)
	}
	return nil
}
