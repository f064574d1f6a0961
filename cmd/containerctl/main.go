// Command containerctl protects and unprotects secret files using a
// password-scheme container.
//
// The password is taken from the PADLOC_PASSWORD environment variable,
// which can also be provided through a .env file in the working
// directory.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/JonasKruckenberg/padloc"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: containerctl <protect|unprotect|inspect> [args]")
	}

	// Best effort; the variable may already be set in the environment.
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "protect":
		if len(os.Args) < 3 {
			fatal("usage: containerctl protect <container-file>")
		}
		protect(ctx, os.Args[2])
	case "unprotect":
		if len(os.Args) < 3 {
			fatal("usage: containerctl unprotect <container-file>")
		}
		unprotect(ctx, os.Args[2])
	case "inspect":
		if len(os.Args) < 3 {
			fatal("usage: containerctl inspect <container-file>")
		}
		inspect(os.Args[2])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func password() string {
	pwd := os.Getenv("PADLOC_PASSWORD")
	if pwd == "" {
		fatal("PADLOC_PASSWORD environment variable is required")
	}
	return pwd
}

// protect reads a secret from stdin, encrypts it and writes the
// container to path.
func protect(ctx context.Context, path string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	var secret padloc.SecretData
	if err := json.Unmarshal(data, &secret); err != nil {
		fatal("parse secret: %v", err)
	}

	container := padloc.NewPasswordContainer(padloc.NewStdProvider())
	if err := container.SetPassword(password()); err != nil {
		fatal("set password: %v", err)
	}
	if err := container.Protect(ctx, &secret); err != nil {
		fatal("protect: %v", err)
	}

	out, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		fatal("encode container: %v", err)
	}
	if err := os.WriteFile(path, out, 0600); err != nil {
		fatal("write container: %v", err)
	}
	json.NewEncoder(os.Stdout).Encode(map[string]string{"id": container.ID})
}

// unprotect decrypts the container at path and writes the secret to
// stdout.
func unprotect(ctx context.Context, path string) {
	container := loadContainer(path)
	if err := container.SetPassword(password()); err != nil {
		fatal("set password: %v", err)
	}

	var secret padloc.SecretData
	if err := container.Unprotect(ctx, &secret); err != nil {
		fatal("unprotect: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(&secret); err != nil {
		fatal("encode secret: %v", err)
	}
}

// inspect prints the container's public metadata without decrypting
// anything.
func inspect(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read container: %v", err)
	}

	var raw padloc.RawContainer
	if err := json.Unmarshal(data, &raw); err != nil {
		fatal("parse container: %v", err)
	}
	if err := raw.Validate(); err != nil {
		fatal("invalid container: %v", err)
	}

	output := struct {
		Version    int           `json:"version"`
		Scheme     padloc.Scheme `json:"scheme"`
		ID         string        `json:"id"`
		Algorithm  string        `json:"algorithm"`
		KeySize    int           `json:"keySize"`
		Iterations int           `json:"iterations,omitempty"`
	}{
		Version:   raw.Version,
		Scheme:    raw.Scheme,
		ID:        raw.ID,
		Algorithm: raw.EncryptionParams.Algorithm,
		KeySize:   raw.EncryptionParams.KeySize,
	}
	if raw.KeyParams != nil {
		output.Iterations = raw.KeyParams.Iterations
	}

	if err := json.NewEncoder(os.Stdout).Encode(output); err != nil {
		fatal("encode output: %v", err)
	}
}

func loadContainer(path string) *padloc.Container {
	data, err := os.ReadFile(path)
	if err != nil {
		fatal("read container: %v", err)
	}
	container, err := padloc.ParseContainer(data, padloc.NewStdProvider())
	if err != nil {
		fatal("parse container: %v", err)
	}
	return container
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
