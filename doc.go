// Package padloc implements the encryption envelope at the core of a
// zero-knowledge secret manager: a versioned container that protects an
// opaque payload under one of three key-management schemes.
//
// The simple scheme holds a raw random key, the PBES2 scheme derives the key
// from a password with PBKDF2, and the shared scheme wraps one copy of the
// key per participant under their RSA public key (envelope encryption).
// All cryptographic primitives are delegated to a CryptoProvider, injected
// at container construction; StdProvider implements it on the Go standard
// library.
//
// Basic usage:
//
//	provider := padloc.NewStdProvider()
//
//	container := padloc.NewPasswordContainer(provider)
//	if err := container.SetPassword("correct horse battery staple"); err != nil {
//	    log.Fatal(err)
//	}
//
//	secret := &padloc.SecretData{Name: "login", Fields: map[string]string{
//	    "username": "alice",
//	    "password": "hunter2",
//	}}
//	if err := container.Protect(ctx, secret); err != nil {
//	    log.Fatal(err)
//	}
//
//	// The container serializes to a versioned JSON record safe to persist.
//	data, err := json.Marshal(container)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	restored, err := padloc.ParseContainer(data, provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	restored.SetPassword("correct horse battery staple")
//
//	var out padloc.SecretData
//	if err := restored.Unprotect(ctx, &out); err != nil {
//	    log.Fatal(err)
//	}
package padloc
