package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charlieabtbl/cosmicroses/crypto"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new file containing the hex encoded private key is
created. This command fails if the private key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		confFl = flConfig(fl)
		keyFl  = fl.String("key", "", "Path to the private key file. Defaults to the configured key.")
	)
	fl.Parse(args)

	keyPath, err := keyPath(*confFl, *keyFl)
	if err != nil {
		return err
	}
	if _, err := os.Stat(keyPath); !os.IsNotExist(err) {
		// Do not allow to overwrite an existing private key. User must
		// delete it first.
		return fmt.Errorf("private key file %q already exists, delete this file and try again", keyPath)
	}

	key, err := crypto.GenPrivKeyEd25519(nil)
	if err != nil {
		return fmt.Errorf("cannot generate ed25519 key: %s", err)
	}
	if err := os.MkdirAll(filepath.Dir(keyPath), 0700); err != nil {
		return fmt.Errorf("cannot create key directory: %s", err)
	}
	if err := os.WriteFile(keyPath, []byte(key.String()), 0600); err != nil {
		return fmt.Errorf("cannot write private key: %s", err)
	}
	_, err = fmt.Fprintln(output, key.PublicKey().Address())
	return err
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the hex and bech32 address associated with your private key.
`)
		fl.PrintDefaults()
	}
	var (
		confFl = flConfig(fl)
		keyFl  = fl.String("key", "", "Path to the private key file. Defaults to the configured key.")
	)
	fl.Parse(args)

	keyPath, err := keyPath(*confFl, *keyFl)
	if err != nil {
		return err
	}
	key, err := loadKey(keyPath)
	if err != nil {
		return err
	}
	addr := key.PublicKey().Address()
	bech, err := addr.Bech32()
	if err != nil {
		return fmt.Errorf("cannot encode bech32 address: %s", err)
	}
	_, err = fmt.Fprintf(output, "%s\n%s\n", addr, bech)
	return err
}

// keyPath returns the path given explicitly or the one from the
// configuration.
func keyPath(confPath, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	conf, err := loadConfig(confPath)
	if err != nil {
		return "", err
	}
	return conf.Key, nil
}

func loadKey(path string) (*crypto.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read private key file: %s", err)
	}
	key, err := crypto.ParsePrivateKey(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("cannot parse private key: %s", err)
	}
	return key, nil
}
