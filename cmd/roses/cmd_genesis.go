package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/std"
	"github.com/charlieabtbl/cosmicroses/x/shares"
)

func cmdDevGenesis(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print a development genesis. It deploys a token owned by a splitter, the
splitter itself and a work behind a proxy. The key holder administers all
contracts.

  $ roses devgenesis -payee <addr>:150 -payee <addr>:100 > genesis.json
  $ roses init -genesis genesis.json
`)
		fl.PrintDefaults()
	}
	var (
		payeesFl payeesFlag
		confFl   = flConfig(fl)
		keyFl    = fl.String("key", "", "Path to the private key file of the admin. Defaults to the configured key.")
		supplyFl = fl.Uint64("supply", 1000000, "Token supply owned by the splitter.")
	)
	fl.Var(&payeesFl, "payee", "Payee given as <address>:<shares>. Can be used many times.")
	fl.Parse(args)

	conf, err := loadConfig(*confFl)
	if err != nil {
		return err
	}
	if *keyFl != "" {
		conf.Key = *keyFl
	}
	key, err := loadKey(conf.Key)
	if err != nil {
		return err
	}
	if len(payeesFl) == 0 {
		payeesFl = append(payeesFl, &shares.Entry{Address: key.PublicKey().Address(), Shares: 1})
	}
	gen, err := std.DevGenesis(key.PublicKey().Condition(), payeesFl, *supplyFl)
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(gen, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize genesis: %s", err)
	}
	_, err = fmt.Fprintln(output, string(raw))
	return err
}

// payeesFlag collects payee entries given as <address>:<shares>.
type payeesFlag []*shares.Entry

func (p *payeesFlag) String() string {
	chunks := make([]string, len(*p))
	for i, e := range *p {
		chunks[i] = fmt.Sprintf("%s:%d", e.Address, e.Shares)
	}
	return strings.Join(chunks, ",")
}

func (p *payeesFlag) Set(raw string) error {
	i := strings.LastIndex(raw, ":")
	if i < 0 {
		return fmt.Errorf("payee must be <address>:<shares>, got %q", raw)
	}
	addr, err := cosmicroses.ParseAddress(raw[:i])
	if err != nil {
		return fmt.Errorf("payee address: %s", err)
	}
	n, err := strconv.ParseUint(raw[i+1:], 10, 64)
	if err != nil {
		return fmt.Errorf("payee shares: %s", err)
	}
	*p = append(*p, &shares.Entry{Address: addr, Shares: n})
	return nil
}
