package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charlieabtbl/cosmicroses"
	"github.com/charlieabtbl/cosmicroses/app"
	"github.com/charlieabtbl/cosmicroses/std"
)

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Deploy contracts and execute calls declared by a genesis file. Addresses
of the deployed contracts are printed in the deployment order.
`)
		fl.PrintDefaults()
	}
	var (
		confFl    = flConfig(fl)
		genesisFl = fl.String("genesis", "genesis.json", "Path to the genesis file.")
	)
	fl.Parse(args)

	conf, err := loadConfig(*confFl)
	if err != nil {
		return err
	}
	gen, err := app.LoadGenesis(*genesisFl)
	if err != nil {
		return err
	}
	rt, closeDB, err := openRuntime(conf)
	if err != nil {
		return err
	}
	defer closeDB()

	addrs, err := rt.InitGenesis(context.Background(), gen)
	for _, a := range addrs {
		fmt.Fprintln(output, a)
	}
	if err != nil {
		return fmt.Errorf("cannot initialize genesis: %+v", err)
	}
	return closeDB()
}

func cmdDeploy(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Deploy a new contract instance of a code. The message is the JSON
representation of the init message of the code. The address of the new
instance is printed.
`)
		fl.PrintDefaults()
	}
	var (
		confFl = flConfig(fl)
		keyFl  = fl.String("key", "", "Path to the private key file of the deployer. Defaults to the configured key.")
		codeFl = fl.String("code", "", "Identifier of the deployed code, for example payees@1.0.0.")
		msgFl  = fl.String("msg", "{}", "JSON encoded init message.")
	)
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
	rt, closeDB, err := openRuntime(conf)
	if err != nil {
		return err
	}
	defer closeDB()

	code, err := rt.Codes().Get(*codeFl)
	if err != nil {
		return err
	}
	msg, err := rt.Codes().DecodeMsg(code.InitPath, []byte(*msgFl))
	if err != nil {
		return err
	}
	addr, err := rt.Deploy(context.Background(), key.PublicKey().Condition(), code.ID(), msg)
	if err != nil {
		return fmt.Errorf("cannot deploy: %+v", err)
	}
	if _, err := fmt.Fprintln(output, addr); err != nil {
		return err
	}
	return closeDB()
}

func cmdExec(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Call an entry point of a contract. The message is the JSON representation
of the message of given path. Use -query for read only entry points, the
state is not modified and no key is needed.
`)
		fl.PrintDefaults()
	}
	var (
		confFl     = flConfig(fl)
		keyFl      = fl.String("key", "", "Path to the private key file of the caller. Defaults to the configured key.")
		contractFl = flAddress(fl, "contract", "", "Address of the called contract.")
		pathFl     = fl.String("path", "", "Path of the entry point, for example payees/release.")
		msgFl      = fl.String("msg", "{}", "JSON encoded message.")
		queryFl    = fl.Bool("query", false, "Discard all state changes.")
		resultFl   = fl.String("result", "raw", "Result type used to decode the returned data: uint64, bool, address, string or raw.")
	)
	fl.Parse(args)

	conf, err := loadConfig(*confFl)
	if err != nil {
		return err
	}
	rt, closeDB, err := openRuntime(conf)
	if err != nil {
		return err
	}
	defer closeDB()

	msg, err := rt.Codes().DecodeMsg(*pathFl, []byte(*msgFl))
	if err != nil {
		return err
	}

	var res *cosmicroses.DeliverResult
	if *queryFl {
		res, err = rt.Query(context.Background(), *contractFl, msg)
	} else {
		if *keyFl != "" {
			conf.Key = *keyFl
		}
		key, kerr := loadKey(conf.Key)
		if kerr != nil {
			return kerr
		}
		res, err = rt.Execute(context.Background(), key.PublicKey().Condition(), *contractFl, msg)
	}
	if err != nil {
		return fmt.Errorf("call failed: %+v", err)
	}
	if err := writeResult(output, res, *resultFl); err != nil {
		return err
	}
	return closeDB()
}

// writeResult prints the result data decoded as the given result type.
func writeResult(w io.Writer, res *cosmicroses.DeliverResult, kind string) error {
	if res.Log != "" {
		fmt.Fprintln(w, res.Log)
	}
	var p cosmicroses.Persistent
	switch kind {
	case "raw":
		if len(res.Data) != 0 {
			_, err := fmt.Fprintln(w, hex.EncodeToString(res.Data))
			return err
		}
		return nil
	case "uint64":
		p = &cosmicroses.Uint64Result{}
	case "bool":
		p = &cosmicroses.BoolResult{}
	case "address":
		p = &cosmicroses.AddressResult{}
	case "string":
		p = &cosmicroses.StringResult{}
	default:
		return fmt.Errorf("unknown result type %q", kind)
	}
	if err := cosmicroses.LoadResult(res, p); err != nil {
		return fmt.Errorf("cannot decode %s result: %s", kind, err)
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cannot serialize result: %s", err)
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

func cmdCodes(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
List all codes that can be deployed.
`)
		fl.PrintDefaults()
	}
	pathsFl := fl.Bool("paths", false, "Print the paths served by each code.")
	fl.Parse(args)

	codes := std.Codes()
	for _, id := range codes.IDs() {
		code, err := codes.Get(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(output, code)
		if *pathsFl {
			for _, p := range code.Router().Paths() {
				fmt.Fprintf(output, "\t%s\n", p)
			}
		}
	}
	return nil
}

func cmdInstances(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
List all deployed contract instances.
`)
		fl.PrintDefaults()
	}
	confFl := flConfig(fl)
	fl.Parse(args)

	conf, err := loadConfig(*confFl)
	if err != nil {
		return err
	}
	rt, closeDB, err := openRuntime(conf)
	if err != nil {
		return err
	}
	defer closeDB()

	instances, err := rt.Instances()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ADDRESS\tCODE\tINITIALIZED\tDEPLOYER")
	for _, inst := range instances {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", inst.Address, inst.Code, inst.Initialized, inst.Deployer)
	}
	return tw.Flush()
}
