// Command storectl is a thin CLI client that marshals arguments into
// RPCs against a running storeserver and prints the responses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dumpstors-labs/keepstore/internal/kvclient"
)

const requestTimeout = 10 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("storectl", flag.ContinueOnError)
	endpoint := fs.String("b", kvclient.DefaultEndpoint, "server endpoint (host:port)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: storectl [-b endpoint] <keyspaces|insert|get|delete> ...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	client, err := kvclient.Dial(ctx, *endpoint)
	if err != nil {
		return err
	}
	defer client.Close()

	switch rest[0] {
	case "keyspaces":
		return runKeyspaces(ctx, client, rest[1:])
	case "insert":
		return runInsert(ctx, client, rest[1:])
	case "get":
		return runGet(ctx, client, rest[1:])
	case "delete":
		return runDelete(ctx, client, rest[1:])
	default:
		return fmt.Errorf("storectl: unknown command %q", rest[0])
	}
}

func runKeyspaces(ctx context.Context, client *kvclient.Client, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: storectl keyspaces <create|get|delete|truncate|list> [name]")
	}
	verb := args[0]
	rest := args[1:]

	if verb == "list" {
		names, err := client.ListKeyspaces(ctx)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(names, "\n"))
		return nil
	}

	if len(rest) != 1 {
		return fmt.Errorf("usage: storectl keyspaces %s <name>", verb)
	}
	name := rest[0]

	switch verb {
	case "create":
		if err := client.CreateKeyspace(ctx, name); err != nil {
			return err
		}
		fmt.Println()
	case "get":
		got, err := client.GetKeyspace(ctx, name)
		if err != nil {
			return err
		}
		fmt.Println(got)
	case "delete":
		if err := client.DeleteKeyspace(ctx, name); err != nil {
			return err
		}
		fmt.Println()
	case "truncate":
		if err := client.TruncateKeyspace(ctx, name); err != nil {
			return err
		}
		fmt.Println()
	default:
		return fmt.Errorf("storectl: unknown keyspaces subcommand %q", verb)
	}
	return nil
}

func runInsert(ctx context.Context, client *kvclient.Client, args []string) error {
	fs := flag.NewFlagSet("insert", flag.ContinueOnError)
	keyspace := fs.String("keyspace", "", "target keyspace")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if *keyspace == "" || len(rest) != 2 {
		return fmt.Errorf("usage: storectl insert --keyspace <ks> <key> <value>")
	}
	if err := client.Insert(ctx, *keyspace, []byte(rest[0]), []byte(rest[1])); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

func runGet(ctx context.Context, client *kvclient.Client, args []string) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	keyspace := fs.String("keyspace", "", "target keyspace")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if *keyspace == "" || len(rest) != 1 {
		return fmt.Errorf("usage: storectl get --keyspace <ks> <key>")
	}
	value, err := client.Get(ctx, *keyspace, []byte(rest[0]))
	if err != nil {
		return err
	}
	fmt.Printf("%s=%s\n", rest[0], formatBytes(value))
	return nil
}

func runDelete(ctx context.Context, client *kvclient.Client, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	keyspace := fs.String("keyspace", "", "target keyspace")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if *keyspace == "" || len(rest) != 1 {
		return fmt.Errorf("usage: storectl delete --keyspace <ks> <key>")
	}
	if err := client.Delete(ctx, *keyspace, []byte(rest[0])); err != nil {
		return err
	}
	fmt.Println()
	return nil
}

// formatBytes renders bytes as UTF-8 where valid, else as a debug
// byte sequence.
func formatBytes(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strconv.Quote(string(b))
}
