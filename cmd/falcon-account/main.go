// Command falcon-account exercises the account package's Falcon-backed
// custom-account authorization check from the command line.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/SoundnessLabs/stellar-pq/account"
)

func usage() {
	fmt.Println(`usage: falcon-account <new|get-pubkey|check-auth> [options]

Subcommands:
  new          Validate a public key and print "ok" or the rejection reason
               Flags:
                 -pubkey <hex|@file>   897-byte encoded public key

  get-pubkey   Construct an account and print its stored public key as hex
               Flags:
                 -pubkey <hex|@file>   897-byte encoded public key

  check-auth   Construct an account and run CheckAuth
               Flags:
                 -pubkey  <hex|@file>  897-byte encoded public key
                 -payload <hex|@file>  32-byte signature payload hash
                 -sig     <hex|@file>  42-700 byte encoded signature`)
	os.Exit(2)
}

func readBytes(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "@") {
		return os.ReadFile(arg[1:])
	}
	return hex.DecodeString(arg)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "new":
		runNew(os.Args[2:])
	case "get-pubkey":
		runGetPubkey(os.Args[2:])
	case "check-auth":
		runCheckAuth(os.Args[2:])
	default:
		usage()
	}
}

func runNew(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	pubkeyArg := fs.String("pubkey", "", "account public key, hex or @file")
	fs.Parse(args)

	pubkey, err := readBytes(*pubkeyArg)
	if err != nil {
		log.Fatalf("read pubkey: %v", err)
	}
	if _, err := account.NewAccount(pubkey); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println("ok")
}

func runGetPubkey(args []string) {
	fs := flag.NewFlagSet("get-pubkey", flag.ExitOnError)
	pubkeyArg := fs.String("pubkey", "", "account public key, hex or @file")
	fs.Parse(args)

	pubkey, err := readBytes(*pubkeyArg)
	if err != nil {
		log.Fatalf("read pubkey: %v", err)
	}
	acc, err := account.NewAccount(pubkey)
	if err != nil {
		log.Fatalf("construct account: %v", err)
	}
	fmt.Println(hex.EncodeToString(acc.PublicKey()))
}

func runCheckAuth(args []string) {
	fs := flag.NewFlagSet("check-auth", flag.ExitOnError)
	pubkeyArg := fs.String("pubkey", "", "account public key, hex or @file")
	payloadArg := fs.String("payload", "", "32-byte signature payload, hex or @file")
	sigArg := fs.String("sig", "", "signature, hex or @file")
	fs.Parse(args)

	pubkey, err := readBytes(*pubkeyArg)
	if err != nil {
		log.Fatalf("read pubkey: %v", err)
	}
	payload, err := readBytes(*payloadArg)
	if err != nil {
		log.Fatalf("read payload: %v", err)
	}
	if len(payload) != 32 {
		log.Fatalf("payload must be exactly 32 bytes, got %d", len(payload))
	}
	sig, err := readBytes(*sigArg)
	if err != nil {
		log.Fatalf("read signature: %v", err)
	}

	acc, err := account.NewAccount(pubkey)
	if err != nil {
		log.Fatalf("construct account: %v", err)
	}

	var payloadHash [32]byte
	copy(payloadHash[:], payload)

	if err := acc.CheckAuth(payloadHash, sig); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println("authorized")
}
