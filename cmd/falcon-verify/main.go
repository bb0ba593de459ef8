// Command falcon-verify checks a Falcon-512 signature given a public key,
// message, and signature, each supplied as a hex string or a path to a
// binary file.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/SoundnessLabs/stellar-pq/falcon"
	"github.com/SoundnessLabs/stellar-pq/verifier"
)

func usage() {
	fmt.Println(`usage: falcon-verify -pubkey <hex|@file> -sig <hex|@file> [-msg <string>|-msgfile <path>]
       falcon-verify -pubkey <hex|@file> -kat <hex|@file>

Flags:
  -pubkey   <hex|@file>   897-byte encoded Falcon-512 public key
  -sig      <hex|@file>   42-700 byte encoded Falcon-512 signature
  -msg      <string>      message, taken literally
  -msgfile  <path>        message, read from a file (overrides -msg)
  -kat      <hex|@file>   a NIST KAT "sm" envelope; reassembles the message
                          and signature from it instead of -sig/-msg

Exits 0 and prints "ok" if the signature verifies, exits 1 and prints
"invalid" otherwise.`)
	os.Exit(2)
}

// readBytes interprets arg as hex unless it begins with '@', in which case
// the remainder is a path to read raw bytes from.
func readBytes(arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "@") {
		return os.ReadFile(arg[1:])
	}
	return hex.DecodeString(arg)
}

func main() {
	pubkeyArg := flag.String("pubkey", "", "public key, hex or @file")
	sigArg := flag.String("sig", "", "signature, hex or @file")
	msgArg := flag.String("msg", "", "message literal")
	msgFile := flag.String("msgfile", "", "message file path")
	katArg := flag.String("kat", "", "NIST KAT sm envelope, hex or @file")
	flag.Usage = usage
	flag.Parse()

	if *pubkeyArg == "" || (*sigArg == "" && *katArg == "") {
		usage()
	}

	pubkey, err := readBytes(*pubkeyArg)
	if err != nil {
		log.Fatalf("read pubkey: %v", err)
	}

	var message, sig []byte
	if *katArg != "" {
		sm, err := readBytes(*katArg)
		if err != nil {
			log.Fatalf("read kat envelope: %v", err)
		}
		var ok bool
		_, message, sig, ok = falcon.ReassembleFromKAT(sm)
		if !ok {
			log.Fatal("malformed kat envelope")
		}
	} else {
		sig, err = readBytes(*sigArg)
		if err != nil {
			log.Fatalf("read signature: %v", err)
		}
		if *msgFile != "" {
			message, err = os.ReadFile(*msgFile)
			if err != nil {
				log.Fatalf("read message file: %v", err)
			}
		} else {
			message = []byte(*msgArg)
		}
	}

	if !verifier.Verify(pubkey, message, sig) {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("ok")
}
