// Command jstringify decodes a JSON document and re-emits it through
// the jstringify package, as a minimal, auditable round-trip.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jstringify/jstringify"
)

var (
	flagMaxDepth = flag.Int("max-depth", 0, "recursion-depth limit, 0 for the package default")
	flagIndent   = flag.Bool("indent", false, "indent the re-encoded output with encoding/json")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: jstringify [options] [file]\n")
	fmt.Fprintf(os.Stderr, "reads a JSON document from file, or stdin if omitted.\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("jstringify: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	var r io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		r = f
	}

	var doc interface{}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		log.Fatal(err)
	}

	v, err := jstringify.FromGo(doc)
	if err != nil {
		log.Fatal(err)
	}

	var opts []jstringify.Option
	if *flagMaxDepth > 0 {
		opts = append(opts, jstringify.MaxDepth(*flagMaxDepth))
	}

	s, ok, err := jstringify.Stringify(v, opts...)
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		log.Fatal("input serializes to undefined")
	}

	if !*flagIndent {
		fmt.Println(s)
		return
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(s), "", "  "); err != nil {
		log.Fatal(err)
	}
	fmt.Println(pretty.String())
}
