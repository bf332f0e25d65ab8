package main

import (
	"flag"
	"log"
	"os"

	"github.com/graeme-hill/monkey-go/lib"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("report: ")

	dir := flag.String("dir", "./test/basic/sources", "directory of source files to parse")
	flag.Parse()

	err := lib.ReportDir(*dir, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
}
