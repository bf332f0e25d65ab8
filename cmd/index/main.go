package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/graeme-hill/monkey-go/lib"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("index: ")

	dir := flag.String("dir", "./test/basic/sources", "directory of source files to parse")
	conn := flag.String("conn", os.Getenv("MONKEY_DB"), "postgres connection string (default $MONKEY_DB)")
	schema := flag.String("schema", "", "schema for the index tables")
	flag.Parse()

	if *conn == "" {
		log.Fatalf("no connection string, pass -conn or set MONKEY_DB")
	}

	files, err := lib.ReadSourcesFromDir(*dir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	store, err := lib.OpenStore(*conn, lib.StoreOptions{Schema: *schema})
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("%v", err)
	}
	if err := store.SaveSources(ctx, files); err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("indexed %d files", len(files))
}
